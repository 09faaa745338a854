package timezone_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handler "github.com/dinerozz/time-format-service/internal/handler/timezone"
	"github.com/dinerozz/time-format-service/internal/service/timezone"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func setupRouter(srv *timezone.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	timezoneHandler := handler.NewTimezoneHandler(srv)

	r.GET("/time/timezones", timezoneHandler.ListTimezones)
	r.GET("/time/current", timezoneHandler.CurrentTime)

	return r
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	router.ServeHTTP(w, req)
	return w
}

func TestListTimezones(t *testing.T) {
	router := setupRouter(timezone.NewService())

	w := get(t, router, "/time/timezones")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"timezones":["EST","CST","PST","UTC"],"total_count":4}`,
		w.Body.String())
}

func TestCurrentTime(t *testing.T) {
	srv := timezone.NewServiceWithClock(fixedClock{
		t: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC),
	})
	router := setupRouter(srv)

	w := get(t, router, "/time/current?timezone=EST")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025-07-01 08:00:00", body["current_time"])
	assert.Equal(t, "EST", body["timezone"])
	assert.Equal(t, "-0400", body["timezone_offset"])
	assert.Equal(t, true, body["is_dst"])
}

func TestCurrentTimeDefaultsToUTC(t *testing.T) {
	srv := timezone.NewServiceWithClock(fixedClock{
		t: time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC),
	})
	router := setupRouter(srv)

	w := get(t, router, "/time/current")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UTC", body["timezone"])
	assert.Equal(t, "2025-07-01 12:00:00", body["current_time"])
}

func TestCurrentTimeUnknownTimezone(t *testing.T) {
	router := setupRouter(timezone.NewService())

	w := get(t, router, "/time/current?timezone=Mars")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
	assert.Equal(t, false, body["success"])
}
