package timeformat_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/dinerozz/time-format-service/internal/handler/timeformat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	timeFormatHandler := handler.NewTimeFormatHandler()

	r.POST("/format/standard", timeFormatHandler.FormatStandard)
	r.POST("/format/to_military", timeFormatHandler.ToMilitary)

	return r
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)
	return w
}

func TestFormatStandard(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/format/standard", `{"time":"14:30"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"original_time":"14:30","formatted_time":"2:30 PM","format":"standard"}`,
		w.Body.String())
}

func TestFormatStandardBoundaries(t *testing.T) {
	router := setupRouter()

	cases := []struct {
		input    string
		expected string
	}{
		{"00:00", "12:00 AM"},
		{"00:05", "12:05 AM"},
		{"12:00", "12:00 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			w := postJSON(t, router, "/format/standard", `{"time":"`+tc.input+`"}`)

			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.input, body["original_time"])
			assert.Equal(t, tc.expected, body["formatted_time"])
			assert.Equal(t, "standard", body["format"])
		})
	}
}

func TestFormatStandardRejectsInvalidTime(t *testing.T) {
	router := setupRouter()

	for _, input := range []string{"24:00", "12:60", "abc", "14-30", "14:3"} {
		t.Run(input, func(t *testing.T) {
			w := postJSON(t, router, "/format/standard", `{"time":"`+input+`"}`)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestFormatStandardRejectsMissingField(t *testing.T) {
	router := setupRouter()

	for _, body := range []string{`{}`, `{"time":""}`, `not json`} {
		w := postJSON(t, router, "/format/standard", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestToMilitary(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/format/to_military", `{"time_12":"1:15 PM"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"original_time":"1:15 PM","military_time":"13:15"}`,
		w.Body.String())
}

func TestToMilitaryRejectsInvalidTime(t *testing.T) {
	router := setupRouter()

	for _, input := range []string{"13:00 PM", "12:00 XM", "14:30"} {
		t.Run(input, func(t *testing.T) {
			w := postJSON(t, router, "/format/to_military", `{"time_12":"`+input+`"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
