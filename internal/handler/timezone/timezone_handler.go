package timezone

import (
	"errors"
	"net/http"

	"github.com/dinerozz/time-format-service/internal/model/response/wrapper"
	"github.com/dinerozz/time-format-service/internal/service/timezone"
	"github.com/gin-gonic/gin"
)

type TimezoneHandler struct {
	srv *timezone.Service
}

func NewTimezoneHandler(srv *timezone.Service) *TimezoneHandler {
	return &TimezoneHandler{srv: srv}
}

// ListTimezones godoc
// @Summary List supported timezones
// @Description List the timezone abbreviations the service can report the current time for
// @Tags time
// @Produce json
// @Success 200 {object} response.TimezoneList
// @Router /time/timezones [get]
func (h *TimezoneHandler) ListTimezones(c *gin.Context) {
	c.JSON(http.StatusOK, h.srv.List())
}

// CurrentTime godoc
// @Summary Get current time in a timezone
// @Description Get the current wall-clock time in one of the supported timezones, in 24-hour format
// @Tags time
// @Produce json
// @Param timezone query string false "EST | CST | PST | UTC" default(UTC)
// @Success 200 {object} response.CurrentTime
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /time/current [get]
func (h *TimezoneHandler) CurrentTime(c *gin.Context) {
	tz := c.DefaultQuery("timezone", "UTC")

	current, err := h.srv.Current(tz)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, timezone.ErrUnknownTimezone) {
			status = http.StatusBadRequest
		}
		c.JSON(status, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, current)
}
