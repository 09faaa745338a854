package timeformat

import (
	"net/http"

	"github.com/dinerozz/time-format-service/internal/model/request"
	"github.com/dinerozz/time-format-service/internal/model/response/wrapper"
	"github.com/dinerozz/time-format-service/internal/service/timeformat"
	"github.com/gin-gonic/gin"
)

type TimeFormatHandler struct{}

func NewTimeFormatHandler() *TimeFormatHandler {
	return &TimeFormatHandler{}
}

// FormatStandard godoc
// @Summary Format time in standard (12-hour) format
// @Description Convert a 24-hour HH:MM time string to 12-hour format with AM/PM notation
// @Tags format
// @Accept json
// @Produce json
// @Param time body request.FormatStandard true "Time in HH:MM format (24-hour)"
// @Success 200 {object} response.FormattedTime
// @Failure 400 {object} wrapper.ErrorWrapper
// @Router /format/standard [post]
func (h *TimeFormatHandler) FormatStandard(c *gin.Context) {
	var formatRequest request.FormatStandard
	if err := c.ShouldBindJSON(&formatRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	formatted, err := timeformat.ConvertStandard(formatRequest.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, formatted)
}

// ToMilitary godoc
// @Summary Convert 12-hour time to military time
// @Description Convert a 12-hour "H:MM AM|PM" time string to 24-hour HH:MM notation
// @Tags format
// @Accept json
// @Produce json
// @Param time body request.FormatMilitary true "Time in H:MM AM|PM format (12-hour)"
// @Success 200 {object} response.MilitaryTime
// @Failure 400 {object} wrapper.ErrorWrapper
// @Router /format/to_military [post]
func (h *TimeFormatHandler) ToMilitary(c *gin.Context) {
	var formatRequest request.FormatMilitary
	if err := c.ShouldBindJSON(&formatRequest); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	military, err := timeformat.ToMilitary(formatRequest.Time12)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, military)
}
