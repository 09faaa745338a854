package request

type FormatStandard struct {
	Time string `json:"time" binding:"required"`
}

type FormatMilitary struct {
	Time12 string `json:"time_12" binding:"required"`
}
