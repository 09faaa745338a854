package response

type FormattedTime struct {
	OriginalTime  string `json:"original_time"`
	FormattedTime string `json:"formatted_time"`
	Format        string `json:"format"`
}

type MilitaryTime struct {
	OriginalTime string `json:"original_time"`
	MilitaryTime string `json:"military_time"`
}

type TimezoneList struct {
	Timezones  []string `json:"timezones"`
	TotalCount int      `json:"total_count"`
}

type CurrentTime struct {
	CurrentTime    string `json:"current_time"`
	Timezone       string `json:"timezone"`
	IsDST          bool   `json:"is_dst"`
	TimezoneOffset string `json:"timezone_offset"`
}
