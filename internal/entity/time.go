package entity

// TimeOfDay is a wall-clock time with minute precision, as parsed from an
// HH:MM string. Hour is 0-23, Minute is 0-59.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}
