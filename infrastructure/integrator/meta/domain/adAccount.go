package metadomain

// AdAccount traz só os campos de fuso usados para calcular "hoje" na conta
type AdAccount struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	TimezoneName           string   `json:"timezone_name"`
	TimezoneOffsetHoursUTC *float64 `json:"timezone_offset_hours_utc"`
}
