package domain

// Report é o resultado entregue ao chamador da API e da CLI
type Report struct {
	Success   bool          `json:"success"`
	Totals    MetricsView   `json:"totals"`
	DateRange DateRangeView `json:"dateRange"`
	Timezone  TimezoneView  `json:"timezone"`
	Data      ReportData    `json:"data"`
	Errors    []string      `json:"errors,omitempty"`
}

type DateRangeView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TimezoneView struct {
	Name        string  `json:"name"`
	OffsetHours float64 `json:"offsetHours"`
	Resolved    bool    `json:"resolved"`
}

type ReportData struct {
	Campaigns  []CampaignView   `json:"campaigns"`
	DailySpend []DailySpendView `json:"dailySpend"`
}

type CampaignView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Status   string       `json:"status"`
	Insights *MetricsView `json:"insights"`
	Rollup   MetricsView  `json:"rollup"`
	Ads      []AdView     `json:"ads"`
	Errors   []string     `json:"errors,omitempty"`
}

type AdView struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Status       string       `json:"status"`
	ThumbnailURL string       `json:"thumbnailUrl"`
	Images       []string     `json:"images"`
	Insights     *MetricsView `json:"insights"`
	Errors       []string     `json:"errors,omitempty"`
}

type DailySpendView struct {
	Date  string  `json:"date"`
	Spend float64 `json:"spend"`
}
