package report

// PassTypeSummary is the per-type slice of a daily report. Revenue is an exact
// 2-decimal string; the per-type revenues always sum to the report total.
type PassTypeSummary struct {
	Count   int    `json:"count"`
	Revenue string `json:"revenue"`
}

// DailyReport aggregates issuance and revenue over one calendar day.
type DailyReport struct {
	Date         string                     `json:"date"` // YYYY-MM-DD
	TotalPasses  int                        `json:"total_passes"`
	PassNumbers  []string                   `json:"pass_numbers"`
	TotalRevenue string                     `json:"total_revenue"`
	PassByType   map[string]PassTypeSummary `json:"pass_by_type"`
}
