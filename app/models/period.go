package models

// Period is an academic year range, e.g. 2024-2025. At most one period is
// active at a time.
type Period struct {
	PeriodID     int  `json:"period_id"`
	PeriodStart  int  `json:"period_start"`
	PeriodEnd    int  `json:"period_end"`
	PeriodStatus bool `json:"period_status"`
}
