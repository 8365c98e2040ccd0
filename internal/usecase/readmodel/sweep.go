package readmodel

// SweepReportRM summarizes one sweep run: how many candidates were looked
// at, how many were acted on, how many were skipped as stale or throttled,
// and how many failed and will be retried.
type SweepReportRM struct {
	Examined int `json:"examined"`
	Acted    int `json:"acted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
