package report

import "context"

// ReportService walks the ledger and derives pay via the payroll
// calculators. Only fully closed sessions count toward hours.
type ReportService interface {
	// DailyReport: per-session rows plus per-employee subtotals for one
	// calendar date.
	DailyReport(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)

	// PeriodReport: per-day rows plus per-employee totals over an
	// inclusive date range, optionally for a single employee.
	PeriodReport(ctx context.Context, req PeriodReportRequest) (PeriodReportResponse, error)
}
