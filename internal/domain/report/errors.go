package report

import "errors"

// ErrNoReportData: the query matched nothing. Surfaced explicitly so
// callers can show "no data" instead of an empty table.
var ErrNoReportData = errors.New("no attendance data for the requested period")
