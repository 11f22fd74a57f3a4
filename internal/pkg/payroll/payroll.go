package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkingDaysPerMonth is the fixed divisor used to derive an hourly rate
// from a monthly salary. Company policy, not configurable.
const WorkingDaysPerMonth = 26

// timestampLayout matches the persisted session timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

var (
	divisor        = decimal.NewFromInt(WorkingDaysPerMonth)
	secondsPerHour = decimal.NewFromInt(3600)
)

// HourlyRate derives the hourly rate from a monthly salary, rounded to two
// decimal places. A zero salary yields a zero rate.
func HourlyRate(monthlySalary decimal.Decimal) decimal.Decimal {
	if monthlySalary.IsZero() {
		return decimal.Zero
	}
	return monthlySalary.Div(divisor).Round(2)
}

// Salary computes hourlyRate x hours, rounded to two decimal places.
func Salary(hourlyRate, hours decimal.Decimal) decimal.Decimal {
	if hourlyRate.IsZero() || hours.IsZero() {
		return decimal.Zero
	}
	return hourlyRate.Mul(hours).Round(2)
}

// SessionHours computes the worked hours between two persisted timestamps,
// rounded to two decimal places. It never fails: a missing or malformed
// timestamp, or a check-out earlier than the check-in, yields (0, false) so
// one bad record cannot abort a report.
func SessionHours(checkIn, checkOut string) (decimal.Decimal, bool) {
	in, err := time.ParseInLocation(timestampLayout, checkIn, time.Local)
	if err != nil {
		return decimal.Zero, false
	}
	out, err := time.ParseInLocation(timestampLayout, checkOut, time.Local)
	if err != nil {
		return decimal.Zero, false
	}
	seconds := out.Sub(in).Seconds()
	if seconds < 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(seconds).Div(secondsPerHour).Round(2), true
}
