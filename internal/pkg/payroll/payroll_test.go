package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHourlyRate(t *testing.T) {
	cases := []struct {
		name    string
		monthly string
		want    string
	}{
		{"standard salary", "2600", "100"},
		{"rounds to two decimals", "1000", "38.46"},
		{"zero salary", "0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HourlyRate(decimal.RequireFromString(c.monthly))
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"HourlyRate(%s) = %s, want %s", c.monthly, got, c.want)
		})
	}
}

func TestSalary(t *testing.T) {
	cases := []struct {
		name  string
		rate  string
		hours string
		want  string
	}{
		{"eight hours at 100", "100", "8", "800"},
		{"fractional hours", "38.46", "7.5", "288.45"},
		{"zero rate", "0", "8", "0"},
		{"zero hours", "100", "0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Salary(decimal.RequireFromString(c.rate), decimal.RequireFromString(c.hours))
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"Salary(%s, %s) = %s, want %s", c.rate, c.hours, got, c.want)
		})
	}
}

func TestSessionHours(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     string
		ok       bool
	}{
		{"full day", "2024-01-10 09:00:00", "2024-01-10 17:00:00", "8", true},
		{"one hour across midnight", "2024-01-10 23:30:00", "2024-01-11 00:30:00", "1", true},
		{"rounds to two decimals", "2024-01-10 09:00:00", "2024-01-10 09:10:00", "0.17", true},
		{"missing check-out", "2024-01-10 09:00:00", "", "0", false},
		{"missing check-in", "", "2024-01-10 17:00:00", "0", false},
		{"malformed check-in", "not-a-timestamp", "2024-01-10 17:00:00", "0", false},
		{"check-out before check-in", "2024-01-10 17:00:00", "2024-01-10 09:00:00", "0", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := SessionHours(c.checkIn, c.checkOut)
			assert.Equal(t, c.ok, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"SessionHours(%q, %q) = %s, want %s", c.checkIn, c.checkOut, got, c.want)
		})
	}
}
