package employee

import (
	"github.com/shopspring/decimal"
)

// Employee is a directory record. ID is the employee code workers type at
// the clock terminal, so it doubles as the primary key.
type Employee struct {
	ID            string
	Name          string
	Department    string
	MonthlySalary decimal.Decimal
}
