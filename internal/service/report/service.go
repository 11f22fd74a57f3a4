package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	"github.com/hadirly/attendance-backend-go/internal/domain/report"
	"github.com/hadirly/attendance-backend-go/internal/pkg/clock"
	"github.com/hadirly/attendance-backend-go/internal/pkg/payroll"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	clock        clock.Clock
	sessionRepo  attendance.SessionRepository
	employeeRepo employee.EmployeeRepository
}

func NewReportService(
	clk clock.Clock,
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
) report.ReportService {
	return &ReportServiceImpl{
		clock:        clk,
		sessionRepo:  sessionRepo,
		employeeRepo: employeeRepo,
	}
}

func sortedIDs(all map[string]employee.Employee) []string {
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DailyReport implements report.ReportService. Employees with no sessions
// that date are omitted entirely. Open or unparseable sessions appear as
// rows but contribute zero hours.
func (s *ReportServiceImpl) DailyReport(ctx context.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	all, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	var rows []report.DailyReportRow
	grandHours := decimal.Zero
	grandSalary := decimal.Zero

	for _, id := range sortedIDs(all) {
		emp := all[id]
		sessions, err := s.sessionRepo.GetByDate(ctx, id, req.Date)
		if err != nil {
			return report.DailyReportResponse{}, fmt.Errorf("failed to load sessions: %w", err)
		}
		if len(sessions) == 0 {
			continue
		}

		hourly := payroll.HourlyRate(emp.MonthlySalary)
		totalHours := decimal.Zero

		for i, session := range sessions {
			hours, ok := payroll.SessionHours(session.CheckIn, session.CheckOut)
			salary := decimal.Zero
			if ok {
				salary = payroll.Salary(hourly, hours)
				totalHours = totalHours.Add(hours)
			} else if !session.IsOpen() {
				// Closed but unparseable: excluded from totals, never
				// fatal to the report.
				slog.Warn("skipping session with unparseable timestamps",
					"employee_id", id, "date", req.Date, "session_index", i+1)
			}

			rows = append(rows, report.DailyReportRow{
				EmployeeID:   id,
				EmployeeName: emp.Name,
				RowType:      report.RowTypeSession,
				SessionIndex: i + 1,
				CheckIn:      session.CheckIn,
				CheckOut:     session.CheckOut,
				CheckInNote:  session.CheckInNote,
				CheckOutNote: session.CheckOutNote,
				Hours:        hours.InexactFloat64(),
				Salary:       salary.InexactFloat64(),
			})
		}

		if totalHours.IsPositive() {
			subtotalSalary := payroll.Salary(hourly, totalHours)
			rows = append(rows, report.DailyReportRow{
				EmployeeID:   id,
				EmployeeName: emp.Name,
				RowType:      report.RowTypeSubtotal,
				Hours:        totalHours.InexactFloat64(),
				Salary:       subtotalSalary.InexactFloat64(),
			})
			grandHours = grandHours.Add(totalHours)
			grandSalary = grandSalary.Add(subtotalSalary)
		}
	}

	if len(rows) == 0 {
		return report.DailyReportResponse{}, report.ErrNoReportData
	}

	return report.DailyReportResponse{
		Date:        req.Date,
		GeneratedAt: s.clock.Now().Format(time.RFC3339),
		Rows:        rows,
		TotalHours:  grandHours.InexactFloat64(),
		TotalSalary: grandSalary.InexactFloat64(),
	}, nil
}

// PeriodReport implements report.ReportService. The range is walked day by
// day, ascending and inclusive; one employee's day rows stay contiguous and
// end with that employee's total row.
func (s *ReportServiceImpl) PeriodReport(ctx context.Context, req report.PeriodReportRequest) (report.PeriodReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodReportResponse{}, err
	}

	var ids []string
	employees := make(map[string]employee.Employee)

	if req.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return report.PeriodReportResponse{}, err
		}
		ids = []string{emp.ID}
		employees[emp.ID] = emp
	} else {
		all, err := s.employeeRepo.GetAll(ctx)
		if err != nil {
			return report.PeriodReportResponse{}, fmt.Errorf("failed to load employees: %w", err)
		}
		ids = sortedIDs(all)
		employees = all
	}

	start, _ := time.Parse(attendance.DateLayout, req.StartDate)
	end, _ := time.Parse(attendance.DateLayout, req.EndDate)

	var rows []report.PeriodReportRow
	grandHours := decimal.Zero
	grandSalary := decimal.Zero

	for _, id := range ids {
		emp := employees[id]
		byDate, err := s.sessionRepo.GetAllByEmployee(ctx, id)
		if err != nil {
			return report.PeriodReportResponse{}, fmt.Errorf("failed to load sessions: %w", err)
		}

		hourly := payroll.HourlyRate(emp.MonthlySalary)
		empHours := decimal.Zero
		empSalary := decimal.Zero

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			dateKey := day.Format(attendance.DateLayout)
			sessions := byDate[dateKey]
			if len(sessions) == 0 {
				continue
			}

			firstCheckIn := sessions[0].CheckIn
			lastCheckOut := ""
			for i := len(sessions) - 1; i >= 0; i-- {
				if sessions[i].CheckOut != "" {
					lastCheckOut = sessions[i].CheckOut
					break
				}
			}

			dayHours := decimal.Zero
			for _, session := range sessions {
				if hours, ok := payroll.SessionHours(session.CheckIn, session.CheckOut); ok {
					dayHours = dayHours.Add(hours)
				}
			}
			if !dayHours.IsPositive() {
				continue
			}

			daySalary := payroll.Salary(hourly, dayHours)
			rows = append(rows, report.PeriodReportRow{
				EmployeeID:   id,
				EmployeeName: emp.Name,
				RowType:      report.RowTypeDay,
				Date:         dateKey,
				FirstCheckIn: firstCheckIn,
				LastCheckOut: lastCheckOut,
				Hours:        dayHours.InexactFloat64(),
				Salary:       daySalary.InexactFloat64(),
			})
			empHours = empHours.Add(dayHours)
			empSalary = empSalary.Add(daySalary)
		}

		if empHours.IsPositive() {
			rows = append(rows, report.PeriodReportRow{
				EmployeeID:   id,
				EmployeeName: emp.Name,
				RowType:      report.RowTypeTotal,
				Hours:        empHours.InexactFloat64(),
				Salary:       empSalary.InexactFloat64(),
			})
			grandHours = grandHours.Add(empHours)
			grandSalary = grandSalary.Add(empSalary)
		}
	}

	if len(rows) == 0 {
		return report.PeriodReportResponse{}, report.ErrNoReportData
	}

	return report.PeriodReportResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		EmployeeID:  req.EmployeeID,
		GeneratedAt: s.clock.Now().Format(time.RFC3339),
		Rows:        rows,
		TotalHours:  grandHours.InexactFloat64(),
		TotalSalary: grandSalary.InexactFloat64(),
	}, nil
}
