package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hadirly/attendance-backend-go/internal/config"
	"github.com/hadirly/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirly/attendance-backend-go/internal/domain/employee"
	appHTTP "github.com/hadirly/attendance-backend-go/internal/handler/http"
	"github.com/hadirly/attendance-backend-go/internal/pkg/clock"
	"github.com/hadirly/attendance-backend-go/internal/pkg/database"
	"github.com/hadirly/attendance-backend-go/internal/repository/fallback"
	"github.com/hadirly/attendance-backend-go/internal/repository/jsonfile"
	"github.com/hadirly/attendance-backend-go/internal/repository/memory"
	"github.com/hadirly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hadirly/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/hadirly/attendance-backend-go/internal/service/employee"
	reportService "github.com/hadirly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var employeeRepo employee.EmployeeRepository
	var sessionRepo attendance.SessionRepository

	switch cfg.Storage.Type {
	case "postgres":
		dsn := cfg.DatabaseURL()
		if err := postgresql.Migrate(dsn); err != nil {
			log.Fatal("Failed to migrate database: ", err)
		}
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		sessionRepo = postgresql.NewSessionRepository(db)

		// Optional local copy under the remote backend: reads and writes
		// survive a database outage from the last-known-good files.
		if cfg.Storage.FallbackDir != "" {
			backup, err := jsonfile.NewStore(cfg.Storage.FallbackDir)
			if err != nil {
				log.Fatal("Failed to initialize fallback storage: ", err)
			}
			employeeRepo = fallback.NewEmployeeStore(employeeRepo, backup)
			sessionRepo = fallback.NewSessionStore(sessionRepo, backup)
		}
	case "jsonfile":
		store, err := jsonfile.NewStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("Failed to initialize jsonfile storage: ", err)
		}
		employeeRepo = store
		sessionRepo = store
	case "memory":
		store := memory.NewStore()
		employeeRepo = store
		sessionRepo = store
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	clk := clock.System()
	ledgerSvc := attendanceService.NewLedgerService(clk, sessionRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, sessionRepo)
	reportSvc := reportService.NewReportService(clk, sessionRepo, employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(ledgerSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg, attendanceHandler, employeeHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
