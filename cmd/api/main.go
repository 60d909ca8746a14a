package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clinicops/clinic-backend-go/internal/config"
	appHTTP "github.com/clinicops/clinic-backend-go/internal/handler/http"
	"github.com/clinicops/clinic-backend-go/internal/pkg/clock"
	"github.com/clinicops/clinic-backend-go/internal/pkg/cron"
	"github.com/clinicops/clinic-backend-go/internal/pkg/database"
	"github.com/clinicops/clinic-backend-go/internal/pkg/dedup"
	"github.com/clinicops/clinic-backend-go/internal/pkg/jwt"
	"github.com/clinicops/clinic-backend-go/internal/pkg/sse"
	"github.com/clinicops/clinic-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clinicops/clinic-backend-go/internal/service/attendance"
	serviceAuth "github.com/clinicops/clinic-backend-go/internal/service/auth"
	reportService "github.com/clinicops/clinic-backend-go/internal/service/report"
	scheduleService "github.com/clinicops/clinic-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	clinicRepo := postgresql.NewClinicSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clk := clock.New()
	hub := sse.NewHub()
	guard := dedup.NewGuard(dedup.Window)
	resolver := scheduleService.NewResolver(clinicRepo)
	ledger := attendanceService.NewLedger(attendanceRepo, db)

	attendanceSvc := attendanceService.NewAttendanceService(
		ledger,
		employeeRepo,
		clinicRepo,
		resolver,
		guard,
		hub,
		clk,
		attendanceService.Config{
			MinimumDwell: time.Duration(cfg.Attendance.MinDwellMinutes) * time.Minute,
		},
	)
	reportSvc := reportService.NewReportService(reportRepo, clk)
	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(employeeRepo, resolver, ledger, clk)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, JWTService)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		JWTService,
		authHandler,
		attendanceHandler,
		reportHandler,
		eventsHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
