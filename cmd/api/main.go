package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prostaff/attendance-backend-go/internal/config"
	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	appHTTP "github.com/prostaff/attendance-backend-go/internal/handler/http"
	"github.com/prostaff/attendance-backend-go/internal/pkg/database"
	"github.com/prostaff/attendance-backend-go/internal/pkg/facecheck"
	"github.com/prostaff/attendance-backend-go/internal/pkg/geo"
	"github.com/prostaff/attendance-backend-go/internal/pkg/idgen"
	"github.com/prostaff/attendance-backend-go/internal/pkg/jwt"
	"github.com/prostaff/attendance-backend-go/internal/pkg/storage"
	"github.com/prostaff/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/prostaff/attendance-backend-go/internal/service/attendance"
	authService "github.com/prostaff/attendance-backend-go/internal/service/auth"
	employeeService "github.com/prostaff/attendance-backend-go/internal/service/employee"
	"github.com/prostaff/attendance-backend-go/internal/service/file"
	leaveService "github.com/prostaff/attendance-backend-go/internal/service/leave"
	ledgerService "github.com/prostaff/attendance-backend-go/internal/service/ledger"
	policyService "github.com/prostaff/attendance-backend-go/internal/service/policy"
	reportService "github.com/prostaff/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), 0, 0)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)

	if err := seedPolicy(policyRepo, cfg.Shift); err != nil {
		log.Fatal("Failed to seed shift policy: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	gemini := facecheck.NewGeminiClient(cfg.Face.GeminiAPIKey, time.Duration(cfg.Face.TimeoutSeconds)*time.Second)
	verifier := facecheck.WithFailurePolicy(gemini, cfg.Face.FailOpen)

	idGen := idgen.NewUUIDGenerator()

	fileSvc := file.NewFileService(fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, policyRepo, fileSvc, verifier, idGen)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, idGen)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, idGen)
	policySvc := policyService.NewPolicyService(policyRepo)
	ledgerSvc := ledgerService.NewLedgerService(attendanceRepo, leaveRepo, policyRepo)
	reportSvc := reportService.NewReportService(attendanceSvc)
	authSvc, err := authService.NewAuthService(jwtService, cfg.Admin.PIN)
	if err != nil {
		log.Fatal("Failed to initialize auth service: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	settingsHandler := appHTTP.NewSettingsHandler(policySvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc, reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			UploadsDir:  cfg.Storage.BasePath,
			UploadsPath: "/uploads",
		},
		jwtService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		leaveHandler,
		settingsHandler,
		ledgerHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// seedPolicy writes the configured shift policy on first boot. Once a
// policy row exists the settings endpoints own it and the env seed is
// ignored.
func seedPolicy(policyRepo policy.PolicyRepository, shift config.ShiftConfig) error {
	ctx := context.Background()

	_, err := policyRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, policy.ErrPolicyNotFound) {
		return err
	}

	workStart, err := policy.ParseClockTime(shift.WorkStartTime)
	if err != nil {
		return err
	}
	workEnd, err := policy.ParseClockTime(shift.WorkEndTime)
	if err != nil {
		return err
	}

	return policyRepo.Replace(ctx, policy.ShiftPolicy{
		Office:          geo.Point{Lat: shift.OfficeLatitude, Lng: shift.OfficeLongitude},
		WorkStart:       workStart,
		WorkEnd:         workEnd,
		GeofenceRadiusM: shift.GeofenceRadiusM,
	})
}
