package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/employeems/ems-backend-go/internal/config"
	"github.com/employeems/ems-backend-go/internal/fixtures"
	appHTTP "github.com/employeems/ems-backend-go/internal/handler/http"
	"github.com/employeems/ems-backend-go/internal/pkg/clock"
	"github.com/employeems/ems-backend-go/internal/pkg/database"
	"github.com/employeems/ems-backend-go/internal/pkg/jwt"
	"github.com/employeems/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/employeems/ems-backend-go/internal/service/attendance"
	authService "github.com/employeems/ems-backend-go/internal/service/auth"
	departmentService "github.com/employeems/ems-backend-go/internal/service/department"
	employeeService "github.com/employeems/ems-backend-go/internal/service/employee"
	performanceService "github.com/employeems/ems-backend-go/internal/service/performance"
	statsService "github.com/employeems/ems-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	if err := fixtures.SeedDefaults(context.Background(), db, departmentRepo, userRepo, cfg.Admin); err != nil {
		log.Fatal("Error seeding defaults: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	statsSvc := statsService.NewStatsService(statsRepo, employeeRepo, clock.System())
	authSvc := authService.NewAuthService(userRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		authHandler,
		departmentHandler,
		employeeHandler,
		performanceHandler,
		attendanceHandler,
		statsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
