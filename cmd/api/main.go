package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/chronotrack/chronotrack-backend-go/internal/config"
	appHTTP "github.com/chronotrack/chronotrack-backend-go/internal/handler/http"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/database"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/jwt"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/storage"
	"github.com/chronotrack/chronotrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/chronotrack/chronotrack-backend-go/internal/service/attendance"
	authService "github.com/chronotrack/chronotrack-backend-go/internal/service/auth"
	"github.com/chronotrack/chronotrack-backend-go/internal/service/file"
	userService "github.com/chronotrack/chronotrack-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		userRepo,
		departmentRepo,
		cfg.WorkSchedule,
		cfg.Geofence,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc, fileSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, userHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
