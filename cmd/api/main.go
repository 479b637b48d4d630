package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/presensi-app/presensi-backend-go/internal/config"
	appHTTP "github.com/presensi-app/presensi-backend-go/internal/handler/http"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/cron"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/database"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/jwt"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/storage"
	"github.com/presensi-app/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensi-app/presensi-backend-go/internal/service/attendance"
	authService "github.com/presensi-app/presensi-backend-go/internal/service/auth"
	"github.com/presensi-app/presensi-backend-go/internal/service/file"
	holidayService "github.com/presensi-app/presensi-backend-go/internal/service/holiday"
	overtimeService "github.com/presensi-app/presensi-backend-go/internal/service/overtime"
	scheduleService "github.com/presensi-app/presensi-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	clk := clock.System()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workScheduleRepo, fileService, clk)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, attendanceRepo, workScheduleRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	scheduler := cron.NewScheduler(clk)
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, workScheduleRepo, userRepo, clk)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
			UploadDir:      cfg.Storage.BasePath,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		overtimeHandler,
		scheduleHandler,
		holidayHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
