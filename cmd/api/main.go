package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SonyFebri/hris-backend/internal/config"
	appHTTP "github.com/SonyFebri/hris-backend/internal/handler/http"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
	"github.com/SonyFebri/hris-backend/internal/pkg/email"
	"github.com/SonyFebri/hris-backend/internal/pkg/jwt"
	"github.com/SonyFebri/hris-backend/internal/pkg/storage"
	"github.com/SonyFebri/hris-backend/internal/repository/postgresql"
	authService "github.com/SonyFebri/hris-backend/internal/service/auth"
	checkclockService "github.com/SonyFebri/hris-backend/internal/service/checkclock"
	companyService "github.com/SonyFebri/hris-backend/internal/service/company"
	employeeService "github.com/SonyFebri/hris-backend/internal/service/employee"
	"github.com/SonyFebri/hris-backend/internal/service/file"
	letterService "github.com/SonyFebri/hris-backend/internal/service/letter"
	shiftService "github.com/SonyFebri/hris-backend/internal/service/shift"
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

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftSettingRepo := postgresql.NewShiftSettingRepository(db)
	shiftTimeRepo := postgresql.NewShiftTimeRepository(db)
	shiftScheduleRepo := postgresql.NewShiftScheduleRepository(db)
	checkClockRepo := postgresql.NewCheckClockRepository(db)
	letterFormatRepo := postgresql.NewLetterFormatRepository(db)
	letterRepo := postgresql.NewLetterRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}
	fileSvc := file.NewFileService(fileStorage)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(userRepo, companyRepo, employeeRepo, jwtSvc, emailSvc, cfg.App)
	companySvc := companyService.NewCompanyService(db, companyRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, companyRepo)
	shiftSvc := shiftService.NewShiftService(shiftSettingRepo, shiftTimeRepo, shiftScheduleRepo, employeeRepo)
	checkClockSvc := checkclockService.NewCheckClockService(checkClockRepo, shiftScheduleRepo, shiftTimeRepo, employeeRepo, fileSvc)
	letterSvc := letterService.NewLetterService(letterRepo, letterFormatRepo, employeeRepo, fileSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	checkClockHandler := appHTTP.NewCheckClockHandler(checkClockSvc)
	letterHandler := appHTTP.NewLetterHandler(letterSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		companyHandler,
		employeeHandler,
		shiftHandler,
		checkClockHandler,
		letterHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
