package http

import (
	"log/slog"
	"os"

	"github.com/SonyFebri/hris-backend/internal/config"
	"github.com/SonyFebri/hris-backend/internal/handler/http/middleware"
	"github.com/SonyFebri/hris-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	checkClockHandler CheckClockHandler,
	letterHandler LetterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.RegisterAdmin)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/employee", authHandler.LoginEmployee)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", companyHandler.List)
					r.Post("/", companyHandler.Create)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", companyHandler.GetByID)

					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", companyHandler.Update)
						r.Delete("/", companyHandler.Delete)
					})
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Onboard)
					r.Get("/", employeeHandler.List)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Resign)
				})
				r.Get("/{id}", employeeHandler.GetByID)
				r.Get("/{employeeID}/schedules", shiftHandler.ListSchedules)
			})

			r.Route("/shift-settings", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", shiftHandler.CreateSetting)
				r.Get("/", shiftHandler.ListSettings)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", shiftHandler.GetSetting)
					r.Put("/", shiftHandler.UpdateSetting)
					r.Delete("/", shiftHandler.DeleteSetting)

					r.Route("/times", func(r chi.Router) {
						r.Post("/", shiftHandler.AddTimeWindow)
						r.Put("/{windowID}", shiftHandler.UpdateTimeWindow)
						r.Delete("/{windowID}", shiftHandler.RemoveTimeWindow)
					})
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", shiftHandler.AssignSchedule)
				r.Put("/{id}", shiftHandler.UpdateSchedule)
				r.Delete("/{id}", shiftHandler.DeleteSchedule)
			})

			r.Route("/check-clocks", func(r chi.Router) {
				r.Post("/", checkClockHandler.Record)
				r.Get("/", checkClockHandler.List)
				r.Get("/{id}", checkClockHandler.GetByID)
				r.Post("/{id}/proof", checkClockHandler.UploadProof)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/respond", checkClockHandler.Respond)
					r.Delete("/{id}", checkClockHandler.Delete)
				})
			})

			r.Route("/letter-formats", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", letterHandler.CreateFormat)
				r.Get("/", letterHandler.ListFormats)
				r.Get("/{id}", letterHandler.GetFormat)
				r.Put("/{id}", letterHandler.UpdateFormat)
				r.Delete("/{id}", letterHandler.DeleteFormat)
			})

			r.Route("/letters", func(r chi.Router) {
				r.Post("/", letterHandler.Create)
				r.Get("/", letterHandler.List)
				r.Get("/{id}", letterHandler.GetByID)
				r.Post("/{id}/file", letterHandler.UploadFile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/respond", letterHandler.Respond)
					r.Delete("/{id}", letterHandler.Delete)
				})
			})
		})
	})

	return r
}
