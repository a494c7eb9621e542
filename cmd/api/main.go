package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/medtrack/medtrack-go/internal/config"
	"github.com/medtrack/medtrack-go/internal/handler"
	"github.com/medtrack/medtrack-go/internal/middleware"
	"github.com/medtrack/medtrack-go/internal/repository"
	"github.com/medtrack/medtrack-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepo)
	medicationService := service.NewMedicationService(medicationRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	medicationHandler := handler.NewMedicationHandler(medicationService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/auth/me", authHandler.HandleMe)

		r.Get("/api/users", userHandler.HandleListUsers)
		r.Get("/api/users/{id}", userHandler.HandleGetUser)
		r.Put("/api/users/{id}", userHandler.HandleUpdateUser)
		r.Delete("/api/users/{id}", userHandler.HandleDeleteUser)

		r.Post("/api/medications/seed", medicationHandler.HandleSeed)
		r.Get("/api/medications", medicationHandler.HandleListMedications)
		r.Post("/api/medications", medicationHandler.HandleCreateMedication)
		r.Get("/api/medications/{id}", medicationHandler.HandleGetMedication)
		r.Put("/api/medications/{id}", medicationHandler.HandleUpdateMedication)
		r.Delete("/api/medications/{id}", medicationHandler.HandleDeleteMedication)

		r.Get("/api/schedules", scheduleHandler.HandleListSchedules)
		r.Get("/api/schedules/today", scheduleHandler.HandleToday)
		r.Post("/api/schedules", scheduleHandler.HandleCreateSchedule)
		r.Put("/api/schedules/{id}", scheduleHandler.HandleUpdateSchedule)
		r.Patch("/api/schedules/{id}/status", scheduleHandler.HandleUpdateStatus)
		r.Delete("/api/schedules/{id}", scheduleHandler.HandleDeleteSchedule)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
