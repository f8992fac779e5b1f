package main

import (
	"os"

	"scripturenotes/internal/domain/sqlite"
	"scripturenotes/internal/domain/sqlite/repository"
	"scripturenotes/internal/http/handler"
	"scripturenotes/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()

	// Loads from .env when present; plain env vars work without one
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	// Init SQLite
	db, err := sqlite.Init(envOr("DB_PATH", "./database.db"))
	if err != nil {
		panic(err)
	}
	log.Info("database initialized")

	// Getting repos
	noteRepo := repository.NewNoteRepository(db)

	// Getting services
	noteService := service.NewNoteService(noteRepo, validate)

	// Getting handlers
	noteRoutes := handler.NewNoteDefault(noteService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	e.GET("/api/health", handler.HealthCheck)

	// Notes
	e.GET("/api/notes", noteRoutes.GetNotes)
	e.GET("/api/notes/:id", noteRoutes.GetNote)
	e.POST("/api/notes", noteRoutes.CreateNote)
	e.PUT("/api/notes/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notes/:id", noteRoutes.DeleteNote)

	if err := e.Start(":" + envOr("PORT", "3001")); err != nil {
		panic(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
