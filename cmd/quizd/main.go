package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	api "github.com/quizado/quizado/internal/api/http"
	"github.com/quizado/quizado/internal/auth"
	"github.com/quizado/quizado/internal/config"
	"github.com/quizado/quizado/internal/db"
	"github.com/quizado/quizado/internal/grading"
	"github.com/quizado/quizado/internal/quiz"
	"github.com/quizado/quizado/internal/result"
	"github.com/quizado/quizado/internal/seed"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	quizzes, results, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	if cfg.Seed {
		n, err := seed.Quizzes(ctx, quizzes)
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		if n > 0 {
			log.Printf("seeded %d demo quizzes", n)
		}
	}

	grader := grading.NewGrader()
	authSvc := auth.NewService(cfg.AuthSecret, cfg.AdminUser, cfg.AdminPassHash)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.HealthHandler())

		if cfg.EnableLocalAuth {
			r.Post("/auth/login", auth.LoginHandler(authSvc))
		}

		// open: browse quizzes, take them, review history
		r.Get("/quizzes", api.ListQuizzesHandler(quizzes))
		r.Get("/quizzes/{quizID}", api.GetQuizHandler(quizzes))
		r.Post("/quizzes/{quizID}/submit", api.SubmitQuizHandler(quizzes, results, grader))
		r.Get("/results", api.ListResultsHandler(results))
		r.Get("/results/{resultID}", api.GetResultHandler(results))
		r.Post("/results", api.CreateResultHandler(results))
		r.Delete("/results/{resultID}", api.DeleteResultHandler(results))

		// authoring and bulk deletion
		r.Group(func(pr chi.Router) {
			if cfg.EnableLocalAuth {
				pr.Use(auth.JWTMiddleware(authSvc))
			}
			pr.Post("/quizzes", api.CreateQuizHandler(quizzes))
			pr.Put("/quizzes/{quizID}", api.UpdateQuizHandler(quizzes))
			pr.Delete("/quizzes/{quizID}", api.DeleteQuizHandler(quizzes))
			pr.Delete("/results", api.DeleteAllResultsHandler(results))
		})
	})

	log.Printf("listening on %s (store=%s)", cfg.HTTPAddr, cfg.StoreDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openStores(ctx context.Context, cfg config.Config) (quiz.Store, result.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return quiz.NewMemoryStore(), result.NewMemoryStore(), nil
	case config.StoreFile:
		qs, err := quiz.NewJSONStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		rs, err := result.NewJSONStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return qs, rs, nil
	case config.StoreSQLite, config.StorePostgres:
		dbh, err := db.Open(ctx, db.Driver(cfg.StoreDriver), cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		return quiz.NewSQLStore(dbh), result.NewSQLStore(dbh), nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
