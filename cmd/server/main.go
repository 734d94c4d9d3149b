package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Agora/internal/api/middleware"
	"Agora/internal/api/routes"
	"Agora/internal/core/categories"
	"Agora/internal/core/identity"
	"Agora/internal/core/ids"
	"Agora/internal/core/listings"
	"Agora/internal/core/replies"
	"Agora/internal/core/topics"
	"Agora/internal/db/memory"
	postgresRepo "Agora/internal/db/postgres"
)

// repositories groups the four store views so the wiring below is backend
// agnostic.
type repositories struct {
	categories categories.Repository
	listings   listings.Repository
	topics     topics.Repository
	replies    replies.Repository
}

func main() {
	// Identity token secret shared with the external identity provider
	authSecret := os.Getenv("AUTH_JWT_SECRET")
	if authSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}

	gen := ids.NewGenerator()

	// Storage backend: postgres when DATABASE_URL is set, otherwise the
	// in-memory store (dev and test runs)
	var repos repositories
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		db, err := sql.Open("postgres", dbURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database:", err)
		}

		log.Println("Connected to content database")

		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set goose dialect:", err)
		}
		if err := goose.Up(db, "internal/db/migrations"); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		log.Println("Migrations completed successfully")

		repos = repositories{
			categories: postgresRepo.NewCategoryRepository(db),
			listings:   postgresRepo.NewListingRepository(db, gen),
			topics:     postgresRepo.NewTopicRepository(db, gen),
			replies:    postgresRepo.NewReplyRepository(db, gen),
		}
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		store := memory.NewStore(gen)
		repos = repositories{
			categories: store.CategoryRepository(),
			listings:   store.ListingRepository(),
			topics:     store.TopicRepository(),
			replies:    store.ReplyRepository(),
		}
	}

	// Initialize services
	gate := identity.NewGate()
	categoryService := categories.NewCategoryService(repos.categories)
	listingService := listings.NewListingService(repos.listings)
	topicService := topics.NewTopicService(repos.topics, gate)
	replyService := replies.NewReplyService(repos.replies, gate)

	// Seed categories from configuration
	seed := categories.DefaultSeed
	if seedFile := os.Getenv("CATEGORY_SEED_FILE"); seedFile != "" {
		loaded, err := categories.LoadSeedFile(seedFile)
		if err != nil {
			log.Fatal("Failed to load category seed file:", err)
		}
		seed = loaded
	}
	if err := categoryService.Seed(context.Background(), seed); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	log.Printf("Seeded %d categories", len(seed))

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	auth := middleware.NewAuthMiddleware([]byte(authSecret))

	routes.RegisterCategoryRoutes(r, categoryService)
	routes.RegisterListingRoutes(r, listingService, auth)
	routes.RegisterTopicRoutes(r, topicService, auth)
	routes.RegisterReplyRoutes(r, replyService, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Agora content service starting on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
