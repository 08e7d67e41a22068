package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/casinoapp/casino-games/internal/config"
	"github.com/casinoapp/casino-games/internal/handlers"
	"github.com/casinoapp/casino-games/internal/middleware"
	"github.com/casinoapp/casino-games/internal/services"
	"github.com/casinoapp/casino-games/web"
)

// apiPrefixes are the path roots owned by the JSON API; everything else
// falls through to the embedded SPA.
var apiPrefixes = []string{"/auth/", "/games", "/favorites", "/api/"}

// SetupRouter configures all routes and returns the router
func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *mux.Router {
	// Create a new router
	router := mux.NewRouter()

	// Add health check endpoint
	router.HandleFunc("/api/health", HealthHandler).Methods("GET")

	// Liveness message at the root
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Casino API is running"})
	}).Methods("GET")

	// Create services
	authService := services.NewAuthService(db)
	gameService := services.NewGameService(db, redisClient)
	favoriteService := services.NewFavoriteService(db)

	// Create handlers using services
	authHandler := handlers.NewAuthHandler(authService, cfg.JWT)
	gameHandler := handlers.NewGameHandler(gameService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)

	// Public auth endpoints (no token required)
	authHandler.RegisterRoutes(router)

	// Guarded subrouters, one per protected path root
	authGuard := middleware.AuthMiddleware(cfg.JWT.SecretKey)

	gamesRouter := router.PathPrefix("/games").Subrouter()
	gamesRouter.Use(authGuard)
	gameHandler.RegisterRoutes(gamesRouter)

	favoritesRouter := router.PathPrefix("/favorites").Subrouter()
	favoritesRouter.Use(authGuard)
	favoriteHandler.RegisterRoutes(favoritesRouter)

	// Serve static files from the embedded assets
	router.PathPrefix("/static/").Handler(http.FileServer(web.GetFileSystem()))

	// Catch-all handler for serving the SPA
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range apiPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				http.NotFound(w, r)
				return
			}
		}

		index, err := web.Index()
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(index)
	})

	return router
}
