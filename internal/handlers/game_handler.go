package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/casinoapp/casino-games/internal/services"
	"github.com/casinoapp/casino-games/internal/utils"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// RegisterRoutes mounts the game routes on the guarded /games subrouter
func (h *GameHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sports", h.GetSports).Methods("GET")
	router.HandleFunc("", h.GetGames).Methods("GET")
}

// GetGames returns the catalog, optionally filtered by ?sport=, annotated
// with the requesting user's favorite flags
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}

	games, err := h.gameService.ListGames(userID, r.URL.Query().Get("sport"))
	if err != nil {
		writeServiceError(w, err, "Error fetching games")
		return
	}

	writeJSON(w, http.StatusOK, games)
}

// GetSports returns the distinct sport labels in the catalog
func (h *GameHandler) GetSports(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.GetUserIDFromContext(r.Context()); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}

	sports, err := h.gameService.ListSports(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching sports")
		return
	}

	writeJSON(w, http.StatusOK, sports)
}
