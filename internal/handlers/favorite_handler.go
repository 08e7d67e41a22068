package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/casinoapp/casino-games/internal/services"
	"github.com/casinoapp/casino-games/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// RegisterRoutes mounts the favorite routes on the guarded /favorites
// subrouter. DELETE shares the toggle semantics with POST on purpose.
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.GetFavorites).Methods("GET")
	router.HandleFunc("/{gameId:[0-9]+}", h.ToggleFavorite).Methods("POST", "DELETE")
}

// ToggleFavorite flips the favorite state of a game for the current user
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}

	vars := mux.Vars(r)
	gameID, err := strconv.Atoi(vars["gameId"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid game ID"})
		return
	}

	added, err := h.favoriteService.Toggle(userID, uint(gameID))
	if err != nil {
		writeServiceError(w, err, "Error toggling favorite")
		return
	}

	if added {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"added":   true,
			"message": "Added to favorites",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"removed": true,
		"message": "Removed from favorites",
	})
}

// GetFavorites returns the current user's favorited games
func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}

	games, err := h.favoriteService.ListFavorites(userID)
	if err != nil {
		writeServiceError(w, err, "Error fetching favorites")
		return
	}

	writeJSON(w, http.StatusOK, games)
}
