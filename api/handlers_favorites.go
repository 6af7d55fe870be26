package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/palette-lab/api/colors"
	"github.com/palette-lab/api/models"
)

// favorites dispatches /v1/favorites by method: PUT upserts, GET lists,
// DELETE removes.
func (app *Application) favorites(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		app.saveFavorite(w, r)
	case http.MethodGet:
		app.listFavorites(w, r)
	case http.MethodDelete:
		app.deleteFavorite(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// PUT /v1/favorites - Save a color as a favorite (upsert by user+hex)
func (app *Application) saveFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	favoriteReq := &models.FavoriteRequest{}
	if err := json.NewDecoder(r.Body).Decode(favoriteReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	color, parseErr := colors.Parse(favoriteReq.Color)
	if parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}

	// Only the flattened channel values are stored; the ColorInfo is
	// rebuilt from them on read.
	saved, upsertErr := app.FavoriteRepo.Upsert(models.FavoriteColor{
		UserID:    user.UserID,
		Hex:       color.Hex,
		R:         color.RGB.R,
		G:         color.RGB.G,
		B:         color.RGB.B,
		H:         color.HSL.H,
		S:         color.HSL.S,
		L:         color.HSL.L,
		ColorName: color.Name,
		CreatedAt: time.Now(),
	})
	if upsertErr != nil {
		app.internalServerError(w, r, upsertErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(saved)
}

// GET /v1/favorites - List the current user's favorite colors
func (app *Application) listFavorites(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	favorites, listErr := app.FavoriteRepo.GetByUser(user.UserID)
	if listErr != nil {
		app.internalServerError(w, r, listErr)
		return
	}

	// Rebuild the full wire object for each stored favorite.
	type favoriteResponse struct {
		models.ColorInfo
		SavedAt time.Time `json:"savedAt"`
	}

	responses := make([]favoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		responses = append(responses, favoriteResponse{
			ColorInfo: models.ColorInfo{
				Hex:  fav.Hex,
				RGB:  models.RGB{R: fav.R, G: fav.G, B: fav.B},
				HSL:  models.HSL{H: fav.H, S: fav.S, L: fav.L},
				Name: fav.ColorName,
			},
			SavedAt: fav.UpdatedAt,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responses)
}

// DELETE /v1/favorites?hex=... - Remove a favorite color
func (app *Application) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	hex := r.URL.Query().Get("hex")
	if hex == "" {
		app.badRequest(w, r, errors.New("hex query parameter is required"))
		return
	}

	color, parseErr := colors.Parse(hex)
	if parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}

	if _, getErr := app.FavoriteRepo.Get(user.UserID, color.Hex); getErr != nil {
		app.notFound(w, r, errors.New("favorite not found"))
		return
	}

	if delErr := app.FavoriteRepo.Delete(user.UserID, color.Hex); delErr != nil {
		app.internalServerError(w, r, delErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
