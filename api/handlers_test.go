package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palette-lab/api/datastore"
	"github.com/palette-lab/api/listings"
	"github.com/palette-lab/api/models"
)

// stubUserRepo satisfies datastore.UserRepository with a single
// in-memory user.
type stubUserRepo struct {
	datastore.UserRepository
	user models.User
}

func (s stubUserRepo) Get(userID string) (models.User, error) {
	if userID != s.user.UserID {
		return models.User{}, datastore.NoRowsError{NoRows: true}
	}
	return s.user, nil
}

// stubFavoriteRepo records upserts and deletes in memory.
type stubFavoriteRepo struct {
	saved map[string]models.FavoriteColor
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{saved: map[string]models.FavoriteColor{}}
}

func (s *stubFavoriteRepo) Upsert(fav models.FavoriteColor) (models.FavoriteColor, error) {
	fav.ID = len(s.saved) + 1
	fav.UpdatedAt = time.Now()
	s.saved[fav.UserID+fav.Hex] = fav
	return fav, nil
}

func (s *stubFavoriteRepo) GetByUser(userID string) ([]models.FavoriteColor, error) {
	var out []models.FavoriteColor
	for _, fav := range s.saved {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (s *stubFavoriteRepo) Get(userID string, hex string) (models.FavoriteColor, error) {
	fav, ok := s.saved[userID+hex]
	if !ok {
		return models.FavoriteColor{}, datastore.NoRowsError{NoRows: true}
	}
	return fav, nil
}

func (s *stubFavoriteRepo) Delete(userID string, hex string) error {
	delete(s.saved, userID+hex)
	return nil
}

const testSecret = "test-secret"

func testApp() *Application {
	return &Application{
		Config: Config{
			JwtSecret: testSecret,
		},
		UserRepo: stubUserRepo{user: models.User{
			UserID:   "user-1",
			Username: "tester",
			Email:    "tester@example.com",
			Kind:     models.Member,
			Approved: true,
		}},
		FavoriteRepo: newStubFavoriteRepo(),
	}
}

func authCookie(t *testing.T) *http.Cookie {
	t.Helper()

	claims := models.JWTClaims{
		UserID: "user-1",
		Email:  "tester@example.com",
		Kind:   models.Member,
		Scope:  "authentication",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return &http.Cookie{Name: models.JWT.ACCESS_COOKIE_NAME, Value: token}
}

func TestParseColorHandler(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/colors/parse?input=%23FF0000", nil)
	rec := httptest.NewRecorder()
	app.parseColor(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var color models.ColorInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&color))
	assert.Equal(t, "#FF0000", color.Hex)
	assert.Equal(t, models.RGB{R: 255, G: 0, B: 0}, color.RGB)
	assert.Equal(t, models.HSL{H: 0, S: 100, L: 50}, color.HSL)
	assert.Equal(t, "Vivid Red", color.Name)
}

func TestParseColorHandlerRejectsBadInput(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/colors/parse?input=notacolor", nil)
	rec := httptest.NewRecorder()
	app.parseColor(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var handlerErr HandlerError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&handlerErr))
	assert.Contains(t, handlerErr.Description, "invalid color format")
}

func TestGetRandomColorHandler(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/colors/random", nil)
	rec := httptest.NewRecorder()
	app.getRandomColor(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var color models.ColorInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&color))
	assert.Len(t, color.Hex, 7)
	assert.NotEmpty(t, color.Name)
}

func TestGeneratePaletteHandler(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/palettes?color=%23FF0000&variant=complementary", nil)
	rec := httptest.NewRecorder()
	app.generatePalette(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var palette models.PaletteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&palette))
	assert.Equal(t, "complementary", palette.Variant)
	require.Len(t, palette.Colors, 1)
	assert.Equal(t, "#00FFFF", palette.Colors[0].Hex)
}

func TestGeneratePaletteHandlerValidation(t *testing.T) {
	app := testApp()

	tests := []struct {
		name  string
		query string
	}{
		{"unknown variant", "color=%23FF0000&variant=duotone"},
		{"bad base color", "color=nope&variant=triadic"},
		{"count out of bounds", "color=%23FF0000&variant=monochromatic&count=11"},
		{"count below bounds", "color=%23FF0000&variant=monochromatic&count=2"},
		{"count on harmony variant", "color=%23FF0000&variant=triadic&count=5"},
		{"non-numeric count", "color=%23FF0000&variant=monochromatic&count=five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/palettes?"+tt.query, nil)
			rec := httptest.NewRecorder()
			app.generatePalette(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGenerateMonochromaticPaletteHandler(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/palettes?color=hsl(120,%2060%25,%2050%25)&variant=monochromatic&count=5", nil)
	rec := httptest.NewRecorder()
	app.generatePalette(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var palette models.PaletteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&palette))
	require.Len(t, palette.Colors, 5)
	for i, wantL := range []int{10, 30, 50, 70, 90} {
		assert.Equal(t, wantL, palette.Colors[i].HSL.L)
	}
}

func TestSaveAndListFavorites(t *testing.T) {
	app := testApp()
	cookie := authCookie(t)

	saveReq := httptest.NewRequest(http.MethodPut, "/v1/favorites", strings.NewReader(`{"color": "rgb(255, 0, 0)"}`))
	saveReq.AddCookie(cookie)
	saveRec := httptest.NewRecorder()
	app.favorites(saveRec, saveReq)

	require.Equal(t, http.StatusOK, saveRec.Code)

	var saved models.FavoriteColor
	require.NoError(t, json.NewDecoder(saveRec.Body).Decode(&saved))
	assert.Equal(t, "#FF0000", saved.Hex)
	assert.Equal(t, "Vivid Red", saved.ColorName)
	assert.Equal(t, "user-1", saved.UserID)

	listReq := httptest.NewRequest(http.MethodGet, "/v1/favorites", nil)
	listReq.AddCookie(cookie)
	listRec := httptest.NewRecorder()
	app.favorites(listRec, listReq)

	require.Equal(t, http.StatusOK, listRec.Code)

	var favorites []models.ColorInfo
	require.NoError(t, json.NewDecoder(listRec.Body).Decode(&favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "#FF0000", favorites[0].Hex)
	assert.Equal(t, models.HSL{H: 0, S: 100, L: 50}, favorites[0].HSL)
}

func TestDeleteFavorite(t *testing.T) {
	app := testApp()
	cookie := authCookie(t)

	saveReq := httptest.NewRequest(http.MethodPut, "/v1/favorites", strings.NewReader(`{"color": "#336699"}`))
	saveReq.AddCookie(cookie)
	app.favorites(httptest.NewRecorder(), saveReq)

	delReq := httptest.NewRequest(http.MethodDelete, "/v1/favorites?hex=%23336699", nil)
	delReq.AddCookie(cookie)
	delRec := httptest.NewRecorder()
	app.favorites(delRec, delReq)

	require.Equal(t, http.StatusNoContent, delRec.Code)

	// Deleting again reports not found.
	againRec := httptest.NewRecorder()
	againReq := httptest.NewRequest(http.MethodDelete, "/v1/favorites?hex=%23336699", nil)
	againReq.AddCookie(cookie)
	app.favorites(againRec, againReq)

	require.Equal(t, http.StatusNotFound, againRec.Code)
}

func TestFavoritesRequireValidColor(t *testing.T) {
	app := testApp()
	cookie := authCookie(t)

	saveReq := httptest.NewRequest(http.MethodPut, "/v1/favorites", strings.NewReader(`{"color": "notacolor"}`))
	saveReq.AddCookie(cookie)
	saveRec := httptest.NewRecorder()
	app.favorites(saveRec, saveReq)

	require.Equal(t, http.StatusBadRequest, saveRec.Code)
}

func TestSearchListingsHandler(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 1, "listings": [{"id": "l-9", "address": "1 Main St", "city": "seattle", "price": 700000}]}`))
	}))
	defer backend.Close()

	app := testApp()
	app.Listings = listings.NewClient(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/v1/listings?city=seattle", nil)
	rec := httptest.NewRecorder()
	app.searchListings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ListingAPIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Listings, 1)
	assert.Equal(t, "l-9", response.Listings[0].ID)
}
