package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/palette-lab/api/colors"
	"github.com/palette-lab/api/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Palette Lab API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	errParsingJson := json.NewDecoder(r.Body).Decode(userSignup)
	if errParsingJson != nil {
		app.badJSONRequest(w, r, errParsingJson)
		return
	}

	if len(userSignup.Username) == 0 {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}

	// Check for spaces in username
	for _, char := range userSignup.Username {
		if char == ' ' {
			app.badRequest(w, r, errors.New("username cannot contain spaces"))
			return
		}
	}

	// Create new user
	newUser, newUserErr := models.NewUser(*userSignup)
	if newUserErr != nil {
		app.internalServerError(w, r, newUserErr)
		return
	}

	// Check if email already exists
	_, getErr := app.UserRepo.GetUserByEmail(newUser.Email)
	if getErr == nil {
		app.userAlreadyExists(w, r, getErr)
		return
	}

	// Check if username already exists
	_, getUsernameErr := app.UserRepo.GetUserByUsername(newUser.Username)
	if getUsernameErr == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	// Store new user in database
	storedUser, errStoringNewUser := app.UserRepo.Create(newUser)
	if errStoringNewUser != nil {
		app.internalServerError(w, r, errStoringNewUser)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Validate user credentials
	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	// Generate JWT access token
	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessClaims := models.JWTClaims{
		UserID:    user.UserID,
		Email:     user.Email,
		Kind:      user.Kind,
		Scope:     "authentication",
		TokenType: models.JWT.ACCESS_COOKIE_NAME,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(app.Config.JwtSecret))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.ACCESS_COOKIE_NAME,
		Value:    accessTokenString,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  accessExpiry,
	})

	// Generate refresh token
	refreshExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtRefreshDuration))
	refreshClaims := models.JWTClaims{
		UserID:    user.UserID,
		Email:     user.Email,
		Kind:      user.Kind,
		Scope:     "refresh",
		TokenType: models.JWT.REFRESH_COOKIE_NAME,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(app.Config.JwtSecret))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.REFRESH_COOKIE_NAME,
		Value:    refreshTokenString,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  refreshExpiry,
	})

	w.WriteHeader(http.StatusOK)
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// PUT /v1/users/me/update - Update current authenticated user
func (app *Application) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	currentUser, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	updateReq := &models.UserUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(updateReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	currentUser.Username = updateReq.Username
	currentUser.Email = updateReq.Email
	currentUser.UpdatedAt = time.Now()

	updatedUser, updateErr := app.UserRepo.Update(currentUser)
	if updateErr != nil {
		app.internalServerError(w, r, updateErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updatedUser)
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, retrieveErr := app.UserRepo.GetAllUsers()
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	json.NewEncoder(w).Encode(users)
}

// GET /v1/colors/parse?input=... - Parse a free-form color string
func (app *Application) parseColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input := r.URL.Query().Get("input")
	if input == "" {
		app.badRequest(w, r, errors.New("input query parameter is required"))
		return
	}

	color, err := colors.Parse(input)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(color)
}

// GET /v1/colors/random - Get a random color
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(colors.Random())
}

// GET /v1/palettes?color=...&variant=...&count=... - Generate a palette
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	base, err := colors.Parse(r.URL.Query().Get("color"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	variant, err := colors.ParseVariant(r.URL.Query().Get("variant"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	count := 0
	if rawCount := r.URL.Query().Get("count"); rawCount != "" {
		count, err = strconv.Atoi(rawCount)
		if err != nil {
			app.badRequest(w, r, errors.New("count must be an integer"))
			return
		}
		if variant != colors.Monochromatic {
			app.badRequest(w, r, errors.New("count only applies to monochromatic palettes"))
			return
		}
		if count < colors.MinMonochromeCount || count > colors.MaxMonochromeCount {
			app.badRequest(w, r, fmt.Errorf("count must be within [%d, %d]",
				colors.MinMonochromeCount, colors.MaxMonochromeCount))
			return
		}
	}

	response := models.PaletteResponse{
		Variant: string(variant),
		Base:    base,
		Colors:  colors.Generate(base, variant, count),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GET /v1/colors/featured - Get today's featured color
func (app *Application) getFeaturedColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	featured, err := app.FeaturedColorRepo.GetToday()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := models.FeaturedColorResponse{
		Date:  featured.Date.Format("2006-01-02"),
		Color: colors.FromRGB(models.RGB{R: featured.R, G: featured.G, B: featured.B}),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GET /v1/colors/featured/all - Get all featured colors
func (app *Application) getAllFeaturedColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	featuredColors, err := app.FeaturedColorRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	var responses []models.FeaturedColorResponse
	for _, fc := range featuredColors {
		responses = append(responses, models.FeaturedColorResponse{
			Date:  fc.Date.Format("2006-01-02"),
			Color: colors.FromRGB(models.RGB{R: fc.R, G: fc.G, B: fc.B}),
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responses)
}

// POST /v1/admin/colors/featured/generate - Force featured color generation
func (app *Application) generateFeaturedColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	today := time.Now()
	normalizedToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	// Check if today's color already exists
	existing, err := app.FeaturedColorRepo.GetByDate(normalizedToday)
	if err == nil && existing.ID != 0 {
		response := models.FeaturedColorResponse{
			Date:  existing.Date.Format("2006-01-02"),
			Color: colors.FromRGB(models.RGB{R: existing.R, G: existing.G, B: existing.B}),
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Featured color already exists for today",
			"color":   response,
		})
		return
	}

	color := colors.Random()
	saved, createErr := app.FeaturedColorRepo.Create(models.FeaturedColor{
		Date:      normalizedToday,
		ColorName: color.Name,
		Hex:       color.Hex,
		R:         color.RGB.R,
		G:         color.RGB.G,
		B:         color.RGB.B,
		CreatedAt: time.Now(),
	})
	if createErr != nil {
		app.internalServerError(w, r, createErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Generated featured color",
		"color": models.FeaturedColorResponse{
			Date:  saved.Date.Format("2006-01-02"),
			Color: color,
		},
	})
}

// GET /v1/listings?city=...&limit=... - Search property listings
func (app *Application) searchListings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			app.badRequest(w, r, errors.New("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	listingResponse, err := app.Listings.Search(r.URL.Query().Get("city"), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(listingResponse)
}
