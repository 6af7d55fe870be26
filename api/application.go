package api

import (
	"github.com/palette-lab/api/datastore"
	"github.com/palette-lab/api/listings"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseHost       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseName       string
	SSLMode            string
	JwtSecret          string
	JwtAccessDuration  int // seconds
	JwtRefreshDuration int // seconds
	JwtDomain          string
	AllowedOrigins     []string
	ListingsAPIURL     string
	MCPHost            string
	MCPPort            int
	DevMode            bool
}

type Application struct {
	Config            Config
	UserRepo          datastore.UserRepository
	FavoriteRepo      datastore.FavoriteRepository
	FeaturedColorRepo datastore.FeaturedColorRepository
	Listings          *listings.Client
}
