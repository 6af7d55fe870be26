package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/palette-lab/api/models"
)

type FavoriteRepository interface {
	Upsert(favorite models.FavoriteColor) (models.FavoriteColor, error)
	GetByUser(userID string) ([]models.FavoriteColor, error)
	Get(userID string, hex string) (models.FavoriteColor, error)
	Delete(userID string, hex string) error
}

type FavoriteDatabase struct {
	database *sql.DB
}

func NewFavoriteDatabase(db *sql.DB) (FavoriteDatabase, error) {
	var favoriteDB FavoriteDatabase
	favoriteDB.database = db
	return favoriteDB, nil
}

// Upsert stores a favorite keyed on (user_id, hex). Saving the same
// color again refreshes the stored channel values and timestamp.
func (fdb FavoriteDatabase) Upsert(favorite models.FavoriteColor) (models.FavoriteColor, error) {
	db := fdb.database

	sqlStatement := `
		INSERT INTO favorite_colors (user_id, hex, r, g, b, h, s, l, color_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		ON CONFLICT (user_id, hex)
		DO UPDATE SET r = $3, g = $4, b = $5, h = $6, s = $7, l = $8, color_name = $9, updated_at = $10
		RETURNING id, created_at`

	now := time.Now()
	err := db.QueryRow(
		sqlStatement,
		favorite.UserID,
		favorite.Hex,
		favorite.R,
		favorite.G,
		favorite.B,
		favorite.H,
		favorite.S,
		favorite.L,
		favorite.ColorName,
		now,
	).Scan(&favorite.ID, &favorite.CreatedAt)

	if err != nil {
		return models.FavoriteColor{}, fmt.Errorf("failed to upsert favorite color: %v", err)
	}

	favorite.UpdatedAt = now
	return favorite, nil
}

// GetByUser retrieves all favorites for a user, most recent first.
func (fdb FavoriteDatabase) GetByUser(userID string) ([]models.FavoriteColor, error) {
	db := fdb.database

	sqlStatement := `
		SELECT id, user_id, hex, r, g, b, h, s, l, color_name, created_at, updated_at
		FROM favorite_colors
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := db.Query(sqlStatement, userID)
	if err != nil {
		return []models.FavoriteColor{}, err
	}
	defer rows.Close()

	var favorites []models.FavoriteColor
	for rows.Next() {
		var fav models.FavoriteColor
		scanErr := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.Hex,
			&fav.R,
			&fav.G,
			&fav.B,
			&fav.H,
			&fav.S,
			&fav.L,
			&fav.ColorName,
			&fav.CreatedAt,
			&fav.UpdatedAt,
		)
		if scanErr != nil {
			return []models.FavoriteColor{}, scanErr
		}
		favorites = append(favorites, fav)
	}

	if rows.Err() != nil {
		return []models.FavoriteColor{}, rows.Err()
	}

	return favorites, nil
}

// Get retrieves a single favorite by user and hex value.
func (fdb FavoriteDatabase) Get(userID string, hex string) (models.FavoriteColor, error) {
	db := fdb.database

	sqlStatement := `
		SELECT id, user_id, hex, r, g, b, h, s, l, color_name, created_at, updated_at
		FROM favorite_colors
		WHERE user_id = $1 AND hex = $2`

	row := db.QueryRow(sqlStatement, userID, hex)

	var fav models.FavoriteColor
	scanErr := row.Scan(
		&fav.ID,
		&fav.UserID,
		&fav.Hex,
		&fav.R,
		&fav.G,
		&fav.B,
		&fav.H,
		&fav.S,
		&fav.L,
		&fav.ColorName,
		&fav.CreatedAt,
		&fav.UpdatedAt,
	)

	switch scanErr {
	case sql.ErrNoRows:
		return models.FavoriteColor{}, NoRowsError{true, scanErr}
	case nil:
		return fav, nil
	default:
		return models.FavoriteColor{}, scanErr
	}
}

// Delete removes a favorite by user and hex value.
func (fdb FavoriteDatabase) Delete(userID string, hex string) error {
	db := fdb.database

	sqlStatement := `DELETE FROM favorite_colors WHERE user_id = $1 AND hex = $2`
	_, err := db.Exec(sqlStatement, userID, hex)

	return err
}
