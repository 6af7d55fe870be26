package datastore

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/palette-lab/api/models"
)

type FeaturedColorRepository interface {
	Create(featured models.FeaturedColor) (models.FeaturedColor, error)
	GetByDate(date time.Time) (models.FeaturedColor, error)
	GetToday() (models.FeaturedColor, error)
	GetAll() ([]models.FeaturedColor, error)
	Delete(id int) error
}

type FeaturedColorDatabase struct {
	database *sql.DB
}

func NewFeaturedColorDatabase(db *sql.DB) (FeaturedColorDatabase, error) {
	var featuredDB FeaturedColorDatabase
	featuredDB.database = db
	return featuredDB, nil
}

// Create inserts a new featured color into the database
func (fcdb FeaturedColorDatabase) Create(featured models.FeaturedColor) (models.FeaturedColor, error) {
	db := fcdb.database

	sqlStatement := `
		INSERT INTO featured_colors (date, color_name, hex, r, g, b, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := db.QueryRow(
		sqlStatement,
		featured.Date,
		featured.ColorName,
		featured.Hex,
		featured.R,
		featured.G,
		featured.B,
		featured.CreatedAt,
	).Scan(&featured.ID)

	if err != nil {
		return models.FeaturedColor{}, fmt.Errorf("failed to create featured color: %v", err)
	}

	return featured, nil
}

// GetByDate retrieves a featured color by date
func (fcdb FeaturedColorDatabase) GetByDate(date time.Time) (models.FeaturedColor, error) {
	db := fcdb.database

	// Normalize date to start of day
	normalizedDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	sqlStatement := `
		SELECT id, date, color_name, hex, r, g, b, created_at
		FROM featured_colors
		WHERE date = $1`

	row := db.QueryRow(sqlStatement, normalizedDate)

	var featured models.FeaturedColor
	err := row.Scan(
		&featured.ID,
		&featured.Date,
		&featured.ColorName,
		&featured.Hex,
		&featured.R,
		&featured.G,
		&featured.B,
		&featured.CreatedAt,
	)

	switch err {
	case sql.ErrNoRows:
		return models.FeaturedColor{}, NoRowsError{true, err}
	case nil:
		return featured, nil
	default:
		return models.FeaturedColor{}, err
	}
}

// GetToday retrieves today's featured color
func (fcdb FeaturedColorDatabase) GetToday() (models.FeaturedColor, error) {
	today := time.Now()
	return fcdb.GetByDate(today)
}

// GetAll retrieves all featured colors
func (fcdb FeaturedColorDatabase) GetAll() ([]models.FeaturedColor, error) {
	db := fcdb.database

	sqlStatement := `
		SELECT id, date, color_name, hex, r, g, b, created_at
		FROM featured_colors
		ORDER BY date DESC`

	rows, err := db.Query(sqlStatement)
	if err != nil {
		return []models.FeaturedColor{}, err
	}
	defer rows.Close()

	var featuredColors []models.FeaturedColor
	for rows.Next() {
		var fc models.FeaturedColor
		scanErr := rows.Scan(
			&fc.ID,
			&fc.Date,
			&fc.ColorName,
			&fc.Hex,
			&fc.R,
			&fc.G,
			&fc.B,
			&fc.CreatedAt,
		)
		if scanErr != nil {
			return []models.FeaturedColor{}, scanErr
		}
		featuredColors = append(featuredColors, fc)
	}

	if err = rows.Err(); err != nil {
		return []models.FeaturedColor{}, err
	}

	return featuredColors, nil
}

// Delete removes a featured color by ID
func (fcdb FeaturedColorDatabase) Delete(id int) error {
	db := fcdb.database

	sqlStatement := `DELETE FROM featured_colors WHERE id = $1`
	_, err := db.Exec(sqlStatement, id)

	return err
}
