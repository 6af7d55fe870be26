package scheduler

import (
	"log"
	"time"

	"github.com/palette-lab/api/colors"
	"github.com/palette-lab/api/datastore"
	"github.com/palette-lab/api/models"
)

type Scheduler struct {
	FeaturedColorRepo datastore.FeaturedColorRepository
	midnight          *time.Timer
	ticker            *time.Ticker
	done              chan struct{}
}

func NewScheduler(repo datastore.FeaturedColorRepository) *Scheduler {
	return &Scheduler{
		FeaturedColorRepo: repo,
		done:              make(chan struct{}),
	}
}

// Start begins the scheduler to run at midnight every day
func (s *Scheduler) Start() {
	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next featured color generation in %v", durationUntilMidnight)

	// Wait until midnight, then generate the first color
	s.midnight = time.AfterFunc(durationUntilMidnight, func() {
		s.GenerateFeaturedColor()

		// After first run, schedule to run every 24 hours
		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.GenerateFeaturedColor()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop cancels the pending midnight run and the daily ticker. Safe to
// call before the first run has fired.
func (s *Scheduler) Stop() {
	if s.midnight != nil {
		s.midnight.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
	log.Println("Scheduler stopped")
}

// GenerateFeaturedColor samples a random color from the palette engine
// and stores it as the color of the day. Idempotent per day.
func (s *Scheduler) GenerateFeaturedColor() error {
	log.Println("Generating featured color...")

	today := time.Now()
	normalizedToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	existing, err := s.FeaturedColorRepo.GetByDate(normalizedToday)
	if err == nil && existing.ID != 0 {
		log.Printf("Featured color already exists for %s: %s", normalizedToday.Format("2006-01-02"), existing.ColorName)
		return nil
	}

	color := colors.Random()

	featured := models.FeaturedColor{
		Date:      normalizedToday,
		ColorName: color.Name,
		Hex:       color.Hex,
		R:         color.RGB.R,
		G:         color.RGB.G,
		B:         color.RGB.B,
		CreatedAt: time.Now(),
	}

	saved, err := s.FeaturedColorRepo.Create(featured)
	if err != nil {
		log.Printf("Error saving featured color to database: %v", err)
		return err
	}

	log.Printf("Successfully generated featured color: %s (%s) for %s",
		saved.ColorName, saved.Hex, saved.Date.Format("2006-01-02"))

	return nil
}
