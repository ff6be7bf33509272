package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample children and sleep events. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Child{}, &domain.SleepEvent{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	now := time.Now().UTC()
	children := []domain.Child{
		{
			ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:      "Ana",
			BirthDate: now.AddDate(-1, -2, 0),
			Timezone:  "Europe/Madrid",
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:      "Leo",
			BirthDate: now.AddDate(0, -8, 0),
			Timezone:  "America/Mexico_City",
		},
	}

	for _, child := range children {
		if err := db.Where("id = ?", child.ID).FirstOrCreate(&child).Error; err != nil {
			return fmt.Errorf("failed to create child %s: %w", child.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, child := range children {
		if err := seedEventsForChild(db, child, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedEventsForChild(db *gorm.DB, child domain.Child, rng *rand.Rand) error {
	states := []string{"calm", "fussy", "crying"}
	nightNotes := []string{
		"",
		"se despertó 2 veces",
		"se despertó 1 vez, pesadilla",
		"lloró un poco antes de dormirse",
	}

	now := time.Now().UTC()
	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		// Nocturnal sleep: start in the evening, wake logged the next morning
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 20, rng.Intn(45), 0, 0, time.UTC)
		delay := 5 + rng.Intn(25)
		wakeup := bedtime.Add(time.Duration(9+rng.Intn(3)) * time.Hour).Add(time.Duration(rng.Intn(40)) * time.Minute)

		sleepReqID := fmt.Sprintf("seed-sleep-%s-%d", child.ID, i)
		sleepEvent := domain.SleepEvent{
			ChildID:         child.ID,
			Type:            "sleep",
			StartTime:       bedtime,
			SleepDelay:      &delay,
			Notes:           nightNotes[rng.Intn(len(nightNotes))],
			EmotionalState:  states[rng.Intn(len(states))],
			ClientRequestID: &sleepReqID,
		}
		if err := db.Where("client_request_id = ?", sleepReqID).FirstOrCreate(&sleepEvent).Error; err != nil {
			return fmt.Errorf("failed to create sleep event: %w", err)
		}

		wakeReqID := fmt.Sprintf("seed-wake-%s-%d", child.ID, i)
		wakeEvent := domain.SleepEvent{
			ChildID:         child.ID,
			Type:            "wake",
			StartTime:       wakeup,
			ClientRequestID: &wakeReqID,
		}
		if err := db.Where("client_request_id = ?", wakeReqID).FirstOrCreate(&wakeEvent).Error; err != nil {
			return fmt.Errorf("failed to create wake event: %w", err)
		}

		// Occasional explicit night waking with a duration
		if rng.Float32() < 0.3 {
			nwStart := bedtime.Add(time.Duration(3+rng.Intn(4)) * time.Hour)
			nwEnd := nwStart.Add(time.Duration(10+rng.Intn(25)) * time.Minute)
			nwReqID := fmt.Sprintf("seed-nw-%s-%d", child.ID, i)
			nwEvent := domain.SleepEvent{
				ChildID:         child.ID,
				Type:            "night_waking",
				StartTime:       nwStart,
				EndTime:         &nwEnd,
				ClientRequestID: &nwReqID,
			}
			if err := db.Where("client_request_id = ?", nwReqID).FirstOrCreate(&nwEvent).Error; err != nil {
				return fmt.Errorf("failed to create night waking event: %w", err)
			}
		}

		// Night feeding on some nights
		if rng.Float32() < 0.2 {
			nfStart := bedtime.Add(time.Duration(5+rng.Intn(3)) * time.Hour)
			nfReqID := fmt.Sprintf("seed-nf-%s-%d", child.ID, i)
			nfEvent := domain.SleepEvent{
				ChildID:         child.ID,
				Type:            "night_feeding",
				StartTime:       nfStart,
				ClientRequestID: &nfReqID,
			}
			if err := db.Where("client_request_id = ?", nfReqID).FirstOrCreate(&nfEvent).Error; err != nil {
				return fmt.Errorf("failed to create night feeding event: %w", err)
			}
		}

		// One or two naps, occasionally a failed attempt
		napCount := 1 + rng.Intn(2)
		for n := 0; n < napCount; n++ {
			napStart := time.Date(date.Year(), date.Month(), date.Day(), 10+4*n, rng.Intn(60), 0, 0, time.UTC)
			napReqID := fmt.Sprintf("seed-nap-%s-%d-%d", child.ID, i, n)
			napEvent := domain.SleepEvent{
				ChildID:         child.ID,
				Type:            "nap",
				StartTime:       napStart,
				ClientRequestID: &napReqID,
			}
			if rng.Float32() < 0.1 {
				napEvent.DidNotSleep = true
				napEvent.Notes = "no durmió, lloró"
			} else {
				napDelay := 5 + rng.Intn(15)
				napEnd := napStart.Add(time.Duration(40+rng.Intn(80)) * time.Minute)
				napEvent.SleepDelay = &napDelay
				napEvent.EndTime = &napEnd
			}
			if err := db.Where("client_request_id = ?", napReqID).FirstOrCreate(&napEvent).Error; err != nil {
				return fmt.Errorf("failed to create nap event: %w", err)
			}
		}
	}
	return nil
}
