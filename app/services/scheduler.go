package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/sinholic/epesantren/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 00:10, once a day
			if now.Hour() == 0 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [00:10]...")

				if err := database.AutoActivateCurrentPeriod(db, now.Year()); err != nil {
					log.Printf("Error activating current period: %v", err)
				}
			}
		}
	}()
}
