// file: internals/features/notifications/absentees/service/absentee_scheduler.go
package service

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
)

// StartAbsenteeNotifyScheduler menjalankan NotifyAbsentees sekali sehari
// pada jam yang dikonfigurasi (default: 18, setelah jam sekolah).
func StartAbsenteeNotifyScheduler(db *gorm.DB) {
	go func() {
		hour := 18
		if val := configs.GetEnv("ABSENTEE_NOTIFY_HOUR"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed >= 0 && parsed <= 23 {
				hour = parsed
			}
		}

		for {
			time.Sleep(time.Until(nextRunAt(time.Now(), hour)))

			log.Println("[ABSENTEE] Menjalankan notifikasi absentee harian...")
			result, err := NotifyAbsentees(db)
			if err != nil {
				log.Printf("[ABSENTEE ERROR] Gagal scan absentee: %v", err)
				continue
			}
			log.Printf("[ABSENTEE] SMS terkirim=%d gagal=%d", result.Sent, result.Failed)
		}
	}()
}

// nextRunAt: kejadian berikutnya dari jam `hour` setelah `now`.
func nextRunAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
