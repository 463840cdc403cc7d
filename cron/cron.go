package cron

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/models"
)

// StartCronJobs initializes and starts the scheduler for maintenance jobs
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()

	// Daily at 04:00: drop accounts that never verified their email
	_, err := c.AddFunc("0 4 * * *", purgeUnverifiedAccounts)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	// Hourly: sweep temp uploads the image worker never consumed
	_, err = c.AddFunc("0 * * * *", cleanupTempUploads)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started for maintenance jobs")
}

// purgeUnverifiedAccounts deletes accounts that never completed OTP
// verification within 30 days of signing up.
func purgeUnverifiedAccounts() {
	cutoff := time.Now().AddDate(0, 0, -30)

	var users []models.User
	err := db.DB.Where("is_verified = ? AND created_at < ?", false, cutoff).Find(&users).Error
	if err != nil {
		log.Printf("Error fetching unverified accounts: %v", err)
		return
	}

	for _, user := range users {
		if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Professional{}).Error; err != nil {
			log.Printf("Failed to delete profile for user %d: %v", user.ID, err)
			continue
		}
		if err := db.DB.Delete(&user).Error; err != nil {
			log.Printf("Failed to delete user %d: %v", user.ID, err)
			continue
		}
		log.Printf("Purged unverified account %d (%s)", user.ID, user.Email)
	}

	if len(users) > 0 {
		log.Printf("Purged %d unverified accounts", len(users))
	}
}

// cleanupTempUploads removes stale photo uploads older than a day. The
// image worker deletes files it processed; anything left behind failed all
// its retries.
func cleanupTempUploads() {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		log.Printf("Error reading upload dir %s: %v", uploadDir, err)
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "photo_") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(uploadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("Failed to remove stale upload %s: %v", path, err)
			continue
		}
		log.Printf("Removed stale upload %s", path)
	}
}
