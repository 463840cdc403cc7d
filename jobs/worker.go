package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/oficiosya/oficios-api/db"
	"github.com/oficiosya/oficios-api/models"
	"github.com/oficiosya/oficios-api/utils"
)

// InitWorker runs the async worker in background.
func InitWorker() {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 5,
				"media":   1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmailVerify, handleEmailVerify)
	mux.HandleFunc(TypeSlackNotify, handleSlackNotify)
	mux.HandleFunc(TypeImageOptimize, handleImageOptimize)

	go func() {
		log.Println("🚀 Starting job worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("Max worker start attempts reached. Exiting.")
				}
				time.Sleep(startupBackoff(attempts))
			} else {
				break
			}
		}
	}()
}

// startupBackoff doubles the wait between worker start attempts: 2s, 4s,
// 8s and so on.
func startupBackoff(attempt int) time.Duration {
	return time.Duration(1<<attempt) * time.Second
}

// handleEmailVerify sends the OTP verification email. Already-verified
// users make the task a no-op, which keeps at-least-once delivery safe.
func handleEmailVerify(ctx context.Context, task *asynq.Task) error {
	var p EmailVerifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("Invalid email:verify payload: %v", err)
		return err
	}

	var user models.User
	if err := db.DB.First(&user, p.UserID).Error; err != nil {
		return fmt.Errorf("user %d not found: %w", p.UserID, err)
	}
	if user.IsVerified {
		return nil
	}

	subject := "Verificá tu cuenta en OficiosYa"
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu código de verificación es <strong>%s</strong>.</p>
		<p>El código vence el %s.</p>
		<p>Equipo OficiosYa</p>
	`, user.Name, user.OTP, user.OTPExpiresAt.Format("02/01/2006 15:04"))

	return utils.SendEmail(user.Email, subject, body)
}

func handleSlackNotify(ctx context.Context, task *asynq.Task) error {
	var p SlackNotifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("Invalid slack:notify payload: %v", err)
		return err
	}
	return utils.NotifySlack(p.Text)
}

// handleImageOptimize resizes an uploaded profile photo, pushes it to
// Cloudinary and stores the resulting URL on the professional profile. The
// temp file is removed only after a successful upload so retries can rerun
// the whole chain.
func handleImageOptimize(ctx context.Context, task *asynq.Task) error {
	var p ImageOptimizePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("Invalid image:optimize payload: %v", err)
		return err
	}

	if _, err := os.Stat(p.Path); os.IsNotExist(err) {
		// A previous attempt already finished and cleaned up.
		return nil
	}

	if err := utils.OptimizeImage(p.Path); err != nil {
		return fmt.Errorf("optimize %s: %w", p.Path, err)
	}

	publicID := fmt.Sprintf("professional_%d", p.ProfessionalID)
	secureURL, err := utils.UploadToCloudinary(p.Path, publicID, "profile_photos")
	if err != nil {
		return fmt.Errorf("upload %s: %w", p.Path, err)
	}

	if err := db.DB.Model(&models.Professional{}).
		Where("id = ?", p.ProfessionalID).
		Update("photo_url", secureURL).Error; err != nil {
		return err
	}

	if err := os.Remove(p.Path); err != nil {
		log.Printf("Failed to remove temp upload %s: %v", p.Path, err)
	}
	return nil
}
