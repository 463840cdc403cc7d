package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeEmailVerify   = "email:verify"
	TypeSlackNotify   = "slack:notify"
	TypeImageOptimize = "image:optimize"
)

type EmailVerifyPayload struct {
	UserID uint `json:"user_id"`
}

type SlackNotifyPayload struct {
	Text string `json:"text"`
}

type ImageOptimizePayload struct {
	ProfessionalID uint   `json:"professional_id"`
	Path           string `json:"path"`
}

// Task IDs derive from natural keys so redundant enqueues collapse into a
// single pending task instead of duplicating work.
func emailVerifyTaskID(userID uint) string {
	return fmt.Sprintf("email:verify:%d", userID)
}

func imageOptimizeTaskID(path string) string {
	return fmt.Sprintf("image:optimize:%s", path)
}

// NewEmailVerifyTask builds the verification email task for a user.
func NewEmailVerifyTask(userID uint) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(EmailVerifyPayload{UserID: userID})
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.TaskID(emailVerifyTaskID(userID)),
		asynq.MaxRetry(5),
		asynq.Retention(24 * time.Hour),
	}
	return asynq.NewTask(TypeEmailVerify, b), opts, nil
}

// NewSlackNotifyTask builds an operational Slack alert task.
func NewSlackNotifyTask(text string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(SlackNotifyPayload{Text: text})
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Retention(24 * time.Hour),
	}
	return asynq.NewTask(TypeSlackNotify, b), opts, nil
}

// NewImageOptimizeTask builds the photo post-processing task for an
// uploaded file.
func NewImageOptimizeTask(professionalID uint, path string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ImageOptimizePayload{ProfessionalID: professionalID, Path: path})
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.TaskID(imageOptimizeTaskID(path)),
		asynq.Queue("media"),
		asynq.MaxRetry(3),
		asynq.Retention(24 * time.Hour),
	}
	return asynq.NewTask(TypeImageOptimize, b), opts, nil
}
