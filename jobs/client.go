package jobs

import (
	"errors"
	"log"
	"os"

	"github.com/hibiken/asynq"
)

var client *asynq.Client

// InitClient creates the asynq client used by request handlers to enqueue
// background work.
func InitClient() {
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	log.Println("✅ Job queue client initialized")
}

// Dispatch enqueues a task fire-and-forget: failures are logged but never
// propagate back into the HTTP request/response cycle. Duplicate task IDs
// are expected when the same natural key is enqueued twice.
func Dispatch(task *asynq.Task, opts ...asynq.Option) {
	if client == nil {
		log.Printf("Job queue client not initialized, dropping task %s", task.Type())
		return
	}

	info, err := client.Enqueue(task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			log.Printf("Task %s already enqueued, skipping", task.Type())
			return
		}
		log.Printf("Failed to enqueue task %s: %v", task.Type(), err)
		return
	}
	log.Printf("Enqueued task %s (id=%s, queue=%s)", task.Type(), info.ID, info.Queue)
}
