package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"blooddrive-backend/internal/shared"
)

// Client wraps the asynq producer used by the API process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// EnqueueDonorRegistered queues the coordinator notification for a fresh
// registration.
func (c *Client) EnqueueDonorRegistered(payload shared.DonorRegisteredPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeDonorRegistered, data)

	_, err = c.client.Enqueue(task,
		asynq.Queue(shared.QueueNotifications),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", shared.TypeDonorRegistered, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
