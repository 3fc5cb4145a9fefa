package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_geofence/internal/models"
)

const (
	webhookQueueKey = "campus_breach_events"

	EventTypeBreach = "student.breach"
)

// WebhookEvent - полезная нагрузка вебхука о нарушении геозоны
type WebhookEvent struct {
	Type        string    `json:"type"`
	BreachID    uuid.UUID `json:"breach_id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewWebhookEvent собирает событие вебхука из BreachEvent
func NewWebhookEvent(ev models.BreachEvent) WebhookEvent {
	return WebhookEvent{
		Type:        EventTypeBreach,
		BreachID:    ev.ID,
		StudentID:   ev.StudentID,
		StudentName: ev.StudentName,
		Latitude:    ev.Position.Latitude,
		Longitude:   ev.Position.Longitude,
		Message:     ev.Message,
		Timestamp:   ev.Timestamp,
	}
}

// RedisWebhookPublisher ставит события в очередь Redis для WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие нарушения в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, ev models.BreachEvent) error {
	payload, err := json.Marshal(NewWebhookEvent(ev))
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH слева, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
