package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// MatchEventPayload is what the outbox publisher ships to Kafka for
// match_created and match_status_updated events.
type MatchEventPayload struct {
	Timestamp  time.Time `json:"timestamp"`
	Event      string    `json:"event"`
	MatchID    string    `json:"match_id"`
	FoodPostID string    `json:"food_post_id"`
	OrgID      string    `json:"org_id"`
	DonorID    string    `json:"donor_id,omitempty"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status"`
	Score      float64   `json:"score,omitempty"`
}
