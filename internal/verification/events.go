package verification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationEvent is the audit row written for every transition attempt,
// whether or not the upstream write was confirmed.
type VerificationEvent struct {
	ID          string    `gorm:"primaryKey;column:id"`
	Kind        string    `gorm:"column:kind"`
	RecordID    string    `gorm:"column:record_id"`
	ActorUserID string    `gorm:"column:actor_user_id"`
	Action      string    `gorm:"column:action"`
	FromStatus  string    `gorm:"column:from_status"`
	ToStatus    string    `gorm:"column:to_status"`
	Note        *string   `gorm:"column:note"`
	Outcome     string    `gorm:"column:outcome"` // confirmed|local_only
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (VerificationEvent) TableName() string { return "verification_events" }

// EventLog persists audit events. A nil db disables the trail (DB_DSN unset);
// writes are best-effort and never block a transition.
type EventLog struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewEventLog(db *gorm.DB, logger *slog.Logger) *EventLog {
	return &EventLog{db: db, logger: logger}
}

func (l *EventLog) Record(ctx context.Context, ev VerificationEvent) {
	if l == nil || l.db == nil {
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	if err := l.db.WithContext(ctx).Create(&ev).Error; err != nil {
		l.logger.Warn("audit event write failed", "record_id", ev.RecordID, "err", err)
	}
}

func (l *EventLog) ForRecord(ctx context.Context, recordID string) ([]VerificationEvent, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	var out []VerificationEvent
	err := l.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out, "record_id = ?", recordID).Error
	return out, err
}
