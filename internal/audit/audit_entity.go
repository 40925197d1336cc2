package audit

import (
	"time"

	"cadebeck-hr/internal/shared/jsonb"

	"github.com/google/uuid"
)

type Log struct {
	ID         uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	ActorID    *uuid.UUID                   `gorm:"type:uuid;index"`
	Action     string                       `gorm:"size:100;not null;index"`
	TargetType string                       `gorm:"size:50;not null"`
	TargetID   string                       `gorm:"size:64;index"`
	Details    jsonb.Column[map[string]any] `gorm:"type:jsonb"`
	RequestID  string                       `gorm:"size:64"`
	CreatedAt  time.Time                    `gorm:"not null;index"`
}

func (Log) TableName() string {
	return "audit_logs"
}
