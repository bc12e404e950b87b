package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditStatus string

const (
	AuditStatusSucceeded AuditStatus = "succeeded"
	AuditStatusFailed    AuditStatus = "failed"
)

// AuditEntry records one admin mutation (KYC decision, wallet adjustment,
// notification send) in the console's own database.
type AuditEntry struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Actor     string      `gorm:"type:varchar(255);not null;index" json:"actor"`
	Action    string      `gorm:"type:varchar(50);not null" json:"action"`
	Resource  string      `gorm:"type:varchar(50);not null;index" json:"resource"`
	TargetID  string      `gorm:"type:varchar(255)" json:"target_id"`
	Detail    string      `gorm:"type:text" json:"detail"`
	Status    AuditStatus `gorm:"type:varchar(20);not null;check:status IN ('succeeded','failed')" json:"status"`
	CreatedAt time.Time   `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_audit_entries_created_at,sort:desc" json:"created_at"`
}

func (a *AuditEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (AuditEntry) TableName() string {
	return "audit_entries"
}
