package audit

import (
	"time"
)

// Audit represents a persisted store-mutation event (pass issued, staff changed,
// login). Best-effort trail: written asynchronously after the mutation commits.
type Audit struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor    string `gorm:"type:varchar(255)" json:"actor"`
	Action   string `gorm:"type:varchar(50);not null" json:"action"`
	Entity   string `gorm:"type:varchar(50);not null" json:"entity"`
	EntityID string `gorm:"type:varchar(36)" json:"entity_id"`
	Detail   string `gorm:"type:text" json:"detail"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
