package logger

import (
	"log"

	audit_model "port-pass/models/audit"
	"port-pass/types"

	"gorm.io/gorm"
)

// AsyncLogger persists audit entries for store mutations without blocking the
// mutation path. Entries are buffered on a channel and written by a single
// goroutine; the trail is best-effort.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.AuditEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.AuditEntry, 100), // Buffered channel to hold audit entries
	}
}

func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous audit logger...")

	for entry := range logger.channel {
		dbAudit := audit_model.Audit{
			Actor:     entry.Actor,
			Action:    entry.Action,
			Entity:    entry.Entity,
			EntityID:  entry.EntityID,
			Detail:    entry.Detail,
			CreatedAt: entry.CreatedAt,
		}

		if err := logger.db.Create(&dbAudit).Error; err != nil {
			log.Printf("Failed to insert audit entry: %v", err)
		}
	}
}

// Log pushes an audit entry into the channel
func (logger *AsyncLogger) Log(entry types.AuditEntry) {
	logger.channel <- entry
}
