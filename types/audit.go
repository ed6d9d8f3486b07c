package types

import (
	"time"
)

// AuditEntry is the in-flight form of a store-mutation event before it is
// persisted by the async audit logger.
type AuditEntry struct {
	Actor     string
	Action    string
	Entity    string
	EntityID  string
	Detail    string
	CreatedAt time.Time
}
