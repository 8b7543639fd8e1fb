package domain

import "time"

// AuditEvent records who did what to which resource. Events are written
// asynchronously; losing one on shutdown is acceptable, blocking a request on
// the audit trail is not.
type AuditEvent struct {
	Actor      string    `json:"actor"`
	Action     Action    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	At         time.Time `json:"at"`
}
