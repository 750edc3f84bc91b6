package domain

import "time"

// Audit actions recorded by the async audit pipeline.
const (
	AuditUserRegistered = "user.registered"
	AuditUserLogin      = "user.login"
	AuditUserDeleted    = "user.deleted"
	AuditTodoCreated    = "todo.created"
	AuditTodoUpdated    = "todo.updated"
	AuditTodoDeleted    = "todo.deleted"
)

// AuditEvent is an append-only record of a state-changing operation.
type AuditEvent struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
