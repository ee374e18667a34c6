package entity

import "time"

// AuditLog registro del canal de auditoría. Se inserta después de cada
// mutación exitosa; un fallo al insertarlo nunca se propaga al caller.
type AuditLog struct {
	ID         string
	UserID     string
	Action     string // create, update, delete, confirm, receive, pay, ...
	EntityType string
	EntityID   string
	Payload    string // JSON con los valores enviados
	IPAddress  string
	CreatedAt  time.Time
}
