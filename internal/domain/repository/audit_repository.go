package repository

import "github.com/369Dsharma/Notes-backend/internal/domain/entity"

// AuditRepository appends account audit entries. Writes are best
// effort from the caller's point of view; a failed audit insert must
// not fail the auth flow itself.
type AuditRepository interface {
	Insert(e *entity.AuditEntry) error
}
