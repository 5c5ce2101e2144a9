// internal/core/domain/reference.go
package domain

import "github.com/google/uuid"

// Reference is the slice of an external entity (pond, season, nursery batch)
// the core needs: its identity and a display name.
type Reference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
