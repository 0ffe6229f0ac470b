package entity

import (
	"time"

	"github.com/google/uuid"
)

// Drop is a themed, time-boxed release wave grouping a subset of the catalog.
// At most one drop is current at any time; the flag is flipped atomically by
// DropRepository.SetCurrent, never by read-modify-write from the caller.
type Drop struct {
	ID          uuid.UUID // The unique identifier of the drop.
	Code        int       // Stable integer code products reference via Product.DropCode.
	Name        string    // Display name, e.g. "Capsule 004 Night Shift".
	Description string    // Marketing copy for the drop page.
	ReleasedAt  time.Time // Time the drop went (or goes) live.
	IsCurrent   bool      // True for the single drop currently featured.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
