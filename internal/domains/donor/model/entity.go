package model

import (
	"time"

	"github.com/google/uuid"
)

// Donor represents one registration record. Records are append-only:
// once persisted they are never mutated or deleted.
type Donor struct {
	ID uuid.UUID `json:"id"`

	FullName   string `json:"full_name"`
	BloodGroup string `json:"blood_group"`
	Age        int    `json:"age"`
	Year       string `json:"year"`

	// Seq is the insertion-order sequence assigned by the store. It breaks
	// ties between donors sharing the same DonatedAt.
	Seq int64 `json:"-"`

	// DonatedAt is set at creation time and immutable thereafter.
	DonatedAt time.Time `json:"donated_at"`
}
