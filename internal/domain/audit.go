package domain

import "time"

// SystemActor is used when a request carries no identity.
const SystemActor = "system"

// Audit holds the attribution and lifecycle columns every record carries.
type Audit struct {
	IsActive  bool
	CreatedBy string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stamp marks a record as freshly created by actor.
func (a *Audit) Stamp(actor string, now time.Time) {
	a.IsActive = true
	a.CreatedBy = actor
	a.UpdatedBy = nil
	a.CreatedAt = now
	a.UpdatedAt = now
}

// Touch records an update by actor.
func (a *Audit) Touch(actor string, now time.Time) {
	a.UpdatedBy = &actor
	a.UpdatedAt = now
}
