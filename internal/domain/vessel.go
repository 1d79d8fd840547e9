package domain

import "time"

// Vessel is one voyage of a ship, unique by name and voyage number.
type Vessel struct {
	ID            string
	Name          string
	VoyageNumber  string
	ETD           *time.Time
	ClosingReefer *time.Time
	Audit
}

type VesselCreate struct {
	Name          string
	VoyageNumber  string
	ETD           *time.Time
	ClosingReefer *time.Time
}

type VesselUpdate struct {
	Name          Optional[string]
	VoyageNumber  Optional[string]
	ETD           Optional[*time.Time]
	ClosingReefer Optional[*time.Time]
	IsActive      Optional[bool]
}

func (u VesselUpdate) TouchesKey() bool {
	return u.Name.Set || u.VoyageNumber.Set
}

func (u VesselUpdate) Apply(v *Vessel) {
	u.Name.ApplyTo(&v.Name)
	u.VoyageNumber.ApplyTo(&v.VoyageNumber)
	u.ETD.ApplyTo(&v.ETD)
	u.ClosingReefer.ApplyTo(&v.ClosingReefer)
	u.IsActive.ApplyTo(&v.IsActive)
}
