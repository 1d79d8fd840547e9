package domain

// Port is a sea port, unique by name and country.
type Port struct {
	ID      string
	Name    string
	Country string
	Audit
}

type PortCreate struct {
	Name    string
	Country string
}

type PortUpdate struct {
	Name     Optional[string]
	Country  Optional[string]
	IsActive Optional[bool]
}

// TouchesKey reports whether the update may change the natural key.
func (u PortUpdate) TouchesKey() bool {
	return u.Name.Set || u.Country.Set
}

func (u PortUpdate) Apply(p *Port) {
	u.Name.ApplyTo(&p.Name)
	u.Country.ApplyTo(&p.Country)
	u.IsActive.ApplyTo(&p.IsActive)
}
