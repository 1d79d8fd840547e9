package domain

// Party is a customer or a vendor, unique by name and code within its tree.
type Party struct {
	ID        string
	Name      string
	Code      string
	NPWP      *string
	Locations []Location
	Audit
}

type PartyCreate struct {
	Name string
	Code string
	NPWP *string
}

type PartyUpdate struct {
	Name     Optional[string]
	Code     Optional[string]
	NPWP     Optional[*string]
	IsActive Optional[bool]
}

func (u PartyUpdate) TouchesKey() bool {
	return u.Name.Set || u.Code.Set
}

func (u PartyUpdate) Apply(p *Party) {
	u.Name.ApplyTo(&p.Name)
	u.Code.ApplyTo(&p.Code)
	u.NPWP.ApplyTo(&p.NPWP)
	u.IsActive.ApplyTo(&p.IsActive)
}

// Location is an address owned by exactly one party.
type Location struct {
	ID           string
	PartyID      string
	AddressLine1 string
	AddressLine2 *string
	AddressLine3 *string
	City         string
	Province     string
	Country      string
	PostalCode   *string
	Contacts     []Contact
	Audit
}

type LocationCreate struct {
	AddressLine1 string
	AddressLine2 *string
	AddressLine3 *string
	City         string
	Province     string
	Country      string
	PostalCode   *string
}

type LocationUpdate struct {
	AddressLine1 Optional[string]
	AddressLine2 Optional[*string]
	AddressLine3 Optional[*string]
	City         Optional[string]
	Province     Optional[string]
	Country      Optional[string]
	PostalCode   Optional[*string]
	IsActive     Optional[bool]
}

func (u LocationUpdate) Apply(l *Location) {
	u.AddressLine1.ApplyTo(&l.AddressLine1)
	u.AddressLine2.ApplyTo(&l.AddressLine2)
	u.AddressLine3.ApplyTo(&l.AddressLine3)
	u.City.ApplyTo(&l.City)
	u.Province.ApplyTo(&l.Province)
	u.Country.ApplyTo(&l.Country)
	u.PostalCode.ApplyTo(&l.PostalCode)
	u.IsActive.ApplyTo(&l.IsActive)
}

// Contact is a person reachable at exactly one location.
type Contact struct {
	ID          string
	LocationID  string
	ContactName string
	PhoneNumber string
	Email       *string
	Audit
}

type ContactCreate struct {
	ContactName string
	PhoneNumber string
	Email       *string
}

type ContactUpdate struct {
	ContactName Optional[string]
	PhoneNumber Optional[string]
	Email       Optional[*string]
	IsActive    Optional[bool]
}

func (u ContactUpdate) Apply(c *Contact) {
	u.ContactName.ApplyTo(&c.ContactName)
	u.PhoneNumber.ApplyTo(&c.PhoneNumber)
	u.Email.ApplyTo(&c.Email)
	u.IsActive.ApplyTo(&c.IsActive)
}
