package rest

import (
	"time"

	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/utils"
)

type auditView struct {
	CreatedBy string    `json:"createdBy"`
	UpdatedBy *string   `json:"updatedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newAuditView(a domain.Audit) auditView {
	return auditView{
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ---- ports

type portSummary struct {
	ID          string `json:"id"`
	PortName    string `json:"portName"`
	PortCountry string `json:"portCountry"`
	IsActive    bool   `json:"isActive"`
}

type portDetail struct {
	portSummary
	auditView
}

func newPortSummary(p domain.Port) portSummary {
	return portSummary{
		ID:          p.ID,
		PortName:    p.Name,
		PortCountry: p.Country,
		IsActive:    p.IsActive,
	}
}

func newPortDetail(p domain.Port) portDetail {
	return portDetail{newPortSummary(p), newAuditView(p.Audit)}
}

// ---- vessels

type vesselSummary struct {
	ID            string  `json:"id"`
	VesselName    string  `json:"vesselName"`
	VoyageNumber  string  `json:"voyageNumber"`
	ETD           *string `json:"etd"`
	ClosingReefer *string `json:"closingReefer"`
	IsActive      bool    `json:"isActive"`
}

type vesselDetail struct {
	vesselSummary
	auditView
}

func newVesselSummary(v domain.Vessel) vesselSummary {
	return vesselSummary{
		ID:            v.ID,
		VesselName:    v.Name,
		VoyageNumber:  v.VoyageNumber,
		ETD:           formatDate(v.ETD),
		ClosingReefer: formatDate(v.ClosingReefer),
		IsActive:      v.IsActive,
	}
}

func newVesselDetail(v domain.Vessel) vesselDetail {
	return vesselDetail{newVesselSummary(v), newAuditView(v.Audit)}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// ---- contacts

type contactSummary struct {
	ID          string  `json:"id"`
	ContactName string  `json:"contactName"`
	PhoneNumber string  `json:"phoneNumber"`
	Email       *string `json:"email"`
	IsActive    bool    `json:"isActive"`
}

type contactDetail struct {
	contactSummary
	auditView
}

func newContactSummary(c domain.Contact) contactSummary {
	return contactSummary{
		ID:          c.ID,
		ContactName: c.ContactName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		IsActive:    c.IsActive,
	}
}

func newContactDetail(c domain.Contact) contactDetail {
	return contactDetail{newContactSummary(c), newAuditView(c.Audit)}
}

// ---- parties and locations
//
// Party and location shapes name their children after the tree
// (customerLocations, vendorContacts), so they are built as ordered objects.

func setAudit(o *utils.OrderedObject, a domain.Audit) *utils.OrderedObject {
	return o.
		Set("createdBy", a.CreatedBy).
		Set("updatedBy", a.UpdatedBy).
		Set("createdAt", a.CreatedAt).
		Set("updatedAt", a.UpdatedAt)
}

func setAddress(o *utils.OrderedObject, l domain.Location) *utils.OrderedObject {
	return o.
		Set("id", l.ID).
		Set("addressLine1", l.AddressLine1).
		Set("addressLine2", l.AddressLine2).
		Set("addressLine3", l.AddressLine3).
		Set("city", l.City).
		Set("province", l.Province).
		Set("country", l.Country).
		Set("postalCode", l.PostalCode)
}

// newLocationSummary is a location as nested in a party, with its contacts.
func newLocationSummary(tree domain.PartyTree, l domain.Location) *utils.OrderedObject {
	contacts := make([]contactSummary, 0, len(l.Contacts))
	for _, c := range l.Contacts {
		contacts = append(contacts, newContactSummary(c))
	}
	return setAddress(utils.NewOrderedObject(10), l).
		Set(tree.Prefix+"Contacts", contacts).
		Set("isActive", l.IsActive)
}

func newLocationDetail(l domain.Location) *utils.OrderedObject {
	o := setAddress(utils.NewOrderedObject(13), l).Set("isActive", l.IsActive)
	return setAudit(o, l.Audit)
}

func setPartyHead(tree domain.PartyTree, o *utils.OrderedObject, p domain.Party) *utils.OrderedObject {
	return o.
		Set("id", p.ID).
		Set(tree.Prefix+"Name", p.Name).
		Set(tree.Prefix+"Code", p.Code).
		Set("npwp", p.NPWP)
}

func newPartySummary(tree domain.PartyTree, p domain.Party) *utils.OrderedObject {
	return setPartyHead(tree, utils.NewOrderedObject(5), p).Set("isActive", p.IsActive)
}

func newPartyDetail(tree domain.PartyTree, p domain.Party) *utils.OrderedObject {
	locations := make([]*utils.OrderedObject, 0, len(p.Locations))
	for _, l := range p.Locations {
		locations = append(locations, newLocationSummary(tree, l))
	}
	o := setPartyHead(tree, utils.NewOrderedObject(10), p).
		Set(tree.Prefix+"Locations", locations).
		Set("isActive", p.IsActive)
	return setAudit(o, p.Audit)
}
