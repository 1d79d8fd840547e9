package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit columns shared by every table.
type Audit struct {
	IsActive  bool      `gorm:"type:boolean;not null"`
	CreatedBy string    `gorm:"type:text;not null"`
	UpdatedBy *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;not null"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;not null"`
}

type Port struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	PortName    string `gorm:"type:text;not null;uniqueIndex:idx_ports_natural_key"`
	PortCountry string `gorm:"type:text;not null;uniqueIndex:idx_ports_natural_key"`
	Audit       `gorm:"embedded"`
}

type Vessel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	VesselName    string          `gorm:"type:text;not null;uniqueIndex:idx_vessels_natural_key"`
	VoyageNumber  string          `gorm:"type:text;not null;uniqueIndex:idx_vessels_natural_key"`
	Etd           *datatypes.Date `gorm:"type:date"`
	ClosingReefer *datatypes.Date `gorm:"type:date"`
	Audit         `gorm:"embedded"`
}

// Party, Location and Contact back both the customer and the vendor tree;
// the table is chosen per tree, so indexes are created by MigratePostgres.
type Party struct {
	ID    string  `gorm:"primaryKey;type:uuid"`
	Name  string  `gorm:"type:text;not null"`
	Code  string  `gorm:"type:text;not null"`
	Npwp  *string `gorm:"type:text"`
	Audit `gorm:"embedded"`
}

type Location struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	PartyID      string  `gorm:"type:uuid;not null"`
	AddressLine1 string  `gorm:"type:text;not null"`
	AddressLine2 *string `gorm:"type:text"`
	AddressLine3 *string `gorm:"type:text"`
	City         string  `gorm:"type:text;not null"`
	Province     string  `gorm:"type:text;not null"`
	Country      string  `gorm:"type:text;not null"`
	PostalCode   *string `gorm:"type:text"`
	Audit        `gorm:"embedded"`
}

type Contact struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	LocationID  string  `gorm:"type:uuid;not null"`
	ContactName string  `gorm:"type:text;not null"`
	PhoneNumber string  `gorm:"type:text;not null"`
	Email       *string `gorm:"type:text"`
	Audit       `gorm:"embedded"`
}

// TreeTables names the tables of one party tree.
type TreeTables struct {
	Parties   string
	Locations string
	Contacts  string
}

var (
	CustomerTables = TreeTables{
		Parties:   "customers",
		Locations: "customer_locations",
		Contacts:  "customer_contacts",
	}
	VendorTables = TreeTables{
		Parties:   "vendors",
		Locations: "vendor_locations",
		Contacts:  "vendor_contacts",
	}
)
