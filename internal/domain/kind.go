package domain

// Kind identifies a resource family and how its errors and events are spelled.
type Kind struct {
	Name   string // event channel and cache key segment
	Label  string // human readable, used in error messages
	Noun   string // short noun used when the kind is somebody's parent
	Code   string // error code prefix
	Parent string // error code segment used in <CHILD>_NOT_IN_<PARENT>
	Suffix string // appended to every error code of the kind

	// KeyLabels names the two halves of the natural key, if the kind has one.
	KeyLabels [2]string
}

func (k Kind) code(reason string) string {
	return k.Code + "_" + reason + k.Suffix
}

var (
	KindPort = Kind{
		Name:      "port",
		Label:     "Port",
		Noun:      "port",
		Code:      "PORT",
		Parent:    "PORT",
		KeyLabels: [2]string{"name", "country"},
	}
	KindVessel = Kind{
		Name:      "vessel",
		Label:     "Vessel",
		Noun:      "vessel",
		Code:      "VESSEL",
		Parent:    "VESSEL",
		KeyLabels: [2]string{"name", "voyage number"},
	}

	KindCustomer = Kind{
		Name:      "customer",
		Label:     "Customer",
		Noun:      "customer",
		Code:      "CUSTOMER",
		Parent:    "CUSTOMER",
		Suffix:    "_ERROR",
		KeyLabels: [2]string{"name", "code"},
	}
	KindCustomerLocation = Kind{
		Name:   "customer_location",
		Label:  "Customer location",
		Noun:   "location",
		Code:   "CUSTOMER_LOCATION",
		Parent: "LOCATION",
		Suffix: "_ERROR",
	}
	KindCustomerContact = Kind{
		Name:   "customer_contact",
		Label:  "Customer contact",
		Noun:   "contact",
		Code:   "CUSTOMER_CONTACT",
		Parent: "CONTACT",
		Suffix: "_ERROR",
	}

	KindVendor = Kind{
		Name:      "vendor",
		Label:     "Vendor",
		Noun:      "vendor",
		Code:      "VENDOR",
		Parent:    "VENDOR",
		Suffix:    "_ERROR",
		KeyLabels: [2]string{"name", "code"},
	}
	KindVendorLocation = Kind{
		Name:   "vendor_location",
		Label:  "Vendor location",
		Noun:   "location",
		Code:   "VENDOR_LOCATION",
		Parent: "LOCATION",
		Suffix: "_ERROR",
	}
	KindVendorContact = Kind{
		Name:   "vendor_contact",
		Label:  "Vendor contact",
		Noun:   "contact",
		Code:   "VENDOR_CONTACT",
		Parent: "CONTACT",
		Suffix: "_ERROR",
	}
)

// PartyTree declares one Party -> Location -> Contact ownership tree.
// Customers and vendors share the shape and differ only in naming.
type PartyTree struct {
	Root     Kind
	Location Kind
	Contact  Kind

	// Prefix is the JSON field prefix ("customer" gives customerName, customerLocations).
	Prefix string
}

var (
	CustomerTree = PartyTree{
		Root:     KindCustomer,
		Location: KindCustomerLocation,
		Contact:  KindCustomerContact,
		Prefix:   "customer",
	}
	VendorTree = PartyTree{
		Root:     KindVendor,
		Location: KindVendorLocation,
		Contact:  KindVendorContact,
		Prefix:   "vendor",
	}
)
