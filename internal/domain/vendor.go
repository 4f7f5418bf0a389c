package domain

// Vendor identifies the ECU export schema family a trip report came from.
type Vendor int

const (
	VendorCummins Vendor = iota + 1
	VendorDetroit
)

// Vendors returns the closed set of supported vendors in detection order.
func Vendors() []Vendor {
	return []Vendor{VendorCummins, VendorDetroit}
}

// String implements fmt.Stringer. The value is also the vendor key used in mapping files.
func (v Vendor) String() string {
	switch v {
	case VendorCummins:
		return "cummins"
	case VendorDetroit:
		return "detroit"
	default:
		return "unknown"
	}
}

// ParseVendor maps a mapping-file key back to its Vendor.
func ParseVendor(s string) (Vendor, bool) {
	for _, v := range Vendors() {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}
