package govsa

// NewDefault creates a dictionary pre-loaded with the bundled vendor
// catalogs. This is a convenience function for users who want the common
// vendors without registering them manually. Currently includes:
//   - Acme Packet vendor attributes
//   - Alcatel vendor attributes
//   - WISPr vendor attributes
//   - Mikrotik vendor attributes
//
// Returns an error if any definition is invalid or any attribute name is
// duplicated, which would indicate a programming error in the bundled
// definitions.
//
// Example usage:
//
//	dict, err := govsa.NewDefault()
//	if err != nil {
//		return err
//	}
//	attr, err := dict.EncodeByName("Acme-SIP-Status", 200)
func NewDefault() (*Dictionary, error) {
	dict := NewDictionary()

	if err := dict.AddVendor(AcmeVendorDefinition); err != nil {
		return nil, err
	}

	if err := dict.AddVendor(AlcatelVendorDefinition); err != nil {
		return nil, err
	}

	if err := dict.AddVendor(WISPrVendorDefinition); err != nil {
		return nil, err
	}

	if err := dict.AddVendor(MikrotikVendorDefinition); err != nil {
		return nil, err
	}

	return dict, nil
}
