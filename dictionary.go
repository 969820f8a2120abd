package govsa

import (
	"fmt"
	"sync"
)

// Dictionary provides fast lookup for vendor attribute definitions.
// It is safe for concurrent reads after initialization is complete.
// AddVendor acquires a write lock and should be called during
// initialization only.
type Dictionary struct {
	mu sync.RWMutex

	// Vendor metadata (VendorDefinition.Name is for documentation only)
	vendorByID map[uint32]*VendorDefinition

	// Vendor attributes by ID (nested maps - zero string allocation on lookup)
	vendorAttrByID map[uint32]map[uint8]*AttributeDefinition // vendorID -> attrID -> attr

	// Attribute lookup by name. Attribute names are globally unique across
	// vendors, enforced in AddVendor.
	attrByName map[string]*AttributeDefinition

	// Reverse lookup: attribute name -> vendor ID
	attrNameToVendorID map[string]uint32
}

// NewDictionary creates a new empty dictionary with fast lookup indices
func NewDictionary() *Dictionary {
	return &Dictionary{
		vendorByID:         make(map[uint32]*VendorDefinition),
		vendorAttrByID:     make(map[uint32]map[uint8]*AttributeDefinition),
		attrByName:         make(map[string]*AttributeDefinition),
		attrNameToVendorID: make(map[string]uint32),
	}
}

// AddVendor adds a vendor and its attributes to the dictionary.
// The definition is validated first; an error-level validation issue or an
// attribute name that conflicts with an already-registered vendor rejects
// the whole vendor, so the dictionary never holds a partial catalog.
func (d *Dictionary) AddVendor(vendor *VendorDefinition) error {
	if vendor == nil {
		return fmt.Errorf("vendor definition is nil")
	}

	if issues := ValidateVendor(vendor); issues.HasErrors() {
		return fmt.Errorf("invalid vendor definition %q: %s", vendor.Name, issues.First(LevelError))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.vendorByID[vendor.ID]; exists {
		return fmt.Errorf("duplicate vendor id %d", vendor.ID)
	}

	for _, attr := range vendor.Attributes {
		if _, exists := d.attrByName[attr.Name]; exists {
			return fmt.Errorf("duplicate attribute name %q: already exists", attr.Name)
		}
	}

	d.vendorByID[vendor.ID] = vendor

	if d.vendorAttrByID[vendor.ID] == nil {
		d.vendorAttrByID[vendor.ID] = make(map[uint8]*AttributeDefinition)
	}

	for _, attr := range vendor.Attributes {
		d.vendorAttrByID[vendor.ID][attr.ID] = attr
		d.attrByName[attr.Name] = attr
		d.attrNameToVendorID[attr.Name] = vendor.ID
	}

	return nil
}

// LookupVendorByID finds a vendor by ID
func (d *Dictionary) LookupVendorByID(vendorID uint32) (*VendorDefinition, bool) {
	d.mu.RLock()
	vendor, exists := d.vendorByID[vendorID]
	d.mu.RUnlock()
	return vendor, exists
}

// LookupAttributeByID finds a vendor attribute by vendor ID and attribute ID
func (d *Dictionary) LookupAttributeByID(vendorID uint32, attrID uint8) (*AttributeDefinition, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if attrs, ok := d.vendorAttrByID[vendorID]; ok {
		if attr, ok := attrs[attrID]; ok {
			return attr, true
		}
	}
	return nil, false
}

// LookupAttributeByName finds a vendor attribute by its globally-unique name
func (d *Dictionary) LookupAttributeByName(name string) (*AttributeDefinition, bool) {
	d.mu.RLock()
	attr, exists := d.attrByName[name]
	d.mu.RUnlock()
	return attr, exists
}

// LookupVendorIDByAttributeName finds the vendor ID for an attribute by its name.
// Returns (0, false) if the attribute is unknown.
func (d *Dictionary) LookupVendorIDByAttributeName(name string) (uint32, bool) {
	d.mu.RLock()
	vendorID, exists := d.attrNameToVendorID[name]
	d.mu.RUnlock()
	return vendorID, exists
}

// GetAllVendors returns all vendors in the dictionary
func (d *Dictionary) GetAllVendors() []*VendorDefinition {
	d.mu.RLock()
	defer d.mu.RUnlock()

	vendors := make([]*VendorDefinition, 0, len(d.vendorByID))
	for _, vendor := range d.vendorByID {
		vendors = append(vendors, vendor)
	}
	return vendors
}
