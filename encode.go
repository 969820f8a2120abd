package govsa

import (
	"fmt"
)

// Encode looks up the attribute definition for (vendorID, attrID) and
// encodes value into a ready-to-wire VendorAttribute. This is the generic
// path that replaces per-attribute constructor functions: the dictionary
// entry decides the codec, enum-restricted attributes reject illegal values
// before any bytes are produced, and the builder enforces the TLV length
// ceilings.
func (d *Dictionary) Encode(vendorID uint32, attrID uint8, value any) (*VendorAttribute, error) {
	if _, ok := d.LookupVendorByID(vendorID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVendor, vendorID)
	}

	attr, ok := d.LookupAttributeByID(vendorID, attrID)
	if !ok {
		return nil, fmt.Errorf("%w: vendor %d attribute %d", ErrUnknownAttribute, vendorID, attrID)
	}

	return encodeAttribute(vendorID, attr, value)
}

// EncodeByName encodes value for the named attribute. Names are globally
// unique across vendors, so the vendor is resolved from the name. For
// enum-restricted attributes the value may be the symbolic name of a legal
// value (e.g. "Internal-Disconnect") instead of the integer itself.
func (d *Dictionary) EncodeByName(name string, value any) (*VendorAttribute, error) {
	attr, ok := d.LookupAttributeByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}

	vendorID, ok := d.LookupVendorIDByAttributeName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no vendor", ErrUnknownAttribute, name)
	}

	return encodeAttribute(vendorID, attr, value)
}

func encodeAttribute(vendorID uint32, attr *AttributeDefinition, value any) (*VendorAttribute, error) {
	value, err := resolveRestrictedValue(attr, value)
	if err != nil {
		return nil, err
	}

	payload, err := EncodeValue(value, attr.DataType)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", attr.Name, err)
	}

	va, err := NewVendorAttribute(vendorID, attr.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", attr.Name, err)
	}

	return va, nil
}

// resolveRestrictedValue maps symbolic enum names to their integers and
// rejects integers outside an attribute's legal value set. Unrestricted
// attributes pass through untouched.
func resolveRestrictedValue(attr *AttributeDefinition, value any) (any, error) {
	if !attr.Restricted() {
		return value, nil
	}

	if name, ok := value.(string); ok {
		resolved, exists := attr.Values[name]
		if !exists {
			return nil, fmt.Errorf("%w: %q is not a value of %s", ErrValueNotAllowed, name, attr.Name)
		}
		return resolved, nil
	}

	numeric, err := coerceUint32(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", attr.Name, err)
	}

	if !attr.AllowsValue(numeric) {
		return nil, fmt.Errorf("%w: %d is not a value of %s", ErrValueNotAllowed, numeric, attr.Name)
	}

	return numeric, nil
}

func coerceUint32(value any) (uint32, error) {
	switch v := value.(type) {
	case uint32:
		return v, nil
	case int32:
		return uint32(v), nil
	case int:
		return uint32(v), nil
	case uint:
		return uint32(v), nil
	case nil:
		return 0, ErrNullValue
	default:
		return 0, fmt.Errorf("expected integer for restricted attribute, got %T", value)
	}
}
