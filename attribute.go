package govsa

import (
	"fmt"
)

// Attribute represents a standard RADIUS attribute TLV
type Attribute struct {
	Type  uint8
	Value []byte
}

// VendorAttribute represents a vendor-specific attribute (VSA): the vendor's
// Private Enterprise Number, the attribute code within that vendor's space
// and the encoded payload. It is the unit handed to the packet layer.
type VendorAttribute struct {
	VendorID   uint32
	VendorType uint8
	Value      []byte
}

// NewAttribute creates a standard RADIUS attribute. The value must fit the
// one-byte Length field: at least 1 and at most 253 bytes.
func NewAttribute(attrType uint8, value []byte) (*Attribute, error) {
	if attrType == 0 {
		return nil, fmt.Errorf("%w: type 0 is reserved", ErrInvalidAttributeCode)
	}
	if len(value) == 0 {
		return nil, ErrEmptyValue
	}
	if len(value) > MaxAttributeValueLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(value), MaxAttributeValueLength)
	}

	return &Attribute{
		Type:  attrType,
		Value: value,
	}, nil
}

// NewVendorAttribute creates a vendor-specific attribute. It fails fast on
// anything that could not be represented on the wire: a zero vendor ID, the
// reserved attribute code 0, an empty payload or a payload the nested
// length bytes cannot carry (over 247 bytes, so the outer attribute stays
// within its 255-byte Length ceiling).
func NewVendorAttribute(vendorID uint32, vendorType uint8, value []byte) (*VendorAttribute, error) {
	if vendorID == 0 {
		return nil, ErrInvalidVendorID
	}
	if vendorType == 0 {
		return nil, fmt.Errorf("%w: vendor type 0 is reserved", ErrInvalidAttributeCode)
	}
	if len(value) == 0 {
		return nil, ErrEmptyValue
	}
	if len(value) > MaxVSAValueLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(value), MaxVSAValueLength)
	}

	return &VendorAttribute{
		VendorID:   vendorID,
		VendorType: vendorType,
		Value:      value,
	}, nil
}

// WireFormat returns the attribute as on-wire bytes: Type(1) + Length(1) + Value
func (a *Attribute) WireFormat() []byte {
	out := make([]byte, AttributeHeaderLength+len(a.Value))
	out[0] = a.Type
	out[1] = uint8(AttributeHeaderLength + len(a.Value))
	copy(out[2:], a.Value)
	return out
}

// WireFormat returns the full Vendor-Specific attribute per RFC 2865 Section 5.26:
//
//	Type(1)=26 | Length(1) | Vendor-Id(4) | Vendor-Type(1) | Vendor-Length(1) | Vendor-Value
//
// where Length = 8 + len(value) and Vendor-Length = 2 + len(value).
// The output is a fresh buffer; identical inputs produce identical bytes.
func (va *VendorAttribute) WireFormat() []byte {
	out := make([]byte, AttributeHeaderLength+VendorSpecificHeaderLength+len(va.Value))

	out[0] = AttributeTypeVendorSpecific
	out[1] = uint8(len(out))

	// Vendor-Id (4 bytes, big-endian)
	EncodeIntegerTo(out[2:6], va.VendorID)

	// Inner sub-attribute header
	out[6] = va.VendorType
	out[7] = uint8(AttributeHeaderLength + len(va.Value))

	copy(out[8:], va.Value)
	return out
}

// ToAttribute converts the VSA to a standard Attribute (Type 26) whose value
// is the Vendor-Id plus the inner sub-attribute, for callers that assemble
// packets from generic attributes.
func (va *VendorAttribute) ToAttribute() *Attribute {
	wire := va.WireFormat()
	return &Attribute{
		Type:  AttributeTypeVendorSpecific,
		Value: wire[AttributeHeaderLength:],
	}
}

// String returns a string representation of the attribute
func (a *Attribute) String() string {
	return fmt.Sprintf("Type=%d, Length=%d, Value=%x", a.Type, AttributeHeaderLength+len(a.Value), a.Value)
}

// String returns a string representation of the vendor attribute
func (va *VendorAttribute) String() string {
	return fmt.Sprintf("VendorID=%d, Type=%d, Value=%x", va.VendorID, va.VendorType, va.Value)
}
