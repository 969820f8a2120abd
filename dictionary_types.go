package govsa

// DataType represents the wire data type of a vendor attribute per RFC 2865 Section 5
type DataType string

const (
	DataTypeString   DataType = "string"   // UTF-8 text, no terminator
	DataTypeOctets   DataType = "octets"   // Raw bytes, caller-defined interpretation
	DataTypeInteger  DataType = "integer"  // 32-bit unsigned integer, big-endian
	DataTypeSigned   DataType = "signed"   // 32-bit signed integer, two's complement big-endian
	DataTypeIPAddr   DataType = "ipaddr"   // IPv4 address, 4 octets network order
	DataTypeIPv6Addr DataType = "ipv6addr" // IPv6 address, 16 octets network order (RFC 6929)
	DataTypeDate     DataType = "date"     // Unix timestamp as 32-bit unsigned integer
)

// FixedLength returns the required payload length for fixed-size data types,
// or 0 for variable-length types (string, octets).
func (dt DataType) FixedLength() int {
	switch dt {
	case DataTypeInteger, DataTypeSigned, DataTypeIPAddr, DataTypeDate:
		return 4
	case DataTypeIPv6Addr:
		return 16
	default:
		return 0
	}
}

// AttributeDefinition defines one vendor attribute: its code within the
// vendor's space, its data type and, for enum-restricted integer attributes,
// the closed set of legal values keyed by symbolic name.
type AttributeDefinition struct {
	ID          uint8             `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	DataType    DataType          `yaml:"data_type" json:"data_type"`
	Values      map[string]uint32 `yaml:"values,omitempty" json:"values,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// Restricted reports whether the attribute limits legal integers to a closed set.
func (a *AttributeDefinition) Restricted() bool {
	return len(a.Values) > 0
}

// AllowsValue reports whether v is legal for this attribute. Attributes
// without a value set allow everything.
func (a *AttributeDefinition) AllowsValue(v uint32) bool {
	if !a.Restricted() {
		return true
	}
	for _, allowed := range a.Values {
		if allowed == v {
			return true
		}
	}
	return false
}

// ValueName returns the symbolic name for v, if the attribute defines one.
func (a *AttributeDefinition) ValueName(v uint32) (string, bool) {
	for name, allowed := range a.Values {
		if allowed == v {
			return name, true
		}
	}
	return "", false
}

// VendorDefinition defines a vendor (by IANA Private Enterprise Number) and
// its attribute code space per RFC 2865 Section 5.26.
type VendorDefinition struct {
	ID          uint32                 `yaml:"id" json:"id"`
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}
