package govsa

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseIP(t *testing.T, value string) net.IP {
	t.Helper()

	ip := net.ParseIP(value)
	require.NotNil(t, ip)
	return ip
}

func TestNewVendorAttributeWireFormat(t *testing.T) {
	// Acme (9148) SIP status 200: Length = 8+4, Vendor-Length = 2+4
	attr, err := NewVendorAttribute(9148, 50, EncodeInteger(200))
	require.NoError(t, err)

	expected := []byte{
		0x1a, 0x0c, // Type=26, Length=12
		0x00, 0x00, 0x23, 0xbc, // Vendor-Id=9148
		0x32, 0x06, // Vendor-Type=50, Vendor-Length=6
		0x00, 0x00, 0x00, 0xc8, // 200
	}
	assert.Equal(t, expected, attr.WireFormat())
}

func TestNewVendorAttributeIPv4Payload(t *testing.T) {
	payload, err := EncodeIPAddr(mustParseIP(t, "8.8.8.8"))
	require.NoError(t, err)

	// Alcatel (3041) Primary-DNS
	attr, err := NewVendorAttribute(3041, 9, payload)
	require.NoError(t, err)

	wire := attr.WireFormat()
	assert.Equal(t, []byte{0x1a, 0x0c, 0x00, 0x00, 0x0b, 0xe1, 0x09, 0x06, 0x08, 0x08, 0x08, 0x08}, wire)

	// inner Vendor-Length accounts for its own two-byte header
	assert.Equal(t, byte(6), wire[7])
}

func TestVendorAttributeWireFormatDeterministic(t *testing.T) {
	first, err := NewVendorAttribute(14122, 1, EncodeString("isocc=us,cc=1,ac=408,network=ACMEWISP"))
	require.NoError(t, err)

	second, err := NewVendorAttribute(14122, 1, EncodeString("isocc=us,cc=1,ac=408,network=ACMEWISP"))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first.WireFormat(), second.WireFormat()))
	assert.True(t, bytes.Equal(first.WireFormat(), first.WireFormat()))
}

func TestNewVendorAttributeValidation(t *testing.T) {
	payload := EncodeInteger(1)

	_, err := NewVendorAttribute(0, 1, payload)
	assert.ErrorIs(t, err, ErrInvalidVendorID)

	_, err = NewVendorAttribute(9148, 0, payload)
	assert.ErrorIs(t, err, ErrInvalidAttributeCode)

	_, err = NewVendorAttribute(9148, 1, nil)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = NewVendorAttribute(9148, 1, []byte{})
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestNewVendorAttributePayloadCeiling(t *testing.T) {
	atLimit, err := NewVendorAttribute(9148, 70, make([]byte, MaxVSAValueLength))
	require.NoError(t, err)

	wire := atLimit.WireFormat()
	assert.Len(t, wire, MaxAttributeLength)
	assert.Equal(t, byte(MaxAttributeLength), wire[1])
	assert.Equal(t, byte(MaxVSAValueLength+AttributeHeaderLength), wire[7])

	_, err = NewVendorAttribute(9148, 70, make([]byte, MaxVSAValueLength+1))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestNewAttribute(t *testing.T) {
	attr, err := NewAttribute(1, []byte("testuser"))
	require.NoError(t, err)

	wire := attr.WireFormat()
	assert.Equal(t, []byte{0x01, 0x0a}, wire[:2])
	assert.Equal(t, []byte("testuser"), wire[2:])
}

func TestNewAttributeValueCeiling(t *testing.T) {
	atLimit, err := NewAttribute(26, make([]byte, MaxAttributeValueLength))
	require.NoError(t, err)
	assert.Equal(t, byte(MaxAttributeLength), atLimit.WireFormat()[1])

	_, err = NewAttribute(26, make([]byte, MaxAttributeValueLength+1))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestNewAttributeValidation(t *testing.T) {
	_, err := NewAttribute(0, []byte{0x01})
	assert.ErrorIs(t, err, ErrInvalidAttributeCode)

	_, err = NewAttribute(1, nil)
	assert.ErrorIs(t, err, ErrEmptyValue)
}

func TestVendorAttributeToAttribute(t *testing.T) {
	va, err := NewVendorAttribute(9148, 50, EncodeInteger(200))
	require.NoError(t, err)

	attr := va.ToAttribute()
	assert.Equal(t, uint8(AttributeTypeVendorSpecific), attr.Type)
	assert.Equal(t, va.WireFormat()[AttributeHeaderLength:], attr.Value)
	assert.Equal(t, va.WireFormat(), attr.WireFormat())
}

func TestAttributeString(t *testing.T) {
	va, err := NewVendorAttribute(9148, 50, EncodeInteger(200))
	require.NoError(t, err)
	assert.Contains(t, va.String(), "VendorID=9148")

	attr, err := NewAttribute(1, []byte("x"))
	require.NoError(t, err)
	assert.Contains(t, attr.String(), "Type=1")
}
