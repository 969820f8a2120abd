package govsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	dict, err := NewDefault()
	require.NoError(t, err)
	require.NotNil(t, dict)

	assert.Len(t, dict.GetAllVendors(), 4)

	for _, vendorID := range []uint32{9148, 3041, 14122, 14988} {
		_, exists := dict.LookupVendorByID(vendorID)
		assert.True(t, exists, "vendor %d should be registered", vendorID)
	}

	attr, exists := dict.LookupAttributeByName("Acme-SIP-Status")
	require.True(t, exists)
	assert.Equal(t, uint8(50), attr.ID)
	assert.Equal(t, DataTypeInteger, attr.DataType)
}
