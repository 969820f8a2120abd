package govsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeFixedLength(t *testing.T) {
	assert.Equal(t, 4, DataTypeInteger.FixedLength())
	assert.Equal(t, 4, DataTypeSigned.FixedLength())
	assert.Equal(t, 4, DataTypeIPAddr.FixedLength())
	assert.Equal(t, 4, DataTypeDate.FixedLength())
	assert.Equal(t, 16, DataTypeIPv6Addr.FixedLength())
	assert.Equal(t, 0, DataTypeString.FixedLength())
	assert.Equal(t, 0, DataTypeOctets.FixedLength())
}

func TestAttributeDefinitionValues(t *testing.T) {
	attr := &AttributeDefinition{
		ID:       1,
		Name:     "Test-Mode",
		DataType: DataTypeInteger,
		Values: map[string]uint32{
			"Off": 0,
			"On":  1,
		},
	}

	assert.True(t, attr.Restricted())
	assert.True(t, attr.AllowsValue(0))
	assert.True(t, attr.AllowsValue(1))
	assert.False(t, attr.AllowsValue(2))

	name, ok := attr.ValueName(1)
	assert.True(t, ok)
	assert.Equal(t, "On", name)

	_, ok = attr.ValueName(7)
	assert.False(t, ok)
}

func TestAttributeDefinitionUnrestricted(t *testing.T) {
	attr := &AttributeDefinition{ID: 1, Name: "Test-Free", DataType: DataTypeInteger}

	assert.False(t, attr.Restricted())
	assert.True(t, attr.AllowsValue(123456))
}
