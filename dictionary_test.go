package govsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVendor() *VendorDefinition {
	return &VendorDefinition{
		ID:   65001,
		Name: "Test",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Test-User-Group", DataType: DataTypeString},
			{ID: 2, Name: "Test-Rate-Limit", DataType: DataTypeInteger},
			{ID: 3, Name: "Test-Gateway", DataType: DataTypeIPAddr},
		},
	}
}

func TestDictionaryAddAndLookup(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.AddVendor(testVendor()))

	vendor, exists := dict.LookupVendorByID(65001)
	require.True(t, exists)
	assert.Equal(t, "Test", vendor.Name)

	attr, exists := dict.LookupAttributeByID(65001, 2)
	require.True(t, exists)
	assert.Equal(t, "Test-Rate-Limit", attr.Name)
	assert.Equal(t, DataTypeInteger, attr.DataType)

	attr, exists = dict.LookupAttributeByName("Test-Gateway")
	require.True(t, exists)
	assert.Equal(t, uint8(3), attr.ID)

	vendorID, exists := dict.LookupVendorIDByAttributeName("Test-Gateway")
	require.True(t, exists)
	assert.Equal(t, uint32(65001), vendorID)
}

func TestDictionaryLookupMisses(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.AddVendor(testVendor()))

	_, exists := dict.LookupVendorByID(99)
	assert.False(t, exists)

	_, exists = dict.LookupAttributeByID(65001, 99)
	assert.False(t, exists)

	_, exists = dict.LookupAttributeByID(99, 1)
	assert.False(t, exists)

	_, exists = dict.LookupAttributeByName("No-Such-Attribute")
	assert.False(t, exists)

	_, exists = dict.LookupVendorIDByAttributeName("No-Such-Attribute")
	assert.False(t, exists)
}

func TestDictionaryDuplicateVendorID(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.AddVendor(testVendor()))

	err := dict.AddVendor(&VendorDefinition{
		ID:   65001,
		Name: "Other",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Other-Attr", DataType: DataTypeString},
		},
	})
	assert.Error(t, err)
}

func TestDictionaryDuplicateAttributeNameAcrossVendors(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.AddVendor(testVendor()))

	err := dict.AddVendor(&VendorDefinition{
		ID:   65002,
		Name: "Other",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Test-User-Group", DataType: DataTypeString},
		},
	})
	assert.Error(t, err)

	// the conflicting vendor must not be partially registered
	_, exists := dict.LookupVendorByID(65002)
	assert.False(t, exists)
}

func TestDictionaryRejectsInvalidVendor(t *testing.T) {
	dict := NewDictionary()

	err := dict.AddVendor(&VendorDefinition{
		ID:   0,
		Name: "Zero",
		Attributes: []*AttributeDefinition{
			{ID: 1, Name: "Zero-Attr", DataType: DataTypeString},
		},
	})
	assert.Error(t, err)
}

func TestDictionaryGetAllVendors(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.AddVendor(testVendor()))
	require.NoError(t, dict.AddVendor(WISPrVendorDefinition))

	vendors := dict.GetAllVendors()
	assert.Len(t, vendors, 2)
}
