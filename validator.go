package govsa

import (
	"fmt"
	"strings"
	"unicode"
)

// Level defines the severity of a validation issue
type Level int

const (
	LevelWarning Level = iota
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents one problem found in a vendor definition
type Issue struct {
	Level    Level
	Code     string
	Message  string
	Location string
}

// String returns the issue as "LEVEL CODE: message (at location)"
func (i Issue) String() string {
	if i.Location != "" {
		return fmt.Sprintf("%s %s: %s (at %s)", i.Level, i.Code, i.Message, i.Location)
	}
	return fmt.Sprintf("%s %s: %s", i.Level, i.Code, i.Message)
}

// Issues is the result of validating a vendor definition
type Issues []Issue

// HasErrors reports whether any issue is error-level
func (is Issues) HasErrors() bool {
	for _, issue := range is {
		if issue.Level >= LevelError {
			return true
		}
	}
	return false
}

// First returns the first issue at or above the given level, or the empty string
func (is Issues) First(level Level) string {
	for _, issue := range is {
		if issue.Level >= level {
			return issue.String()
		}
	}
	return ""
}

// ValidateVendor checks a vendor definition for problems that would make its
// attributes unencodable or ambiguous. Error-level issues make AddVendor
// reject the vendor; warnings are advisory (naming conventions, empty
// catalogs) and surface through the lint tooling.
func ValidateVendor(vendor *VendorDefinition) Issues {
	var issues Issues

	add := func(level Level, code, message, location string) {
		issues = append(issues, Issue{Level: level, Code: code, Message: message, Location: location})
	}

	if vendor == nil {
		add(LevelError, "VENDOR_NULL", "vendor definition is nil", "")
		return issues
	}

	location := fmt.Sprintf("vendor[%d]", vendor.ID)

	if vendor.ID == 0 {
		add(LevelError, "VENDOR_ZERO_ID", "vendor id cannot be zero", location)
	}

	if vendor.Name == "" {
		add(LevelError, "VENDOR_NO_NAME", "vendor has no name", location)
	}

	if len(vendor.Attributes) == 0 {
		add(LevelWarning, "VENDOR_EMPTY", "vendor defines no attributes", location)
	}

	seenIDs := make(map[uint8]string, len(vendor.Attributes))
	seenNames := make(map[string]uint8, len(vendor.Attributes))

	for _, attr := range vendor.Attributes {
		attrLocation := fmt.Sprintf("%s.attribute[%d]", location, attr.ID)

		if attr == nil {
			add(LevelError, "ATTR_NULL", "attribute definition is nil", location)
			continue
		}

		if attr.ID == 0 {
			add(LevelError, "ATTR_ZERO_ID", "attribute id 0 is reserved", attrLocation)
		}

		if existing, dup := seenIDs[attr.ID]; dup {
			add(LevelError, "ATTR_DUPLICATE_ID",
				fmt.Sprintf("attribute id %d used by both %q and %q", attr.ID, existing, attr.Name), attrLocation)
		}
		seenIDs[attr.ID] = attr.Name

		if attr.Name == "" {
			add(LevelError, "ATTR_NO_NAME", "attribute has no name", attrLocation)
		} else {
			if _, dup := seenNames[attr.Name]; dup {
				add(LevelError, "ATTR_DUPLICATE_NAME", fmt.Sprintf("duplicate attribute name %q", attr.Name), attrLocation)
			}
			seenNames[attr.Name] = attr.ID

			if !isValidAttributeName(attr.Name) {
				add(LevelWarning, "ATTR_INVALID_NAME",
					fmt.Sprintf("attribute name %q does not follow Title-Case-With-Hyphens convention", attr.Name), attrLocation)
			}
		}

		if !isValidDataType(attr.DataType) {
			add(LevelError, "ATTR_INVALID_TYPE", fmt.Sprintf("invalid data type: %s", attr.DataType), attrLocation)
		}

		validateValues(attr, attrLocation, add)
	}

	return issues
}

// validateValues checks the enum value set of an attribute
func validateValues(attr *AttributeDefinition, location string, add func(Level, string, string, string)) {
	if len(attr.Values) == 0 {
		return
	}

	switch attr.DataType {
	case DataTypeInteger, DataTypeSigned:
	default:
		add(LevelError, "ATTR_VALUES_TYPE",
			fmt.Sprintf("value restrictions require an integer data type, got %s", attr.DataType), location)
	}

	seen := make(map[uint32]string, len(attr.Values))
	for name, value := range attr.Values {
		if existing, dup := seen[value]; dup {
			add(LevelError, "ATTR_VALUES_DUPLICATE",
				fmt.Sprintf("value %d named by both %q and %q", value, existing, name), location)
		}
		seen[value] = name

		if name == "" {
			add(LevelError, "ATTR_VALUES_NO_NAME", fmt.Sprintf("value %d has an empty name", value), location)
		}
	}
}

func isValidDataType(dataType DataType) bool {
	switch dataType {
	case DataTypeString, DataTypeOctets, DataTypeInteger, DataTypeSigned,
		DataTypeIPAddr, DataTypeIPv6Addr, DataTypeDate:
		return true
	default:
		return false
	}
}

// isValidAttributeName checks RADIUS naming conventions: Title-Case-With-Hyphens
func isValidAttributeName(name string) bool {
	parts := strings.Split(name, "-")
	for _, part := range parts {
		if len(part) == 0 {
			return false
		}

		if !unicode.IsUpper(rune(part[0])) && !unicode.IsDigit(rune(part[0])) {
			return false
		}

		for _, r := range part[1:] {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}

	return true
}
