package govsa

import "errors"

// Encoding errors. All failures are reported synchronously at construction
// time; nothing in this package retries or defers validation.
var (
	// ErrNullValue indicates a required string/octets value was absent.
	ErrNullValue = errors.New("null value")

	// ErrWrongAddressFamily indicates an IP value was given to the encoder
	// of the other address family.
	ErrWrongAddressFamily = errors.New("wrong address family")

	// ErrPayloadTooLarge indicates the encoded payload exceeds the attribute
	// length ceiling (253 bytes for standard attributes, 247 for VSAs).
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrEmptyValue indicates a zero-length payload where at least one byte
	// is required.
	ErrEmptyValue = errors.New("empty value")

	// ErrInvalidVendorID indicates a zero vendor ID.
	ErrInvalidVendorID = errors.New("invalid vendor id")

	// ErrInvalidAttributeCode indicates an attribute code of 0, which is
	// reserved in every vendor code space.
	ErrInvalidAttributeCode = errors.New("invalid attribute code")

	// ErrUnsupportedDataType indicates a data type the codec layer does not
	// know how to encode.
	ErrUnsupportedDataType = errors.New("unsupported data type")

	// ErrValueNotAllowed indicates an integer outside the legal value set of
	// an enum-restricted attribute.
	ErrValueNotAllowed = errors.New("value not allowed")

	// ErrUnknownVendor indicates the vendor ID is not in the dictionary.
	ErrUnknownVendor = errors.New("unknown vendor")

	// ErrUnknownAttribute indicates the attribute is not in the dictionary.
	ErrUnknownAttribute = errors.New("unknown attribute")
)
