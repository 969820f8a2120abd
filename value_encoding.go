package govsa

import (
	"encoding/binary"
	"fmt"
	"net"
	"time"
)

// EncodeString encodes a string value for RADIUS attributes per RFC 2865 Section 5.
// The output is the raw UTF-8 bytes with no terminator.
func EncodeString(value string) []byte {
	return []byte(value)
}

// DecodeString decodes a string value from RADIUS attributes per RFC 2865 Section 5
func DecodeString(data []byte) string {
	return string(data)
}

// EncodeInteger encodes a 32-bit unsigned integer value per RFC 2865 Section 5
func EncodeInteger(value uint32) []byte {
	data := make([]byte, 4)
	data[0] = byte(value >> 24)
	data[1] = byte(value >> 16)
	data[2] = byte(value >> 8)
	data[3] = byte(value)
	return data
}

// EncodeIntegerTo encodes a 32-bit unsigned integer into a pre-allocated buffer (must be at least 4 bytes)
func EncodeIntegerTo(dst []byte, value uint32) {
	dst[0] = byte(value >> 24)
	dst[1] = byte(value >> 16)
	dst[2] = byte(value >> 8)
	dst[3] = byte(value)
}

// DecodeInteger decodes a 32-bit unsigned integer value per RFC 2865 Section 5
func DecodeInteger(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("invalid integer length: %d", len(data))
	}
	return binary.BigEndian.Uint32(data), nil
}

// EncodeSignedInteger encodes a 32-bit signed integer as big-endian two's complement
func EncodeSignedInteger(value int32) []byte {
	return EncodeInteger(uint32(value))
}

// DecodeSignedInteger decodes a 32-bit signed integer from big-endian two's complement
func DecodeSignedInteger(data []byte) (int32, error) {
	v, err := DecodeInteger(data)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// EncodeIPAddr encodes an IPv4 address per RFC 2865 Section 5.
// Returns ErrWrongAddressFamily if the address has no 4-byte form.
func EncodeIPAddr(ip net.IP) ([]byte, error) {
	ipv4 := ip.To4()
	if ipv4 == nil {
		return nil, fmt.Errorf("%w: %s is not an IPv4 address", ErrWrongAddressFamily, ip)
	}
	out := make([]byte, 4)
	copy(out, ipv4)
	return out, nil
}

// DecodeIPAddr decodes an IPv4 address per RFC 2865 Section 5
func DecodeIPAddr(data []byte) (net.IP, error) {
	if len(data) != 4 {
		return nil, fmt.Errorf("invalid IP address length: %d", len(data))
	}
	return net.IP(data), nil
}

// EncodeIPv6Addr encodes an IPv6 address per RFC 6929.
// Returns ErrWrongAddressFamily for IPv4 addresses (including the
// IPv4-in-IPv6 mapped form) and for invalid input.
func EncodeIPv6Addr(ip net.IP) ([]byte, error) {
	if ip.To4() != nil {
		return nil, fmt.Errorf("%w: %s is not an IPv6 address", ErrWrongAddressFamily, ip)
	}
	ipv6 := ip.To16()
	if ipv6 == nil {
		return nil, fmt.Errorf("%w: invalid address", ErrWrongAddressFamily)
	}
	out := make([]byte, 16)
	copy(out, ipv6)
	return out, nil
}

// DecodeIPv6Addr decodes an IPv6 address per RFC 6929
func DecodeIPv6Addr(data []byte) (net.IP, error) {
	if len(data) != 16 {
		return nil, fmt.Errorf("invalid IPv6 address length: %d", len(data))
	}
	return net.IP(data), nil
}

// EncodeDate encodes a Unix timestamp per RFC 2865 Section 5
func EncodeDate(t time.Time) []byte {
	return EncodeInteger(uint32(t.Unix()))
}

// DecodeDate decodes a Unix timestamp per RFC 2865 Section 5
func DecodeDate(data []byte) (time.Time, error) {
	timestamp, err := DecodeInteger(data)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(timestamp), 0), nil
}

// EncodeOctets encodes raw octets for RADIUS attributes.
// Returns ErrNullValue for a nil slice; an empty non-nil slice passes
// through (the attribute builders reject zero-length payloads).
func EncodeOctets(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrNullValue
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// DecodeOctets decodes raw octets from RADIUS attributes
func DecodeOctets(data []byte) []byte {
	return data
}

// EncodeValue encodes a value based on the attribute data type. A nil value
// fails with ErrNullValue regardless of the data type, so every dictionary
// attribute rejects absent values uniformly.
func EncodeValue(value any, dataType DataType) ([]byte, error) {
	if value == nil {
		return nil, ErrNullValue
	}

	switch dataType {
	case DataTypeString:
		switch v := value.(type) {
		case string:
			return EncodeString(v), nil
		case *string:
			if v == nil {
				return nil, ErrNullValue
			}
			return EncodeString(*v), nil
		}
		return nil, fmt.Errorf("expected string for string data type, got %T", value)

	case DataTypeInteger:
		switch v := value.(type) {
		case uint32:
			return EncodeInteger(v), nil
		case int:
			return EncodeInteger(uint32(v)), nil
		case int32:
			return EncodeInteger(uint32(v)), nil
		case uint:
			return EncodeInteger(uint32(v)), nil
		default:
			return nil, fmt.Errorf("expected integer for integer data type, got %T", value)
		}

	case DataTypeSigned:
		switch v := value.(type) {
		case int32:
			return EncodeSignedInteger(v), nil
		case int:
			return EncodeSignedInteger(int32(v)), nil
		case uint32:
			return EncodeSignedInteger(int32(v)), nil
		default:
			return nil, fmt.Errorf("expected integer for signed data type, got %T", value)
		}

	case DataTypeIPAddr:
		ip, err := coerceIP(value)
		if err != nil {
			return nil, err
		}
		return EncodeIPAddr(ip)

	case DataTypeIPv6Addr:
		ip, err := coerceIP(value)
		if err != nil {
			return nil, err
		}
		return EncodeIPv6Addr(ip)

	case DataTypeDate:
		if t, ok := value.(time.Time); ok {
			return EncodeDate(t), nil
		}
		return nil, fmt.Errorf("expected time.Time for date data type, got %T", value)

	case DataTypeOctets:
		if data, ok := value.([]byte); ok {
			return EncodeOctets(data)
		}
		return nil, fmt.Errorf("expected []byte for octets data type, got %T", value)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDataType, dataType)
	}
}

// DecodeValue decodes a payload based on the attribute data type. It is the
// value-level inverse of EncodeValue, used for round-trip verification;
// parsing received packets is the packet layer's job.
func DecodeValue(data []byte, dataType DataType) (any, error) {
	switch dataType {
	case DataTypeString:
		return DecodeString(data), nil

	case DataTypeInteger:
		return DecodeInteger(data)

	case DataTypeSigned:
		return DecodeSignedInteger(data)

	case DataTypeIPAddr:
		return DecodeIPAddr(data)

	case DataTypeIPv6Addr:
		return DecodeIPv6Addr(data)

	case DataTypeDate:
		return DecodeDate(data)

	case DataTypeOctets:
		return DecodeOctets(data), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDataType, dataType)
	}
}

func coerceIP(value any) (net.IP, error) {
	switch v := value.(type) {
	case net.IP:
		if v == nil {
			return nil, ErrNullValue
		}
		return v, nil
	case string:
		ip := net.ParseIP(v)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %s", v)
		}
		return ip, nil
	default:
		return nil, fmt.Errorf("expected net.IP or string for address data type, got %T", value)
	}
}
