// Package govsa encodes RADIUS Vendor-Specific Attributes (RFC 2865
// Section 5.26).
//
// The package provides three layers:
//
//   - value codecs that turn Go values (integers, strings, IP addresses,
//     raw octets, timestamps) into RADIUS wire payloads
//   - a VendorAttribute builder that wraps a payload into the nested
//     Vendor-Specific TLV layout
//   - a Dictionary of vendor attribute definitions that drives a generic
//     Encode path, so callers address attributes by vendor/ID or by name
//     instead of hand-writing one constructor per attribute
//
// All encoding operations are pure: they validate their inputs, allocate a
// fresh output buffer and touch no shared state, so a Dictionary populated
// at startup may be used concurrently without locking on the caller side.
//
// Packet assembly (headers, authenticators, retransmission, transport) is
// out of scope; the encoded attributes are handed to a packet layer as-is.
package govsa
