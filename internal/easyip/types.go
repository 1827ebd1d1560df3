package easyip

import (
	"fmt"
	"net"
)

// EasyIP protocol constants
const (
	// HeaderSize is the fixed header preceding the TLV region.
	HeaderSize = 58

	MacAddressSize  = 6
	IPv4AddressSize = 4

	DiscoveryRequestSize       = 94
	ReconfigurationRequestSize = 227

	// lengthFieldBias is the difference between a datagram's size and the
	// length declared in header bytes 2..3.
	lengthFieldBias = 52
)

// Offsets into the fixed header
const (
	offsetDeclaredLength = 2
	offsetTargetMac      = 6
	offsetSourceMac      = 12
	offsetSourceIP       = 18
)

// MacAddress is a 6-byte hardware address
type MacAddress [MacAddressSize]byte

// IPv4Address is a 4-byte IPv4 address
type IPv4Address [IPv4AddressSize]byte

// MacAddressFromBytes copies b into a MacAddress, rejecting any other length
func MacAddressFromBytes(b []byte) (MacAddress, error) {
	var mac MacAddress
	if len(b) != MacAddressSize {
		return mac, fmt.Errorf("hardware address must be %d bytes, got %d", MacAddressSize, len(b))
	}
	copy(mac[:], b)
	return mac, nil
}

// ParseMacAddress parses a textual hardware address such as "a8:13:74:76:a8:6b"
func ParseMacAddress(s string) (MacAddress, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MacAddress{}, fmt.Errorf("invalid hardware address %q: %w", s, err)
	}
	return MacAddressFromBytes(hw)
}

func (m MacAddress) String() string {
	return net.HardwareAddr(m[:]).String()
}

// IPv4AddressFromBytes copies b into an IPv4Address, rejecting any other length
func IPv4AddressFromBytes(b []byte) (IPv4Address, error) {
	var ip IPv4Address
	if len(b) != IPv4AddressSize {
		return ip, fmt.Errorf("IPv4 address must be %d bytes, got %d", IPv4AddressSize, len(b))
	}
	copy(ip[:], b)
	return ip, nil
}

// ParseIPv4Address parses dotted-quad text such as "10.1.0.215"
func ParseIPv4Address(s string) (IPv4Address, error) {
	parsed := net.ParseIP(s)
	if parsed == nil {
		return IPv4Address{}, fmt.Errorf("invalid IPv4 address %q", s)
	}
	v4 := parsed.To4()
	if v4 == nil {
		return IPv4Address{}, fmt.Errorf("not an IPv4 address: %q", s)
	}
	return IPv4AddressFromBytes(v4)
}

func (a IPv4Address) String() string {
	return net.IP(a[:]).String()
}

// CameraConfiguration is the network identity and settings of one camera.
// It is a plain value: copies are independent and it is comparable with ==.
type CameraConfiguration struct {
	MacAddress   MacAddress
	IPAddress    IPv4Address
	Netmask      IPv4Address
	Gateway      IPv4Address
	PrimaryDNS   IPv4Address
	SecondaryDNS IPv4Address
	Port         uint16
	Model        string
	Name         string
}

// DecodeErrorKind classifies why a datagram could not be decoded
type DecodeErrorKind int

const (
	KindDatagramTooSmall DecodeErrorKind = iota + 1
	KindTruncated
	KindFieldNotFound
	KindMismatch
	KindInvalidLength
	KindStringDecoding
)

func (k DecodeErrorKind) String() string {
	switch k {
	case KindDatagramTooSmall:
		return "datagram too small"
	case KindTruncated:
		return "datagram truncated"
	case KindFieldNotFound:
		return "field not found"
	case KindMismatch:
		return "field mismatch"
	case KindInvalidLength:
		return "invalid field length"
	case KindStringDecoding:
		return "string decoding"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
	}
}

// DecodeError represents an error during reply decoding.
// Field is meaningful for KindFieldNotFound, KindMismatch, KindInvalidLength
// and KindStringDecoding; Offset for KindTruncated.
type DecodeError struct {
	Kind   DecodeErrorKind
	Field  Field
	Offset int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindFieldNotFound, KindMismatch, KindInvalidLength, KindStringDecoding:
		return fmt.Sprintf("easyip: %s: %s", e.Kind, e.Field)
	case KindTruncated:
		return fmt.Sprintf("easyip: %s at offset %d", e.Kind, e.Offset)
	default:
		return "easyip: " + e.Kind.String()
	}
}

// Is matches any *DecodeError of the same kind, so the sentinels below work
// with errors.Is regardless of field or offset.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(kind DecodeErrorKind, field Field, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Field: field, Offset: offset}
}

var (
	ErrDatagramTooSmall = &DecodeError{Kind: KindDatagramTooSmall}
	ErrTruncated        = &DecodeError{Kind: KindTruncated}
	ErrFieldNotFound    = &DecodeError{Kind: KindFieldNotFound}
	ErrMismatch         = &DecodeError{Kind: KindMismatch}
	ErrInvalidLength    = &DecodeError{Kind: KindInvalidLength}
	ErrStringDecoding   = &DecodeError{Kind: KindStringDecoding}
)
