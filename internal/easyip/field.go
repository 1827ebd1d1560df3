package easyip

import "fmt"

// Field identifies a configuration value carried in a reply TLV
type Field int

const (
	FieldIPAddress Field = iota + 1
	FieldNetmask
	FieldGateway
	FieldDNS
	FieldPort
	FieldName
	FieldModel
)

// Reserved ids only ever written in reconfiguration requests
const (
	idIPv6LinkLocal   uint16 = 64
	idIPv6Address     uint16 = 65
	idIPv6Reserved    uint16 = 66
	idAcknowledge     uint16 = 166
	idRequestedFields uint16 = 0xFFF0
)

type fieldSpec struct {
	name        string
	id          uint16
	alternateID uint16 // 0 when the field is sent once
	size        int    // 0 for null-padded text
}

// Firmware transmits the network-critical fields twice, under a primary and an
// alternate id. A reply whose two copies differ is not trusted.
var fieldCatalog = [...]fieldSpec{
	FieldIPAddress: {name: "ipAddress", id: 32, alternateID: 160, size: IPv4AddressSize},
	FieldNetmask:   {name: "netmask", id: 33, alternateID: 161, size: IPv4AddressSize},
	FieldGateway:   {name: "gateway", id: 34, alternateID: 162, size: IPv4AddressSize},
	FieldDNS:       {name: "dns", id: 35, alternateID: 163, size: 2 * IPv4AddressSize},
	FieldPort:      {name: "port", id: 37, alternateID: 68, size: 2},
	FieldName:      {name: "name", id: 167},
	FieldModel:     {name: "model", id: 168},
}

// Fields lists every catalog field in wire order
func Fields() []Field {
	return []Field{FieldIPAddress, FieldNetmask, FieldGateway, FieldDNS, FieldPort, FieldName, FieldModel}
}

func (f Field) valid() bool {
	return f > 0 && int(f) < len(fieldCatalog)
}

// ID returns the primary TLV id of the field
func (f Field) ID() uint16 {
	if !f.valid() {
		return 0
	}
	return fieldCatalog[f].id
}

// AlternateID returns the redundant TLV id of the field, if it has one
func (f Field) AlternateID() (uint16, bool) {
	if !f.valid() || fieldCatalog[f].alternateID == 0 {
		return 0, false
	}
	return fieldCatalog[f].alternateID, true
}

// Size returns the value length in bytes, or 0 for variable-length text
func (f Field) Size() int {
	if !f.valid() {
		return 0
	}
	return fieldCatalog[f].size
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldCatalog[f].name
}

var reservedNames = map[uint16]string{
	idIPv6LinkLocal:   "ipv6LinkLocal",
	idIPv6Address:     "ipv6Address",
	idIPv6Reserved:    "ipv6Reserved",
	idAcknowledge:     "acknowledge",
	idRequestedFields: "requestedFields",
}

// DescribeID names a TLV id for diagnostics. Alternate copies are suffixed
// with "/alt"; ids the codec does not know yield "".
func DescribeID(id uint16) string {
	for _, f := range Fields() {
		if f.ID() == id {
			return f.String()
		}
		if alt, ok := f.AlternateID(); ok && alt == id {
			return f.String() + "/alt"
		}
	}
	return reservedNames[id]
}
