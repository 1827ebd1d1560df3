package easyip

import "encoding/binary"

// Discovery request template
var (
	// discoveryPreamble precedes the sender's hardware address (offset 12)
	discoveryPreamble = []byte{0x00, 0x01, 0x00, 0x2A, 0x00, 0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	// discoveryMagic follows the sender's IPv4 address (offset 22-47)
	discoveryMagic = []byte{
		0x00, 0x00, 0x20, 0x11, 0x1E, 0x11, 0x23, 0x1F, 0x1E, 0x19, 0x13, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	// discoveryRequestedIDs are the TLVs cameras are asked to include in their reply
	discoveryRequestedIDs = []uint16{
		0x0020, 0x0021, 0x0022, 0x0023, 0x0025, 0x0028, 0x0040, 0x0041, 0x0042, 0x0044,
		0x00A5, 0x00A6, 0x00A7, 0x00A8, 0x00AD, 0x00B3, 0x00B4, 0x00B7, 0x00B8,
	}

	discoveryTrailer = []byte{0xFF, 0xFF, 0x12, 0x21}
)

// Reconfiguration request template
var (
	// reconfigurationPreamble precedes the target hardware address (offset 6)
	reconfigurationPreamble = []byte{0x00, 0x01, 0x00, 0xAF, 0x00, 0x02}

	// reconfigurationMagic follows the source IPv4 address (offset 22-57)
	reconfigurationMagic = []byte{
		0x00, 0x01, 0x20, 0x11, 0x1E, 0x11, 0x23, 0x1F, 0x1E, 0x19, 0x13, 0x00,
		0x00, 0x02, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x00, 0x01, 0x00, 0x01, 0x00,
	}

	reconfigurationLinkLocal = []byte{
		0xFE, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xAA, 0x13, 0x74, 0xFF, 0xFE, 0x76, 0xA8, 0x6B,
	}
	reconfigurationIPv6Address  = make([]byte, 16)
	reconfigurationIPv6Reserved = make([]byte, 32)

	reconfigurationAcknowledge = []byte{0x92}

	reconfigurationTrailer = []byte{0xFF, 0xFF, 0x1D, 0x53}
)

// DiscoveryRequest builds the broadcast datagram asking cameras to announce
// themselves. Only the sender's hardware and IPv4 address vary.
func DiscoveryRequest(mac MacAddress, ip IPv4Address) []byte {
	buf := make([]byte, 0, DiscoveryRequestSize)
	buf = append(buf, discoveryPreamble...)
	buf = append(buf, mac[:]...)
	buf = append(buf, ip[:]...)
	buf = append(buf, discoveryMagic...)

	ids := make([]byte, 2*len(discoveryRequestedIDs))
	for i, id := range discoveryRequestedIDs {
		binary.BigEndian.PutUint16(ids[2*i:], id)
	}
	buf = appendTLV(buf, idRequestedFields, ids)

	return append(buf, discoveryTrailer...)
}

// ReconfigurationRequest builds the unicast command instructing the camera
// with c.MacAddress to adopt the settings in c. The camera checks the layout
// byte for byte, so every reserved region is reproduced as captured.
func (c CameraConfiguration) ReconfigurationRequest(sourceMac MacAddress, sourceIP IPv4Address) []byte {
	dns := make([]byte, 0, 2*IPv4AddressSize)
	dns = append(dns, c.PrimaryDNS[:]...)
	dns = append(dns, c.SecondaryDNS[:]...)

	var port [2]byte
	binary.BigEndian.PutUint16(port[:], c.Port)

	values := map[Field][]byte{
		FieldIPAddress: c.IPAddress[:],
		FieldNetmask:   c.Netmask[:],
		FieldGateway:   c.Gateway[:],
		FieldDNS:       dns,
		FieldPort:      port[:],
	}

	buf := make([]byte, 0, ReconfigurationRequestSize)
	buf = append(buf, reconfigurationPreamble...)
	buf = append(buf, c.MacAddress[:]...)
	buf = append(buf, sourceMac[:]...)
	buf = append(buf, sourceIP[:]...)
	buf = append(buf, reconfigurationMagic...)

	for _, f := range []Field{FieldIPAddress, FieldNetmask, FieldGateway, FieldDNS, FieldPort} {
		buf = appendTLV(buf, f.ID(), values[f])
	}

	buf = appendTLV(buf, idIPv6LinkLocal, reconfigurationLinkLocal)
	buf = appendTLV(buf, idIPv6Address, reconfigurationIPv6Address)
	buf = appendTLV(buf, idIPv6Reserved, reconfigurationIPv6Reserved)

	// The redundant copies lead with the port
	for _, f := range []Field{FieldPort, FieldIPAddress, FieldNetmask, FieldGateway, FieldDNS} {
		altID, _ := f.AlternateID()
		buf = appendTLV(buf, altID, values[f])
	}

	buf = appendTLV(buf, idAcknowledge, reconfigurationAcknowledge)

	return append(buf, reconfigurationTrailer...)
}

func appendTLV(buf []byte, id uint16, value []byte) []byte {
	buf = binary.BigEndian.AppendUint16(buf, id)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(value)))
	return append(buf, value...)
}
