package easyip

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// Decode decodes a camera reply datagram into a CameraConfiguration.
// The first problem found is returned as a *DecodeError; nothing is repaired.
func Decode(datagram []byte) (CameraConfiguration, error) {
	var config CameraConfiguration

	if len(datagram) <= HeaderSize {
		return CameraConfiguration{}, NewDecodeError(KindDatagramTooSmall, 0, 0)
	}

	config.MacAddress, _ = HardwareAddress(datagram)

	index, err := BuildIndex(datagram)
	if err != nil {
		return CameraConfiguration{}, err
	}
	d := decoder{datagram: datagram, index: index}

	if config.IPAddress, err = d.address(FieldIPAddress); err != nil {
		return CameraConfiguration{}, err
	}
	if config.Netmask, err = d.address(FieldNetmask); err != nil {
		return CameraConfiguration{}, err
	}
	if config.Gateway, err = d.address(FieldGateway); err != nil {
		return CameraConfiguration{}, err
	}

	// DNS is sent once: primary followed by secondary
	dns, err := d.sized(FieldDNS, d.value)
	if err != nil {
		return CameraConfiguration{}, err
	}
	copy(config.PrimaryDNS[:], dns[:IPv4AddressSize])
	copy(config.SecondaryDNS[:], dns[IPv4AddressSize:])

	port, err := d.sized(FieldPort, d.checked)
	if err != nil {
		return CameraConfiguration{}, err
	}
	config.Port = binary.BigEndian.Uint16(port)

	if config.Model, err = d.text(FieldModel); err != nil {
		return CameraConfiguration{}, err
	}
	if config.Name, err = d.text(FieldName); err != nil {
		return CameraConfiguration{}, err
	}

	return config, nil
}

// HardwareAddress returns the camera address from the fixed header (offset 6-11),
// which is readable even when the rest of the reply is not.
func HardwareAddress(datagram []byte) (MacAddress, bool) {
	var mac MacAddress
	if len(datagram) < offsetTargetMac+MacAddressSize {
		return mac, false
	}
	copy(mac[:], datagram[offsetTargetMac:offsetTargetMac+MacAddressSize])
	return mac, true
}

type decoder struct {
	datagram []byte
	index    Index
}

// value returns the bytes stored under the field's primary id
func (d decoder) value(f Field) ([]byte, error) {
	r, ok := d.index.Lookup(f.ID())
	if !ok {
		return nil, NewDecodeError(KindFieldNotFound, f, 0)
	}
	return d.datagram[r.Start:r.End], nil
}

// checked returns the primary value after comparing it with the alternate copy
func (d decoder) checked(f Field) ([]byte, error) {
	primary, err := d.value(f)
	if err != nil {
		return nil, err
	}
	altID, _ := f.AlternateID()
	r, ok := d.index.Lookup(altID)
	if !ok {
		return nil, NewDecodeError(KindFieldNotFound, f, 0)
	}
	if !bytes.Equal(primary, d.datagram[r.Start:r.End]) {
		return nil, NewDecodeError(KindMismatch, f, r.Start)
	}
	return primary, nil
}

func (d decoder) sized(f Field, get func(Field) ([]byte, error)) ([]byte, error) {
	b, err := get(f)
	if err != nil {
		return nil, err
	}
	if len(b) != f.Size() {
		return nil, NewDecodeError(KindInvalidLength, f, 0)
	}
	return b, nil
}

func (d decoder) address(f Field) (IPv4Address, error) {
	var addr IPv4Address
	b, err := d.sized(f, d.checked)
	if err != nil {
		return addr, err
	}
	copy(addr[:], b)
	return addr, nil
}

// text reads a null-padded string; without a terminator the whole value is used
func (d decoder) text(f Field) (string, error) {
	b, err := d.value(f)
	if err != nil {
		return "", err
	}
	if nullIdx := bytes.IndexByte(b, 0); nullIdx >= 0 {
		b = b[:nullIdx]
	}
	if !utf8.Valid(b) {
		return "", NewDecodeError(KindStringDecoding, f, 0)
	}
	return string(b), nil
}
