package easyip

import (
	"encoding/binary"
	"testing"
)

func TestVerifyChecksum_CapturedDatagrams(t *testing.T) {
	tests := []struct {
		name     string
		datagram []byte
	}{
		{"discovery request", capturedDiscoveryRequest},
		{"reconfiguration request", capturedReconfigurationRequest},
		{"reply", capturedReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !VerifyChecksum(tt.datagram) {
				n := len(tt.datagram)
				t.Errorf("VerifyChecksum() = false, trailer %#04x, computed %#04x",
					binary.BigEndian.Uint16(tt.datagram[n-2:]), Checksum(tt.datagram))
			}
		})
	}
}

func TestVerifyChecksum_Corrupted(t *testing.T) {
	datagram := append([]byte(nil), capturedReply...)
	datagram[70]++

	if VerifyChecksum(datagram) {
		t.Error("VerifyChecksum() = true for a corrupted reply, want false")
	}
}

func TestVerifyChecksum_MissingMarker(t *testing.T) {
	tests := []struct {
		name     string
		datagram []byte
	}{
		{"empty", nil},
		{"too short", []byte{0xFF, 0xFF, 0x01}},
		{"no marker", []byte{0x00, 0x01, 0x00, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyChecksum(tt.datagram) {
				t.Error("VerifyChecksum() = true, want false")
			}
		})
	}
}

func TestChecksum_Short(t *testing.T) {
	if got := Checksum(nil); got != 1 {
		t.Errorf("Checksum(nil) = %d, want 1", got)
	}
	if got := Checksum([]byte{0x10, 0x20}); got != 1 {
		t.Errorf("Checksum(2 bytes) = %d, want 1", got)
	}
	if got := Checksum([]byte{0x10, 0x20, 0, 0}); got != 0x31 {
		t.Errorf("Checksum(4 bytes) = %#x, want 0x31", got)
	}
}

func TestDeclaredLength_CapturedDatagrams(t *testing.T) {
	tests := []struct {
		name     string
		datagram []byte
		want     uint16
	}{
		{"discovery request", capturedDiscoveryRequest, 42},
		{"reconfiguration request", capturedReconfigurationRequest, 175},
		{"reply", capturedReply, 373},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeclaredLength(tt.datagram)
			if got != tt.want || !ok {
				t.Errorf("DeclaredLength() = %d, %v, want %d, true", got, ok, tt.want)
			}
		})
	}

	if _, ok := DeclaredLength(capturedReply[:100]); ok {
		t.Error("DeclaredLength() ok = true for a cut reply, want false")
	}
}
