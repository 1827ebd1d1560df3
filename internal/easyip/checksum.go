package easyip

import "encoding/binary"

// trailerMarker precedes the 16-bit checksum that ends every datagram
var trailerMarker = [2]byte{0xFF, 0xFF}

// Checksum returns the 16-bit sum of every byte before the final two, plus one.
// This matches the trailer of all captured datagrams.
func Checksum(datagram []byte) uint16 {
	var sum uint16 = 1
	for _, b := range datagram[:max(len(datagram)-2, 0)] {
		sum += uint16(b)
	}
	return sum
}

// VerifyChecksum reports whether the datagram ends with the marker and a
// matching checksum.
func VerifyChecksum(datagram []byte) bool {
	n := len(datagram)
	if n < 4 || datagram[n-4] != trailerMarker[0] || datagram[n-3] != trailerMarker[1] {
		return false
	}
	return binary.BigEndian.Uint16(datagram[n-2:]) == Checksum(datagram)
}

// DeclaredLength returns the length carried in header bytes 2..3 and whether
// it agrees with the datagram's actual size.
func DeclaredLength(datagram []byte) (uint16, bool) {
	if len(datagram) < offsetDeclaredLength+2 {
		return 0, false
	}
	declared := binary.BigEndian.Uint16(datagram[offsetDeclaredLength:])
	return declared, int(declared)+lengthFieldBias == len(datagram)
}
