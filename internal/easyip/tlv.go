package easyip

import (
	"encoding/binary"
	"sort"
)

// tlvHeaderSize is the id + length prefix of every TLV entry
const tlvHeaderSize = 4

// Range is a half-open byte range [Start, End) within one datagram
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range
func (r Range) Len() int {
	return r.End - r.Start
}

// Index maps TLV ids to the byte range holding their value.
// It is only valid for the datagram it was built from.
type Index map[uint16]Range

// BuildIndex scans the TLV region of a datagram, which starts right after the
// fixed header. When an id repeats, the last occurrence wins.
func BuildIndex(datagram []byte) (Index, error) {
	index := make(Index)
	cursor := HeaderSize
	for cursor < len(datagram)-tlvHeaderSize {
		id := binary.BigEndian.Uint16(datagram[cursor : cursor+2])
		length := int(binary.BigEndian.Uint16(datagram[cursor+2 : cursor+4]))

		start := cursor + tlvHeaderSize
		end := start + length
		if end > len(datagram) {
			return nil, NewDecodeError(KindTruncated, 0, cursor)
		}

		index[id] = Range{Start: start, End: end}
		cursor = end
	}
	return index, nil
}

// Lookup returns the value range recorded for id
func (x Index) Lookup(id uint16) (Range, bool) {
	r, ok := x[id]
	return r, ok
}

// IDs returns the indexed ids in ascending order
func (x Index) IDs() []uint16 {
	ids := make([]uint16, 0, len(x))
	for id := range x {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
