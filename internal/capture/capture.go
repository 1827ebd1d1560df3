package capture

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/ipv4"
)

const (
	udpHeaderSize = 8
	protocolUDP   = 17

	commentPrefix = "#"
	sourcePrefix  = "@"
)

var (
	ErrOddHex      = errors.New("capture: odd number of hex digits")
	ErrNotUDP      = errors.New("capture: IPv4 packet does not carry UDP")
	ErrShortUDP    = errors.New("capture: short UDP header")
	ErrEmptyPacket = errors.New("capture: line has no datagram")
)

// Datagram is one captured UDP payload
type Datagram struct {
	Payload []byte
	Source  string // sender address, empty when the capture doesn't say
	Line    int    // 1-based line in the capture file
}

// ReadFile reads every datagram from a capture file
func ReadFile(path string) ([]Datagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a capture: one datagram per line as hex digits, optionally
// preceded by an "@host:port" source token. Blank lines and lines starting
// with "#" are skipped. Lines holding a whole IPv4/UDP packet are unwrapped
// to the UDP payload.
func Read(r io.Reader) ([]Datagram, error) {
	var datagrams []Datagram

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		d, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		d.Line = lineNo
		datagrams = append(datagrams, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}

	return datagrams, nil
}

// ParseLine parses a single capture line
func ParseLine(line string) (Datagram, error) {
	var d Datagram

	fields := strings.Fields(line)
	if len(fields) > 0 && strings.HasPrefix(fields[0], sourcePrefix) {
		d.Source = strings.TrimPrefix(fields[0], sourcePrefix)
		fields = fields[1:]
	}

	digits := strings.NewReplacer(":", "", "-", "").Replace(strings.Join(fields, ""))
	if digits == "" {
		return d, ErrEmptyPacket
	}
	if len(digits)%2 != 0 {
		return d, ErrOddHex
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return d, fmt.Errorf("capture: %w", err)
	}

	// EasyIP payloads start with 0x00, a raw IPv4 packet with version 4
	if raw[0]>>4 == ipv4.Version {
		payload, source, err := unwrapUDP(raw)
		if err != nil {
			return d, err
		}
		raw = payload
		if d.Source == "" {
			d.Source = source
		}
	}

	d.Payload = raw
	return d, nil
}

// unwrapUDP strips the IPv4 and UDP headers from a raw packet
func unwrapUDP(packet []byte) ([]byte, string, error) {
	h, err := ipv4.ParseHeader(packet)
	if err != nil {
		return nil, "", fmt.Errorf("capture: %w", err)
	}
	if h.Protocol != protocolUDP {
		return nil, "", ErrNotUDP
	}

	udp := packet[h.Len:]
	if len(udp) < udpHeaderSize {
		return nil, "", ErrShortUDP
	}

	srcPort := binary.BigEndian.Uint16(udp[0:2])
	end := int(binary.BigEndian.Uint16(udp[4:6]))
	if end < udpHeaderSize || end > len(udp) {
		end = len(udp)
	}

	source := net.JoinHostPort(h.Src.String(), strconv.Itoa(int(srcPort)))
	return udp[udpHeaderSize:end], source, nil
}

// FormatLine renders a datagram as a capture line that Read accepts
func FormatLine(d Datagram) string {
	if d.Source == "" {
		return hex.EncodeToString(d.Payload)
	}
	return sourcePrefix + d.Source + " " + hex.EncodeToString(d.Payload)
}
