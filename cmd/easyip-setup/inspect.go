package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"easyip-setup/internal/capture"
	"easyip-setup/internal/easyip"
)

const inspectValueBytes = 16

var (
	inspectLine int

	inspectCmd = &cobra.Command{
		Use:   "inspect [capture-file...]",
		Short: "Dump the TLV layout of captured datagrams",
		Long: `Print the header, trailer checksum and every TLV of each captured datagram.
Works on requests as well as replies and on datagrams the decoder rejects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := capturePaths(args)
			if err != nil {
				return err
			}

			for _, path := range paths {
				datagrams, err := capture.ReadFile(path)
				if err != nil {
					return err
				}

				for _, d := range datagrams {
					if inspectLine > 0 && d.Line != inspectLine {
						continue
					}
					if err := inspect(cmd.OutOrStdout(), path, d); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
)

func inspect(w io.Writer, path string, d capture.Datagram) error {
	payload := d.Payload

	fmt.Fprintf(w, "%s:%d from %s: %d bytes\n", path, d.Line, valueOr(d.Source, "unknown sender"), len(payload))

	if declared, ok := easyip.DeclaredLength(payload); ok {
		fmt.Fprintf(w, "  declared length: %d\n", declared)
	} else if len(payload) >= 4 {
		fmt.Fprintf(w, "  declared length: %d (does not match)\n", declared)
	}

	if len(payload) >= 4 {
		stored := binary.BigEndian.Uint16(payload[len(payload)-2:])
		status := "ok"
		if !easyip.VerifyChecksum(payload) {
			status = fmt.Sprintf("bad, computed %#04x", easyip.Checksum(payload))
		}
		fmt.Fprintf(w, "  checksum: %#04x (%s)\n", stored, status)
	}

	if mac, ok := easyip.HardwareAddress(payload); ok {
		fmt.Fprintf(w, "  hardware address: %s\n", mac)
	}

	if len(payload) <= easyip.HeaderSize {
		_, err := fmt.Fprintf(w, "  no TLV region\n\n")
		return err
	}

	index, err := easyip.BuildIndex(payload)
	if err != nil {
		_, err = fmt.Fprintf(w, "  %v\n\n", err)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tOFFSET\tLENGTH\tVALUE")
	for _, id := range index.IDs() {
		r, _ := index.Lookup(id)
		fmt.Fprintf(tw, "  %d\t%s\t%d\t%d\t%s\n",
			id,
			valueOr(easyip.DescribeID(id), "-"),
			r.Start,
			r.Len(),
			shortHex(payload[r.Start:r.End]),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)
	return err
}

func shortHex(b []byte) string {
	if len(b) <= inspectValueBytes {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:inspectValueBytes]) + "..."
}

func init() {
	inspectCmd.Flags().IntVar(&inspectLine, "line", 0, "only inspect the datagram on this line")
	rootCmd.AddCommand(inspectCmd)
}
