package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"easyip-setup/internal/camera"
	"easyip-setup/internal/capture"
	"easyip-setup/internal/stats"
)

var (
	jsonOutput bool

	decodeCmd = &cobra.Command{
		Use:   "decode [capture-file...]",
		Short: "Decode camera replies from capture files",
		Long: `Decode every camera reply in the given capture files (or the configured
capture) and print one row per reply. Replies that fail validation are listed
with the reason and never stop the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := capturePaths(args)
			if err != nil {
				return err
			}

			results, err := decodeFiles(paths)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}

			tracker := stats.NewTracker()
			for _, r := range results {
				observe(r, nil, tracker)
			}

			if err := writeTable(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), tracker.GetSnapshot())
		},
	}
)

// decodedReply is the JSON form of one decoded capture line
type decodedReply struct {
	Line         int    `json:"line"`
	Source       string `json:"source,omitempty"`
	MacAddress   string `json:"mac,omitempty"`
	IPAddress    string `json:"ip,omitempty"`
	Netmask      string `json:"netmask,omitempty"`
	Gateway      string `json:"gateway,omitempty"`
	PrimaryDNS   string `json:"dns1,omitempty"`
	SecondaryDNS string `json:"dns2,omitempty"`
	Port         uint16 `json:"port,omitempty"`
	Model        string `json:"model,omitempty"`
	Name         string `json:"name,omitempty"`
	ChecksumOK   bool   `json:"checksum_ok"`
	Error        string `json:"error,omitempty"`
}

func newDecodedReply(r *capture.Result) decodedReply {
	reply := decodedReply{
		Line:       r.Datagram.Line,
		Source:     r.Datagram.Source,
		ChecksumOK: r.ChecksumOK,
	}
	if r.Err != nil {
		reply.Error = r.Err.Error()
		return reply
	}

	c := r.Config
	reply.MacAddress = c.MacAddress.String()
	reply.IPAddress = c.IPAddress.String()
	reply.Netmask = c.Netmask.String()
	reply.Gateway = c.Gateway.String()
	reply.PrimaryDNS = c.PrimaryDNS.String()
	reply.SecondaryDNS = c.SecondaryDNS.String()
	reply.Port = c.Port
	reply.Model = c.Model
	reply.Name = c.Name
	return reply
}

func decodeFiles(paths []string) ([]*capture.Result, error) {
	var results []*capture.Result
	for _, path := range paths {
		datagrams, err := capture.ReadFile(path)
		if err != nil {
			return nil, err
		}
		log.Debugf("read %d datagrams from %s", len(datagrams), path)

		for _, d := range datagrams {
			r := capture.DecodeDatagram(d)
			if r.Err != nil {
				log.Warnf("%s:%d: %v", path, d.Line, r.Err)
			}
			results = append(results, r)
		}
	}
	return results, nil
}

// observe feeds a decode result into the registry (when given) and tracker
func observe(r *capture.Result, registry *camera.Registry, tracker *stats.Tracker) {
	if r.Err != nil {
		tracker.RecordFailure(r.Datagram.Payload, r.Err)
		return
	}

	tracker.RecordReply(r.Config.MacAddress, r.ChecksumOK)
	if registry != nil {
		registry.Observe(r.Config, r.Datagram.Source)
	}
}

func writeJSON(w io.Writer, results []*capture.Result) error {
	replies := make([]decodedReply, len(results))
	for i, r := range results {
		replies[i] = newDecodedReply(r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(replies)
}

func writeTable(w io.Writer, results []*capture.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "LINE\tSOURCE\tMAC\tIP\tNETMASK\tGATEWAY\tDNS\tPORT\tMODEL\tNAME\tSTATUS")
	fmt.Fprintln(tw, "----\t------\t---\t--\t-------\t-------\t---\t----\t-----\t----\t------")

	for _, r := range results {
		source := valueOr(r.Datagram.Source, "-")

		if r.Err != nil {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\t-\t-\t-\t-\t-\t%v\n", r.Datagram.Line, source, r.Err)
			continue
		}

		status := "ok"
		if !r.ChecksumOK {
			status = "bad checksum"
		}

		c := r.Config
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s/%s\t%d\t%s\t%s\t%s\n",
			r.Datagram.Line,
			source,
			c.MacAddress,
			c.IPAddress,
			c.Netmask,
			c.Gateway,
			c.PrimaryDNS, c.SecondaryDNS,
			c.Port,
			valueOr(c.Model, "-"),
			valueOr(c.Name, "-"),
			status,
		)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s stats.Snapshot) error {
	fmt.Fprintf(w, "\n%d decoded, %d failed, %d bad checksum\n", s.Decoded, s.Failed, s.ChecksumFailures)

	kinds := make([]string, 0, len(s.ByKind))
	for kind, n := range s.ByKind {
		kinds = append(kinds, fmt.Sprintf("  %s: %d", kind, n))
	}
	for field, n := range s.MismatchByField {
		kinds = append(kinds, fmt.Sprintf("  %s mismatch: %d", field, n))
	}
	slices.Sort(kinds)

	for _, line := range kinds {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	decodeCmd.Flags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.AddCommand(decodeCmd)
}
