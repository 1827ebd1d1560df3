package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"easyip-setup/internal/capture"
	"easyip-setup/internal/easyip"
)

var (
	dumpOutput bool
	outFile    string

	target reconfigureOptions

	discoveryRequestCmd = &cobra.Command{
		Use:   "discovery-request",
		Short: "Build the broadcast discovery request",
		Long: `Build the discovery request that asks every EasyIP camera on the segment to
reply with its configuration. The request carries this machine's identity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mac, ip, err := sourceIdentity()
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), easyip.DiscoveryRequest(mac, ip), outFile, dumpOutput)
		},
	}

	reconfigureCmd = &cobra.Command{
		Use:   "reconfigure",
		Short: "Build a reconfiguration request for one camera",
		Example: `  easyip-setup reconfigure --source-mac 00:1c:42:4b:bb:f8 --source-ip 10.1.0.4 \
    --mac a8:13:74:76:a8:6b --ip 10.1.0.215 --gateway 10.1.0.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mac, ip, err := sourceIdentity()
			if err != nil {
				return err
			}

			config, err := target.configuration()
			if err != nil {
				return err
			}
			log.Debugf("reconfiguring %s: %+v", config.MacAddress, config)

			return emit(cmd.OutOrStdout(), config.ReconfigurationRequest(mac, ip), outFile, dumpOutput)
		},
	}
)

type reconfigureOptions struct {
	mac     string
	ip      string
	netmask string
	gateway string
	dns1    string
	dns2    string
	port    uint16
}

func (o reconfigureOptions) configuration() (easyip.CameraConfiguration, error) {
	var config easyip.CameraConfiguration

	mac, err := easyip.ParseMacAddress(o.mac)
	if err != nil {
		return easyip.CameraConfiguration{}, fmt.Errorf("--mac: %w", err)
	}
	config.MacAddress = mac

	addresses := []struct {
		flag  string
		value string
		dst   *easyip.IPv4Address
	}{
		{"ip", o.ip, &config.IPAddress},
		{"netmask", o.netmask, &config.Netmask},
		{"gateway", o.gateway, &config.Gateway},
		{"dns1", o.dns1, &config.PrimaryDNS},
		{"dns2", o.dns2, &config.SecondaryDNS},
	}
	for _, a := range addresses {
		if *a.dst, err = easyip.ParseIPv4Address(a.value); err != nil {
			return easyip.CameraConfiguration{}, fmt.Errorf("--%s: %w", a.flag, err)
		}
	}

	config.Port = o.port

	return config, nil
}

// emit writes a datagram to path as raw bytes, or to w as a capture line
// (or a hex dump)
func emit(w io.Writer, datagram []byte, path string, dump bool) error {
	if path != "" {
		if err := os.WriteFile(path, datagram, 0o644); err != nil {
			return fmt.Errorf("write datagram: %w", err)
		}
		log.Infof("wrote %d bytes to %s", len(datagram), path)
		return nil
	}

	if dump {
		_, err := fmt.Fprint(w, hex.Dump(datagram))
		return err
	}

	_, err := fmt.Fprintln(w, capture.FormatLine(capture.Datagram{Payload: datagram}))
	return err
}

func init() {
	for _, cmd := range []*cobra.Command{discoveryRequestCmd, reconfigureCmd} {
		cmd.Flags().BoolVar(&dumpOutput, "dump", false, "print a hex dump instead of a capture line")
		cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the raw datagram to this file")
		rootCmd.AddCommand(cmd)
	}

	reconfigureCmd.Flags().StringVar(&target.mac, "mac", "", "hardware address of the camera")
	reconfigureCmd.Flags().StringVar(&target.ip, "ip", "", "new IPv4 address")
	reconfigureCmd.Flags().StringVar(&target.netmask, "netmask", "255.255.255.0", "new netmask")
	reconfigureCmd.Flags().StringVar(&target.gateway, "gateway", "", "new default gateway")
	reconfigureCmd.Flags().StringVar(&target.dns1, "dns1", "0.0.0.0", "primary DNS server")
	reconfigureCmd.Flags().StringVar(&target.dns2, "dns2", "0.0.0.0", "secondary DNS server")
	reconfigureCmd.Flags().Uint16Var(&target.port, "port", 80, "HTTP port")

	for _, name := range []string{"mac", "ip", "gateway"} {
		if err := reconfigureCmd.MarkFlagRequired(name); err != nil {
			log.Fatalf("mark --%s required: %v", name, err)
		}
	}
}
