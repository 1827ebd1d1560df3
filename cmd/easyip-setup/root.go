package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"easyip-setup/internal/config"
	"easyip-setup/internal/easyip"
)

var (
	debug     bool
	cfgPath   string
	sourceMac string
	sourceIP  string

	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "easyip-setup",
		Short: "Build and decode EasyIP camera setup datagrams",
		Long: `Build EasyIP discovery and reconfiguration requests, decode camera replies
from capture files and browse the cameras they describe.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("failed to execute command: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debugging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file location (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&sourceMac, "source-mac", "", "hardware address of this machine (overrides source.mac)")
	rootCmd.PersistentFlags().StringVar(&sourceIP, "source-ip", "", "IPv4 address of this machine (overrides source.ip)")
}

func setup() error {
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if sourceMac != "" {
		cfg.Source.MAC = sourceMac
	}
	if sourceIP != "" {
		cfg.Source.IP = sourceIP
	}

	log.SetLevel(cfg.Level())
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	log.Debugf("config: %+v", cfg)

	return nil
}

// sourceIdentity returns the configured identity of this machine
func sourceIdentity() (easyip.MacAddress, easyip.IPv4Address, error) {
	mac, ip, err := cfg.SourceIdentity()
	if err != nil {
		return mac, ip, fmt.Errorf("%w (use --source-mac/--source-ip or the config file)", err)
	}
	return mac, ip, nil
}

// capturePaths returns the capture files named on the command line, or the
// configured default
func capturePaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Capture != "" {
		return []string{cfg.Capture}, nil
	}
	return nil, fmt.Errorf("no capture file given and none configured")
}
