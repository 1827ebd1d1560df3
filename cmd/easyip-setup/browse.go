package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"easyip-setup/internal/camera"
	"easyip-setup/internal/capture"
	"easyip-setup/internal/stats"
	"easyip-setup/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [capture-file...]",
	Short: "Browse the cameras found in captured replies",
	Long: `Replay captured camera replies into an interactive camera list. Select a
camera to see the reconfiguration request that would be sent to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := capturePaths(args)
		if err != nil {
			return err
		}

		var datagrams []capture.Datagram
		for _, path := range paths {
			d, err := capture.ReadFile(path)
			if err != nil {
				return err
			}
			datagrams = append(datagrams, d...)
		}

		identity := tui.Identity{}
		if mac, ip, err := sourceIdentity(); err == nil {
			identity = tui.Identity{MacAddress: mac, IPAddress: ip, Valid: true}
		} else {
			log.Debugf("requests disabled: %v", err)
		}

		return browse(datagrams, identity)
	},
}

func browse(datagrams []capture.Datagram, identity tui.Identity) error {
	// Create components
	registry := camera.NewRegistry()
	tracker := stats.NewTracker()
	replayer := capture.NewReplayer(datagrams, cfg.ReplayInterval)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle system signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := replayer.Start(ctx); err != nil {
		return fmt.Errorf("start replayer: %w", err)
	}
	defer replayer.Stop()

	// Process replayed replies
	go func() {
		for result := range replayer.Results() {
			observe(result, registry, tracker)
		}
	}()

	model := tui.NewModel(registry, tracker, identity, cfg.StaleAfter)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
