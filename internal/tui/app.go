package tui

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"easyip-setup/internal/camera"
	"easyip-setup/internal/easyip"
	"easyip-setup/internal/stats"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	cyanColor = lipgloss.Color("#00FFFF")
	grayColor = lipgloss.Color("#666666")

	whiteColor  = lipgloss.Color("#FFFFFF")
	yellowColor = lipgloss.Color("#FFFF00")
	redColor    = lipgloss.Color("#FF6666")
)

// Styles
var (
	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cyanColor)

	rowStyle = lipgloss.NewStyle().
			Foreground(whiteColor)

	staleRowStyle = lipgloss.NewStyle().
			Foreground(grayColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(grayColor)

	statsStyle = lipgloss.NewStyle().
			Foreground(whiteColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(whiteColor).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cyanColor).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(redColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(grayColor)
)

// KeyMap defines keybindings
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Reconfigure key.Binding
	Discovery   key.Binding
	Back        key.Binding
	Quit        key.Binding
}

var keys = KeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k")),
	Down:        key.NewBinding(key.WithKeys("down", "j")),
	Reconfigure: key.NewBinding(key.WithKeys("enter", "r")),
	Discovery:   key.NewBinding(key.WithKeys("d")),
	Back:        key.NewBinding(key.WithKeys("esc")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

type viewMode int

const (
	viewList viewMode = iota
	viewReconfiguration
	viewDiscovery
)

// Identity is the setup tool's own address, used to build requests
type Identity struct {
	MacAddress easyip.MacAddress
	IPAddress  easyip.IPv4Address
	Valid      bool
}

// Model is the main TUI model
type Model struct {
	registry   *camera.Registry
	tracker    *stats.Tracker
	identity   Identity
	staleAfter time.Duration
	cameraList []easyip.MacAddress
	selected   int
	mode       viewMode
	width      int
	height     int
}

// NewModel creates a new TUI model
func NewModel(r *camera.Registry, st *stats.Tracker, identity Identity, staleAfter time.Duration) Model {
	return Model{
		registry:   r,
		tracker:    st,
		identity:   identity,
		staleAfter: staleAfter,
	}
}

// TickMsg is a message for periodic updates
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.cameraList)-1 {
				m.selected++
			}
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, keys.Reconfigure):
			if len(m.cameraList) > 0 {
				m.mode = viewReconfiguration
			}
		case key.Matches(msg, keys.Discovery):
			m.mode = viewDiscovery
		case key.Matches(msg, keys.Back):
			m.mode = viewList
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		m.updateCameraList()
		return m, tickCmd()
	}

	return m, nil
}

func (m *Model) updateCameraList() {
	var current easyip.MacAddress
	hadSelection := m.selected < len(m.cameraList)
	if hadSelection {
		current = m.cameraList[m.selected]
	}

	cameras := m.registry.GetAll()
	m.cameraList = make([]easyip.MacAddress, len(cameras))
	for i, c := range cameras {
		m.cameraList[i] = c.MacAddress
	}

	// Keep the selection on the same camera as the list grows
	m.selected = 0
	if hadSelection {
		for i, mac := range m.cameraList {
			if mac == current {
				m.selected = i
				break
			}
		}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var s string

	// Title
	s += titleStyle.Render("EasyIP Setup") + "\n\n"

	s += m.renderStats() + "\n\n"

	switch {
	case m.mode == viewDiscovery:
		s += m.renderDiscovery() + "\n"
	case m.mode == viewReconfiguration && len(m.cameraList) > 0:
		s += m.renderReconfiguration() + "\n"
	case len(m.cameraList) > 0:
		s += m.renderCameraTable() + "\n\n"
		s += m.renderSelected() + "\n"
	default:
		s += helpStyle.Render("Waiting for camera replies...") + "\n"
	}

	// Help
	s += "\n" + helpStyle.Render("↑↓: select | enter: reconfiguration request | d: discovery request | esc: back | q: quit")

	return s
}

func (m Model) renderStats() string {
	snapshot := m.tracker.GetSnapshot()
	failure := m.tracker.GetFailurePercentage()

	// Format failures with color
	failStr := fmt.Sprintf("%d (%.1f%%)", snapshot.Failed, failure)
	if failure > 10 {
		failStr = lipgloss.NewStyle().Foreground(redColor).Render(failStr)
	} else if failure > 0 {
		failStr = lipgloss.NewStyle().Foreground(yellowColor).Render(failStr)
	}

	line := fmt.Sprintf(
		"Cameras: %d | Decoded: %d | Failed: %s | Bad checksum: %d | Rate: %.1f rps",
		m.registry.Count(),
		snapshot.Decoded,
		failStr,
		snapshot.ChecksumFailures,
		m.tracker.GetReplyRate(),
	)

	return statsStyle.Render(line)
}

const tableFormat = "%-17s  %-15s  %-15s  %-15s  %-31s  %5s  %-16s  %-16s  %7s"

func (m Model) renderCameraTable() string {
	rows := []string{
		headerStyle.Render(fmt.Sprintf(tableFormat,
			"MAC", "IP", "NETMASK", "GATEWAY", "DNS", "PORT", "MODEL", "NAME", "REPLIES")),
	}

	// Reserve space for: title(2) + stats(2) + header(1) + details(4) + help(2)
	visible := max(1, m.height-11)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(len(m.cameraList), start+visible)

	for i := start; i < end; i++ {
		c := m.registry.Get(m.cameraList[i])
		if c == nil {
			continue
		}
		info := c.GetInfo()
		cfg := info.Config

		row := fmt.Sprintf(tableFormat,
			info.MacAddress,
			cfg.IPAddress,
			cfg.Netmask,
			cfg.Gateway,
			cfg.PrimaryDNS.String()+" / "+cfg.SecondaryDNS.String(),
			fmt.Sprint(cfg.Port),
			truncate(cfg.Model, 16),
			truncate(cfg.Name, 16),
			fmt.Sprint(info.ReplyCount),
		)

		switch {
		case i == m.selected:
			rows = append(rows, selectedRowStyle.Render("> "+row))
		case m.staleAfter > 0 && c.IsStale(m.staleAfter):
			rows = append(rows, staleRowStyle.Render("  "+row))
		default:
			rows = append(rows, rowStyle.Render("  "+row))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSelected() string {
	mac := m.cameraList[m.selected]
	c := m.registry.Get(mac)
	if c == nil {
		return ""
	}
	info := c.GetInfo()

	details := fmt.Sprintf("Source: %s | First seen: %s | Last seen: %s | Config changes: %d",
		valueOr(info.Source, "-"),
		info.FirstSeen.Format(time.TimeOnly),
		info.LastSeen.Format(time.TimeOnly),
		info.ConfigChanges,
	)

	if cs := m.tracker.GetCameraStats(mac); cs != nil && cs.Failures > 0 {
		details += "\n" + errorStyle.Render(fmt.Sprintf("Rejected replies: %d | Last error: %s", cs.Failures, cs.LastError))
	}

	return statsStyle.Render(details)
}

func (m Model) renderReconfiguration() string {
	mac := m.cameraList[m.selected]
	c := m.registry.Get(mac)
	if c == nil {
		return ""
	}

	if !m.identity.Valid {
		return errorStyle.Render("Set source.mac and source.ip in the configuration to build requests.")
	}

	datagram := c.GetConfig().ReconfigurationRequest(m.identity.MacAddress, m.identity.IPAddress)
	title := fmt.Sprintf("Reconfiguration request for %s (%d bytes)", mac, len(datagram))

	return panelStyle.Render(title + "\n\n" + strings.TrimRight(hex.Dump(datagram), "\n"))
}

func (m Model) renderDiscovery() string {
	if !m.identity.Valid {
		return errorStyle.Render("Set source.mac and source.ip in the configuration to build requests.")
	}

	datagram := easyip.DiscoveryRequest(m.identity.MacAddress, m.identity.IPAddress)
	title := fmt.Sprintf("Discovery request from %s at %s (%d bytes)",
		m.identity.MacAddress, m.identity.IPAddress, len(datagram))

	return panelStyle.Render(title + "\n\n" + strings.TrimRight(hex.Dump(datagram), "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
