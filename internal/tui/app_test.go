package tui

import (
	"strings"
	"testing"
	"time"

	"easyip-setup/internal/camera"
	"easyip-setup/internal/easyip"
	"easyip-setup/internal/stats"

	tea "github.com/charmbracelet/bubbletea"
)

var testIdentity = Identity{
	MacAddress: easyip.MacAddress{0x00, 0x1c, 0x42, 0x4b, 0xbb, 0xf8},
	IPAddress:  easyip.IPv4Address{10, 1, 0, 4},
	Valid:      true,
}

func newTestModel(identity Identity, macs ...easyip.MacAddress) Model {
	r := camera.NewRegistry()
	for i, mac := range macs {
		r.Observe(easyip.CameraConfiguration{
			MacAddress: mac,
			IPAddress:  easyip.IPv4Address{10, 1, 0, byte(10 + i)},
			Port:       80,
			Name:       "cam",
		}, "")
	}

	m := NewModel(r, stats.NewTracker(), identity, time.Minute)
	m = send(m, tea.WindowSizeMsg{Width: 200, Height: 40})
	return send(m, TickMsg(time.Now()))
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_Empty(t *testing.T) {
	m := newTestModel(testIdentity)

	if !strings.Contains(m.View(), "Waiting for camera replies") {
		t.Errorf("View() without cameras should say it is waiting")
	}
}

func TestView_Loading(t *testing.T) {
	m := NewModel(camera.NewRegistry(), stats.NewTracker(), testIdentity, time.Minute)

	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before size = %q, want %q", got, "Loading...")
	}
}

func TestSelection(t *testing.T) {
	first := easyip.MacAddress{0, 0, 0, 0, 0, 1}
	second := easyip.MacAddress{0, 0, 0, 0, 0, 2}
	m := newTestModel(testIdentity, second, first)

	if len(m.cameraList) != 2 {
		t.Fatalf("cameraList has %d entries, want 2", len(m.cameraList))
	}
	if m.cameraList[0] != first {
		t.Errorf("cameraList[0] = %s, want %s", m.cameraList[0], first)
	}

	m = send(m, runes("j"))
	if m.selected != 1 {
		t.Errorf("selected after down = %d, want 1", m.selected)
	}

	// Clamped at the end
	m = send(m, runes("j"))
	if m.selected != 1 {
		t.Errorf("selected past end = %d, want 1", m.selected)
	}

	// Survives a refresh
	m = send(m, TickMsg(time.Now()))
	if m.cameraList[m.selected] != second {
		t.Errorf("selection after tick = %s, want %s", m.cameraList[m.selected], second)
	}

	m = send(m, runes("k"))
	if m.selected != 0 {
		t.Errorf("selected after up = %d, want 0", m.selected)
	}
}

func TestView_Requests(t *testing.T) {
	mac := easyip.MacAddress{0xa8, 0x13, 0x74, 0x76, 0xa8, 0x6b}
	m := newTestModel(testIdentity, mac)

	if !strings.Contains(m.View(), mac.String()) {
		t.Errorf("camera table does not list %s", mac)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != viewReconfiguration {
		t.Fatalf("mode after enter = %d, want %d", m.mode, viewReconfiguration)
	}
	view := m.View()
	if !strings.Contains(view, "Reconfiguration request for "+mac.String()) {
		t.Errorf("reconfiguration view missing title:\n%s", view)
	}
	if !strings.Contains(view, "(227 bytes)") {
		t.Errorf("reconfiguration view missing size:\n%s", view)
	}

	m = send(m, runes("d"))
	if !strings.Contains(m.View(), "(94 bytes)") {
		t.Errorf("discovery view missing size")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != viewList {
		t.Errorf("mode after esc = %d, want %d", m.mode, viewList)
	}
}

func TestView_RequestsNeedIdentity(t *testing.T) {
	m := newTestModel(Identity{}, easyip.MacAddress{0, 0, 0, 0, 0, 1})

	m = send(m, runes("d"))
	if !strings.Contains(m.View(), "source.mac") {
		t.Errorf("discovery view without identity should explain what to configure")
	}
}
