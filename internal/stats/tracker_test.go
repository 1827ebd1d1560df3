package stats

import (
	"testing"

	"easyip-setup/internal/easyip"
)

var testMac = easyip.MacAddress{0xa8, 0x13, 0x74, 0x76, 0xa8, 0x6b}

// replyHeader returns a datagram long enough to carry a hardware address
func replyHeader(mac easyip.MacAddress) []byte {
	datagram := make([]byte, 40)
	copy(datagram[6:12], mac[:])
	return datagram
}

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	if tracker == nil {
		t.Fatal("NewTracker() returned nil")
	}

	s := tracker.GetSnapshot()
	if s.Decoded != 0 || s.Failed != 0 {
		t.Errorf("GetSnapshot() = %+v, want empty", s)
	}

	if tracker.GetFailurePercentage() != 0 {
		t.Errorf("GetFailurePercentage() = %f, want 0", tracker.GetFailurePercentage())
	}
}

func TestTracker_RecordReply(t *testing.T) {
	tracker := NewTracker()

	tracker.RecordReply(testMac, true)
	tracker.RecordReply(testMac, false)

	s := tracker.GetSnapshot()
	if s.Decoded != 2 {
		t.Errorf("Decoded = %d, want 2", s.Decoded)
	}

	if s.ChecksumFailures != 1 {
		t.Errorf("ChecksumFailures = %d, want 1", s.ChecksumFailures)
	}

	cs := tracker.GetCameraStats(testMac)
	if cs == nil {
		t.Fatal("GetCameraStats() returned nil")
	}

	if cs.Replies != 2 {
		t.Errorf("CameraStats.Replies = %d, want 2", cs.Replies)
	}

	if cs.LastReply.IsZero() {
		t.Error("CameraStats.LastReply not set")
	}
}

func TestTracker_RecordFailure(t *testing.T) {
	tracker := NewTracker()

	tracker.RecordFailure(replyHeader(testMac), easyip.NewDecodeError(easyip.KindMismatch, easyip.FieldPort, 0))
	tracker.RecordFailure(replyHeader(testMac), easyip.NewDecodeError(easyip.KindMismatch, easyip.FieldPort, 0))
	tracker.RecordFailure(replyHeader(testMac), easyip.NewDecodeError(easyip.KindFieldNotFound, easyip.FieldName, 0))
	tracker.RecordFailure([]byte{0, 1}, easyip.NewDecodeError(easyip.KindDatagramTooSmall, 0, 0))

	s := tracker.GetSnapshot()
	if s.Failed != 4 {
		t.Errorf("Failed = %d, want 4", s.Failed)
	}

	if s.ByKind[easyip.KindMismatch] != 2 {
		t.Errorf("ByKind[Mismatch] = %d, want 2", s.ByKind[easyip.KindMismatch])
	}

	if s.ByKind[easyip.KindDatagramTooSmall] != 1 {
		t.Errorf("ByKind[DatagramTooSmall] = %d, want 1", s.ByKind[easyip.KindDatagramTooSmall])
	}

	if s.MismatchByField[easyip.FieldPort] != 2 {
		t.Errorf("MismatchByField[port] = %d, want 2", s.MismatchByField[easyip.FieldPort])
	}

	// The too-small datagram carries no hardware address
	cs := tracker.GetCameraStats(testMac)
	if cs == nil {
		t.Fatal("GetCameraStats() returned nil")
	}

	if cs.Failures != 3 {
		t.Errorf("CameraStats.Failures = %d, want 3", cs.Failures)
	}

	if cs.LastError != "easyip: field not found: name" {
		t.Errorf("CameraStats.LastError = %q, want %q", cs.LastError, "easyip: field not found: name")
	}
}

func TestTracker_GetFailurePercentage(t *testing.T) {
	tracker := NewTracker()

	tracker.RecordReply(testMac, true)
	tracker.RecordReply(testMac, true)
	tracker.RecordReply(testMac, true)
	tracker.RecordFailure(replyHeader(testMac), easyip.ErrMismatch)

	if got := tracker.GetFailurePercentage(); got != 25 {
		t.Errorf("GetFailurePercentage() = %f, want 25", got)
	}
}

func TestTracker_GetReplyRate(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 5; i++ {
		tracker.RecordReply(testMac, true)
	}

	if rate := tracker.GetReplyRate(); rate != 5 {
		t.Errorf("GetReplyRate() = %f, want 5", rate)
	}
}

func TestTracker_GetCameraStats_Unknown(t *testing.T) {
	tracker := NewTracker()

	if cs := tracker.GetCameraStats(testMac); cs != nil {
		t.Errorf("GetCameraStats() = %+v, want nil", cs)
	}
}

func TestTracker_SnapshotIsCopy(t *testing.T) {
	tracker := NewTracker()
	tracker.RecordFailure(replyHeader(testMac), easyip.ErrTruncated)

	s := tracker.GetSnapshot()
	s.ByKind[easyip.KindTruncated] = 100

	if got := tracker.GetSnapshot().ByKind[easyip.KindTruncated]; got != 1 {
		t.Errorf("ByKind[Truncated] = %d after modifying a snapshot, want 1", got)
	}
}

func TestTracker_ResetAllStats(t *testing.T) {
	tracker := NewTracker()

	tracker.RecordReply(testMac, false)
	tracker.RecordFailure(replyHeader(testMac), easyip.ErrMismatch)

	tracker.ResetAllStats()

	s := tracker.GetSnapshot()
	if s.Decoded != 0 || s.Failed != 0 || s.ChecksumFailures != 0 || len(s.ByKind) != 0 {
		t.Errorf("GetSnapshot() = %+v after reset, want empty", s)
	}

	if tracker.GetCameraStats(testMac) != nil {
		t.Error("GetCameraStats() returned non-nil after reset")
	}

	if tracker.GetReplyRate() != 0 {
		t.Errorf("GetReplyRate() = %f after reset, want 0", tracker.GetReplyRate())
	}
}
