package status

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sweeney/button-blinker/internal/logic"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{Mode: logic.ModeBlink, Chip: "gpiochip0", PinButton: 17, PinLED: 27, Edge: "falling"}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v, want %v", snap.StartTime, start)
	}
	if diff := cmp.Diff(cfg, snap.Config); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
	if snap.State.Mode != logic.ModeBlink {
		t.Errorf("State.Mode: got %q, want blink", snap.State.Mode)
	}
	if snap.LEDOn {
		t.Error("expected LEDOn=false initially")
	}
	if snap.Recent != nil {
		t.Errorf("expected no recent events, got %v", snap.Recent)
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	st := logic.State{Mode: logic.ModeBlink, Tick: 9, Blinking: true, BlinkToggles: 2}
	events := []logic.Event{{Tick: 7, Type: logic.EventDoubleClick}}
	tr.Update(st, true, events)

	snap := tr.Snapshot()
	if diff := cmp.Diff(st, snap.State); diff != "" {
		t.Errorf("State mismatch (-want +got):\n%s", diff)
	}
	if !snap.LEDOn {
		t.Error("expected LEDOn=true")
	}
	if diff := cmp.Diff(events, snap.Recent); diff != "" {
		t.Errorf("Recent mismatch (-want +got):\n%s", diff)
	}
}

func TestRecentKeepsNewest(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	for i := 0; i < recentCapacity+4; i++ {
		tr.Update(logic.State{}, false, []logic.Event{{Tick: uint32(i), Type: logic.EventPeriodChanged}})
	}

	recent := tr.Snapshot().Recent
	if len(recent) != recentCapacity {
		t.Fatalf("expected %d recent events, got %d", recentCapacity, len(recent))
	}
	if recent[0].Tick != 4 {
		t.Errorf("oldest kept tick: got %d, want 4", recent[0].Tick)
	}
	if recent[len(recent)-1].Tick != recentCapacity+3 {
		t.Errorf("newest tick: got %d, want %d", recent[len(recent)-1].Tick, recentCapacity+3)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.Update(logic.State{}, false, []logic.Event{{Tick: 1, Type: logic.EventBlinkEnd}})

	snap := tr.Snapshot()
	snap.Recent[0].Tick = 99

	if got := tr.Snapshot().Recent[0].Tick; got != 1 {
		t.Errorf("tracker state changed through snapshot: tick %d", got)
	}
}

func TestUptime(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(start, Config{})
	tr.now = func() time.Time { return start.Add(90 * time.Second) }

	if got := tr.Snapshot().Uptime(); got != 90*time.Second {
		t.Errorf("Uptime: got %v, want 90s", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Update(logic.State{Tick: uint32(j)}, j%2 == 0, []logic.Event{{Tick: uint32(j), Type: logic.EventDoubleClick}})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tr.Snapshot()
			}
		}()
	}
	wg.Wait()
}

func TestFormatJSONBlink(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		State: logic.State{
			Mode:          logic.ModeBlink,
			Tick:          12,
			Clicks:        1,
			LastClickTick: 11,
			DelayMs:       logic.MaxDelayMs,
			Counts:        logic.EventCounts{Clicks: 3, DoubleClicks: 1},
		},
		LEDOn:     true,
		Recent:    []logic.Event{{Tick: 5, Type: logic.EventDoubleClick}},
		StartTime: start,
		Now:       start.Add(65 * time.Second),
		Config:    Config{Mode: logic.ModeBlink, Chip: "gpiochip0", PinButton: 17, PinLED: 27, Edge: "falling"},
	}

	var sj StatusJSON
	if err := json.Unmarshal(FormatJSON(snap), &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := StatusInner{
		Mode:          "blink",
		Tick:          12,
		LED:           "ON",
		Clicks:        1,
		LastClickTick: 11,
		UptimeSeconds: 65,
		StartTime:     "2026-01-01T00:00:00Z",
		Timestamp:     "2026-01-01T00:01:05Z",
		Counts:        CountsJSON{Clicks: 3, DoubleClicks: 1},
		Recent:        []EventJSON{{Tick: 5, Type: "DOUBLE_CLICK"}},
		Config:        ConfigJSON{Chip: "gpiochip0", PinButton: 17, PinLED: 27, Edge: "falling"},
	}
	if diff := cmp.Diff(want, sj.Status); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatJSONPeriodIncludesDelay(t *testing.T) {
	snap := Snapshot{State: logic.State{Mode: logic.ModePeriod, DelayMs: 1000}}

	var sj StatusJSON
	if err := json.Unmarshal(FormatJSON(snap), &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sj.Status.DelayMs != 1000 {
		t.Errorf("DelayMs: got %d, want 1000", sj.Status.DelayMs)
	}
	if sj.Status.LED != "OFF" {
		t.Errorf("LED: got %q, want OFF", sj.Status.LED)
	}
}

func TestFormatStatusEvent(t *testing.T) {
	snap := Snapshot{Config: Config{Mode: logic.ModePeriod}}
	data := FormatStatusEvent(snap, "SHUTDOWN", "SIGTERM")

	var sj StatusJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sj.Status.Event != "SHUTDOWN" {
		t.Errorf("Event: got %q, want SHUTDOWN", sj.Status.Event)
	}
	if sj.Status.Reason != "SIGTERM" {
		t.Errorf("Reason: got %q, want SIGTERM", sj.Status.Reason)
	}
	if sj.Status.Mode != "period" {
		t.Errorf("Mode falls back to config: got %q, want period", sj.Status.Mode)
	}
	for _, b := range data {
		if b == '\n' {
			t.Fatal("status event must be a single line")
		}
	}
}
