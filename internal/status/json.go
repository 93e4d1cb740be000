package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/button-blinker/internal/logic"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string      `json:"event,omitempty"`
	Reason        string      `json:"reason,omitempty"`
	Mode          string      `json:"mode"`
	Tick          uint32      `json:"tick"`
	LED           string      `json:"led"`
	Blinking      bool        `json:"blinking"`
	BlinkToggles  uint32      `json:"blink_toggles"`
	Clicks        uint32      `json:"clicks_pending"`
	LastClickTick uint32      `json:"last_click_tick"`
	DelayMs       uint32      `json:"delay_ms,omitempty"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	StartTime     string      `json:"start_time"`
	Timestamp     string      `json:"timestamp"`
	Counts        CountsJSON  `json:"event_counts"`
	Recent        []EventJSON `json:"recent,omitempty"`
	Config        ConfigJSON  `json:"config"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	Clicks        int `json:"clicks"`
	Ticks         int `json:"ticks"`
	DoubleClicks  int `json:"double_clicks"`
	BlinkEnds     int `json:"blink_ends"`
	PeriodChanges int `json:"period_changes"`
	ClickExpiries int `json:"click_expiries"`
}

// EventJSON is the JSON representation of one recent event.
type EventJSON struct {
	Tick    uint32 `json:"tick"`
	Type    string `json:"type"`
	DelayMs uint32 `json:"delay_ms,omitempty"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	Chip        string `json:"chip"`
	PinButton   int    `json:"pin_button"`
	PinLED      int    `json:"pin_led"`
	Edge        string `json:"edge"`
	HeartbeatMs int64  `json:"heartbeat_ms"`
}

func buildInner(snap Snapshot) StatusInner {
	st := snap.State
	led := "OFF"
	if snap.LEDOn {
		led = "ON"
	}
	mode := st.Mode
	if mode == "" {
		mode = snap.Config.Mode
	}

	inner := StatusInner{
		Mode:          string(mode),
		Tick:          st.Tick,
		LED:           led,
		Blinking:      st.Blinking,
		BlinkToggles:  st.BlinkToggles,
		Clicks:        st.Clicks,
		LastClickTick: st.LastClickTick,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		Counts: CountsJSON{
			Clicks:        st.Counts.Clicks,
			Ticks:         st.Counts.Ticks,
			DoubleClicks:  st.Counts.DoubleClicks,
			BlinkEnds:     st.Counts.BlinkEnds,
			PeriodChanges: st.Counts.PeriodChanges,
			ClickExpiries: st.Counts.ClickExpiries,
		},
		Config: ConfigJSON{
			Chip:        snap.Config.Chip,
			PinButton:   snap.Config.PinButton,
			PinLED:      snap.Config.PinLED,
			Edge:        snap.Config.Edge,
			HeartbeatMs: snap.Config.HeartbeatMs,
		},
	}
	if mode == logic.ModePeriod {
		inner.DelayMs = st.DelayMs
	}
	for _, e := range snap.Recent {
		inner.Recent = append(inner.Recent, EventJSON{Tick: e.Tick, Type: string(e.Type), DelayMs: e.DelayMs})
	}
	return inner
}

// FormatJSON returns the indented JSON status (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent returns the single-line JSON status for a lifecycle log line.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
