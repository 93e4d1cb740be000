package logic

import "testing"

func TestClickDetectorWrapAround(t *testing.T) {
	d := ClickDetector{}
	d.Click(^uint32(0) - 1)

	// Two ticks later the counter has wrapped to 0; modular subtraction
	// still yields a gap of 2.
	double, expired := d.Click(0)
	if !double || expired {
		t.Errorf("got double=%v expired=%v, want true false", double, expired)
	}
}

func TestBlinkSequencerRearmDuringEpisode(t *testing.T) {
	var b BlinkSequencer
	b.Arm()
	b.Tick()
	b.Tick()
	b.Arm()

	if b.Toggles() != 2 {
		t.Errorf("Toggles: got %d, want 2", b.Toggles())
	}

	finishedAt := -1
	for i := 0; i < 10; i++ {
		_, finished := b.Tick()
		if finished {
			finishedAt = i
			break
		}
	}
	if finishedAt != 3 {
		t.Errorf("finished after %d extra ticks, want 4", finishedAt+1)
	}
}

func TestBlinkSequencerIdle(t *testing.T) {
	var b BlinkSequencer
	for i := 0; i < 3; i++ {
		if toggle, finished := b.Tick(); toggle || finished {
			t.Errorf("tick %d: idle sequencer reported toggle=%v finished=%v", i, toggle, finished)
		}
	}
}

func TestPeriodControllerRange(t *testing.T) {
	p := NewPeriodController()
	if p.DelayMs() != MaxDelayMs {
		t.Fatalf("initial DelayMs: got %d, want %d", p.DelayMs(), MaxDelayMs)
	}
	for i := 0; i < 100; i++ {
		d := p.Step()
		if d < MinDelayMs || d > MaxDelayMs {
			t.Fatalf("step %d: %d out of [%d, %d]", i, d, MinDelayMs, MaxDelayMs)
		}
	}
}

func TestTickCounterWraps(t *testing.T) {
	c := TickCounter{n: ^uint32(0)}
	c.Advance()
	if c.Now() != 0 {
		t.Errorf("Now: got %d, want 0", c.Now())
	}
}
