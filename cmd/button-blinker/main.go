// Command button-blinker drives an LED from a push button: a double click
// blinks the LED three times, or, in period mode, each click shortens the
// LED's free-running blink period.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sweeney/button-blinker/internal/firmware"
	"github.com/sweeney/button-blinker/internal/gpio"
	"github.com/sweeney/button-blinker/internal/logic"
	"github.com/sweeney/button-blinker/internal/shared"
	"github.com/sweeney/button-blinker/internal/status"
	"github.com/sweeney/button-blinker/internal/timer"
)

func main() {
	mode := flag.String("mode", string(logic.ModeBlink), `Behavior: "blink" (double click blinks) or "period" (click shortens period)`)
	chip := flag.String("chip", gpio.DefaultChip, "GPIO chip name")
	pinButton := flag.Int("pin-button", gpio.DefaultPinButton, "BCM pin number for the button")
	pinLED := flag.Int("pin-led", gpio.DefaultPinLED, "BCM pin number for the LED")
	edge := flag.String("edge", "auto", `Button edge: "rising", "falling" or "auto" (falling for blink, rising for period)`)
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Status log interval (0 to disable)")

	flag.Parse()

	if err := run(logic.Mode(*mode), *chip, *pinButton, *pinLED, *edge, *heartbeat); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(mode logic.Mode, chip string, pinButton, pinLED int, edgeFlag string, heartbeat time.Duration) error {
	core, err := logic.NewCore(mode)
	if err != nil {
		return fmt.Errorf("init core: %w", err)
	}
	edge, err := resolveEdge(edgeFlag, mode)
	if err != nil {
		return err
	}
	period := core.InitialPeriod()

	tracker := status.NewTracker(time.Now(), status.Config{
		Mode:        mode,
		Chip:        chip,
		PinButton:   pinButton,
		PinLED:      pinLED,
		Edge:        string(edge),
		HeartbeatMs: heartbeat.Milliseconds(),
	})
	store := shared.New(core)
	fw := firmware.New(store, tracker)

	led, err := gpio.NewRealLED(chip, pinLED)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer led.Close()

	button, err := gpio.NewRealButton(chip, pinButton, edge, func() { fw.ButtonEdge() })
	if err != nil {
		return fmt.Errorf("init button: %w", err)
	}
	defer button.Close()

	tm := timer.NewRealTimer()
	defer tm.Stop()

	if err := store.Handoff(button, led, tm); err != nil {
		return fmt.Errorf("handoff: %w", err)
	}
	// Start inside the critical section so an early edge cannot reprogram
	// the timer before its initial period is set.
	store.Free(func(cs *shared.Section) {
		err = cs.Timer().Start(period)
	})
	if err != nil {
		return fmt.Errorf("start timer: %w", err)
	}

	log.Printf("status: %s", status.FormatStatusEvent(tracker.Snapshot(), "STARTUP", ""))
	log.Printf("started: mode=%s chip=%s button=%d led=%d edge=%s period=%v heartbeat=%v",
		mode, chip, pinButton, pinLED, edge, period, heartbeat)

	var hb <-chan time.Time
	if heartbeat > 0 {
		hbTicker := time.NewTicker(heartbeat)
		defer hbTicker.Stop()
		hb = hbTicker.C
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	reason, err := serve(context.Background(), fw, tracker, tm.C(), hb, sigCh)
	log.Printf("status: %s", status.FormatStatusEvent(tracker.Snapshot(), "SHUTDOWN", reason))
	return err
}

// serve runs the timer and heartbeat goroutines while the calling goroutine
// idles until a signal arrives or ctx ends. It returns the shutdown reason.
func serve(ctx context.Context, fw *firmware.Firmware, tracker *status.Tracker, tick, heartbeat <-chan time.Time, sig <-chan os.Signal) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pumpTicks(gctx, fw, tick)
		return nil
	})
	g.Go(func() error {
		logHeartbeats(gctx, tracker, heartbeat)
		return nil
	})

	reason := "CANCELLED"
	select {
	case s := <-sig:
		log.Printf("received %v, shutting down", s)
		reason = signalName(s)
	case <-ctx.Done():
	}

	cancel()
	return reason, g.Wait()
}

// pumpTicks is the timer interrupt context: each tick runs the handler to
// completion before the next is taken.
func pumpTicks(ctx context.Context, fw *firmware.Firmware, tick <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			fw.TimerTick()
		}
	}
}

func logHeartbeats(ctx context.Context, tracker *status.Tracker, heartbeat <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat:
			log.Printf("status: %s", status.FormatStatusEvent(tracker.Snapshot(), "HEARTBEAT", ""))
		}
	}
}

// resolveEdge turns the -edge flag into a concrete edge; "auto" picks the
// edge each mode was designed around.
func resolveEdge(edge string, mode logic.Mode) (gpio.Edge, error) {
	if edge != "auto" {
		return gpio.ParseEdge(edge)
	}
	if mode == logic.ModePeriod {
		return gpio.EdgeRising, nil
	}
	return gpio.EdgeFalling, nil
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}
