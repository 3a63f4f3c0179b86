package countdown

import (
	"context"
	"log/slog"
	"time"

	"github.com/harveysanders/picooled/console"
	"github.com/harveysanders/picooled/display"
)

// Screen positions of the counter's text.
const (
	promptX, promptY = 10, 5
	statusX, statusY = 20, 5
)

// Prompt is shown at startup until the first A press.
const Prompt = "Press A to start"

// Device is the counter: it owns the edge detector, the countdown and the
// presenter. Only Edges may be shared with the interrupt context; every other
// method belongs to the main loop.
type Device struct {
	cfg       Config
	edges     *EdgeDetector
	countdown *Countdown
	presenter display.Presenter
	logger    *slog.Logger

	// Preallocated so renders don't grow the heap.
	buf     []byte
	dropped uint32
}

// NewDevice returns an Idle counter rendering on p.
func NewDevice(cfg Config, p display.Presenter, logger *slog.Logger) *Device {
	cfg = cfg.withDefaults()
	return &Device{
		cfg:       cfg,
		edges:     NewEdgeDetector(cfg.Debounce, cfg.Scope),
		countdown: NewCountdown(cfg.Start, cfg.TickInterval),
		presenter: p,
		logger:    console.OrDiscard(logger),
		buf:       make([]byte, 0, 20),
	}
}

// Edges returns the restricted handle for the interrupt context.
func (d *Device) Edges() EdgeSink { return d.edges }

// Config returns the effective configuration.
func (d *Device) Config() Config { return d.cfg }

// Snapshot returns the countdown state.
func (d *Device) Snapshot() Snapshot { return d.countdown.Snapshot() }

// Dropped returns the number of frames that failed to present.
func (d *Device) Dropped() uint32 { return d.dropped }

// Greet shows the startup prompt.
func (d *Device) Greet() {
	d.render(display.Text(promptX, promptY, Prompt))
}

// Step runs one loop iteration at now: consume an A press, consume a B
// press, then advance the countdown. It renders only when state changed.
func (d *Device) Step(now time.Duration) {
	if d.edges.ConsumeA() {
		d.countdown.Start(now)
		d.edges.SetRunning(true)
		d.logger.Info("counter:start", slog.Int("value", d.cfg.Start))
		d.renderStatus()
	}

	if d.edges.ConsumeB() {
		if d.countdown.Click() {
			d.logger.Debug("counter:click", slog.Int("clicks", d.countdown.clicks))
			d.renderStatus()
		} else {
			// Latched just before the countdown finished.
			d.logger.Debug("counter:click-dropped")
		}
	}

	switch d.countdown.Advance(now) {
	case Decremented:
		d.renderStatus()
	case Finished:
		d.edges.SetRunning(false)
		d.logger.Info("counter:zero",
			slog.Int("clicks", d.countdown.clicks),
			slog.Uint64("rejected", uint64(d.edges.Rejected())),
		)
		d.renderStatus()
	}
}

// Run calls Step every Pause until ctx is done. On the board ctx is never
// cancelled and Run does not return.
func (d *Device) Run(ctx context.Context, clock Clock) error {
	ticker := time.NewTicker(d.cfg.Pause)
	defer ticker.Stop()
	return d.loop(ctx, clock, ticker.C)
}

func (d *Device) loop(ctx context.Context, clock Clock, tick <-chan time.Time) error {
	d.logger.Info("counter:running",
		slog.Duration("debounce", d.cfg.Debounce),
		slog.String("scope", d.cfg.Scope.String()),
		slog.Duration("pause", d.cfg.Pause),
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			d.Step(clock())
		}
	}
}

func (d *Device) renderStatus() {
	d.buf = d.countdown.AppendStatus(d.buf[:0])
	d.render(display.Text(statusX, statusY, string(d.buf)))
}

// render draws msg. The display is not needed for counting, so a failed
// flush is logged and the frame dropped.
func (d *Device) render(msg display.Message) {
	if err := display.Render(d.presenter, msg); err != nil {
		d.dropped++
		d.logger.Warn("counter:present-failed", slog.String("err", err.Error()))
	}
}
