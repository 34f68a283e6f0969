// Package runner drives a CHIP-8 VM: it paces the instruction cycle, runs
// the 60 Hz timers on their own goroutine and connects the VM to a frontend.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/log"
)

// maxLag is how far the instruction loop may fall behind its schedule
// before it stops trying to catch up.
const maxLag = 100 * time.Millisecond

// Frontend displays the framebuffer, plays the beep and provides the keypad.
// All methods are called from the goroutine that called Run.
type Frontend interface {
	// PollEvents processes pending input and returns false when the user
	// asked to quit.
	PollEvents() bool
	Keys() internal.KeyState
	Draw(fb internal.Framebuffer) error
	SetBeep(on bool)
}

// Recorder receives the beeper state once per timer tick.
type Recorder interface {
	Record(beeping bool)
	Close() error
}

// Config controls the runner.
type Config struct {
	Hertz int  // instructions per second
	Trace bool // log every executed instruction
}

// Option configures optional runner behaviour.
type Option func(*Runner)

// WithRecorder attaches a recorder that is fed from the timer goroutine and
// closed when Run returns.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// Runner executes a VM against a frontend.
type Runner struct {
	logger   *log.Logger
	cfg      Config
	frontend Frontend
	recorder Recorder

	mu sync.Mutex // guards vm
	vm *internal.C8VM

	instructions int
}

// New returns a runner for the VM.
func New(logger *log.Logger, vm *internal.C8VM, frontend Frontend, cfg Config, opts ...Option) *Runner {
	r := &Runner{
		logger:   logger,
		cfg:      cfg,
		frontend: frontend,
		vm:       vm,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes instructions until the context is cancelled, the frontend
// reports a quit or an instruction fails. Only instruction failures are
// returned as errors.
func (r *Runner) Run(ctx context.Context) error {
	if r.cfg.Hertz <= 0 {
		return fmt.Errorf("invalid instruction rate %d", r.cfg.Hertz)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.runTimers(ctx)
	}()

	r.logger.Info("Starting emulation", log.Int("hertz", r.cfg.Hertz))
	err := r.runInstructions(ctx)
	cancel()
	wg.Wait()
	r.frontend.SetBeep(false)

	if r.recorder != nil {
		if cerr := r.recorder.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing recorder: %w", cerr))
		}
	}
	r.logger.Info("Emulation stopped", log.Int("instructions", r.instructions))
	return err
}

func (r *Runner) runInstructions(ctx context.Context) error {
	period := time.Second / time.Duration(r.cfg.Hertz)
	next := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !r.frontend.PollEvents() {
			r.logger.Info("Quit requested")
			return nil
		}

		res, err := r.step()
		if err != nil {
			return err
		}
		if res.draw {
			if err := r.frontend.Draw(res.pixels); err != nil {
				return fmt.Errorf("drawing frame: %w", err)
			}
		}
		r.frontend.SetBeep(res.beep)

		next = next.Add(period)
		wait := time.Until(next)
		switch {
		case wait > 0:
			time.Sleep(wait)
		case wait < -maxLag:
			next = time.Now()
		}
	}
}

type stepResult struct {
	draw   bool
	beep   bool
	pixels internal.Framebuffer
}

// step runs a single VM tick under the lock.
func (r *Runner) step() (stepResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, waiting := r.vm.AwaitingKey()
	pc := r.vm.PC()
	if err := r.vm.Tick(r.frontend.Keys()); err != nil {
		return stepResult{}, err
	}

	if !waiting {
		r.instructions++
		if r.cfg.Trace {
			word := r.vm.LastOpcode()
			r.logger.Debug("Executed",
				log.Hex("pc", pc),
				log.Hex("opcode", word),
				log.String("instruction", internal.Disassemble(word)))
		}
	}

	res := stepResult{
		draw: r.vm.IsDrawFlagSet(),
		beep: r.vm.ShouldBeep(),
	}
	if res.draw {
		res.pixels = r.vm.Pixels()
	}
	return res, nil
}

// runTimers decrements the VM timers at 60 Hz until ctx is done.
func (r *Runner) runTimers(ctx context.Context) {
	ticker := time.NewTicker(time.Second / internal.TimerFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		r.mu.Lock()
		r.vm.TickTimers()
		beeping := r.vm.ShouldBeep()
		r.mu.Unlock()

		if r.recorder != nil {
			r.recorder.Record(beeping)
		}
	}
}

// Snapshot returns the VM register state, taken under the lock.
func (r *Runner) Snapshot() internal.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vm.Snapshot()
}
