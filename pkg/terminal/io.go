// Package terminal implements a text mode frontend on top of termbox.
package terminal

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrogolib/log"
)

// keyHold is how long a key counts as pressed after its last key event.
// Terminals only report presses, auto repeat keeps a held key alive.
const keyHold = 100 * time.Millisecond

const cellsPerPixel = 2

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8
//
//	1 2 3 4     1 2 3 C
//	Q W E R  -> 4 5 6 D
//	A S D F     7 8 9 E
//	Z X C V     A 0 B F
var runeKeys = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

func keymap(ch rune) (uint8, bool) {
	key, ok := runeKeys[unicode.ToLower(ch)]
	return key, ok
}

// IO is the terminal frontend.
type IO struct {
	logger *log.Logger
	events chan termbox.Event
	done   chan struct{}
	exited chan struct{}
	bell   io.Writer
	now    func() time.Time

	poll      func() termbox.Event
	interrupt func()

	keys      internal.Keypad
	lastPress [16]time.Time
	beeping   bool
}

// NewIO returns a new terminal frontend.
func NewIO(logger *log.Logger) *IO {
	return &IO{
		logger: logger,
		events: make(chan termbox.Event, 16),
		done:   make(chan struct{}),
		bell:   os.Stdout,
		now:    time.Now,

		poll:      termbox.PollEvent,
		interrupt: termbox.Interrupt,
	}
}

// Setup takes over the terminal and starts reading input events.
func (io *IO) Setup() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)

	width, height := termbox.Size()
	if width < internal.ScreenWidth*cellsPerPixel || height < internal.ScreenHeight {
		io.logger.Warn("Terminal is smaller than the display, output is clipped",
			log.Int("columns", width), log.Int("rows", height))
	}

	io.startEvents()
	return nil
}

func (io *IO) startEvents() {
	io.exited = make(chan struct{})
	go io.readEvents()
}

// readEvents only returns on an interrupt event. Interrupt blocks until
// PollEvent receives it, so the reader has to keep polling until then.
func (io *IO) readEvents() {
	defer close(io.exited)
	for {
		ev := io.poll()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case io.events <- ev:
		case <-io.done:
		}
	}
}

// stopEvents interrupts the reader and waits until it is no longer inside
// PollEvent.
func (io *IO) stopEvents() {
	close(io.done)
	if io.exited == nil {
		return
	}
	io.interrupt()
	<-io.exited
}

// Close restores the terminal.
func (io *IO) Close() {
	io.stopEvents()
	termbox.Close()
}

// PollEvents processes pending key events and releases keys that were not
// repeated within keyHold. It returns false on Escape or Ctrl-C.
func (io *IO) PollEvents() bool {
	now := io.now()
	for drained := false; !drained; {
		select {
		case ev := <-io.events:
			if !io.handleEvent(ev, now) {
				return false
			}
		default:
			drained = true
		}
	}
	io.releaseKeys(now)
	return true
}

func (io *IO) handleEvent(ev termbox.Event, now time.Time) bool {
	switch ev.Type {
	case termbox.EventKey:
		if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
			return false
		}
		if key, ok := keymap(ev.Ch); ok {
			io.keys.SetKeymask(key)
			io.lastPress[key] = now
		}
	case termbox.EventError:
		io.logger.Error("Terminal input failed", log.Err(ev.Err))
	}
	return true
}

func (io *IO) releaseKeys(now time.Time) {
	for key := uint8(0); key <= 0xF; key++ {
		if io.keys.IsPressed(key) && now.Sub(io.lastPress[key]) >= keyHold {
			io.keys.UnsetKeymask(key)
		}
	}
}

// Keys returns the keypad state.
func (io *IO) Keys() internal.KeyState {
	return &io.keys
}

// Draw renders the framebuffer, each pixel two cells wide.
func (io *IO) Draw(fb internal.Framebuffer) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("clearing terminal: %w", err)
	}
	for y := 0; y < internal.ScreenHeight; y++ {
		for x := 0; x < internal.ScreenWidth; x++ {
			if !fb.Lit(x, y) {
				continue
			}
			for c := 0; c < cellsPerPixel; c++ {
				termbox.SetCell(x*cellsPerPixel+c, y, ' ', termbox.ColorDefault, termbox.ColorWhite)
			}
		}
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// SetBeep rings the terminal bell when the tone starts.
func (io *IO) SetBeep(on bool) {
	if on && !io.beeping {
		if _, err := io.bell.Write([]byte{'\a'}); err != nil {
			io.logger.Error("Ringing bell failed", log.Err(err))
		}
	}
	io.beeping = on
}
