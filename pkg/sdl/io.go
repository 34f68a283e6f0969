// Package sdl implements the SDL2 window frontend.
package sdl

import (
	"fmt"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// Colours of the background and of lit pixels
var (
	screenColor = sdl.Color{R: 134, G: 84, B: 3, A: 255}
	spriteColor = sdl.Color{R: 253, G: 195, B: 10, A: 255}
)

// IO is the input/output abstraction layer for the VM
type IO struct {
	logger  *log.Logger
	window  *sdl.Window
	surface *sdl.Surface
	beeper  *Beeper

	pixelSize int32
	keys      internal.Keypad
}

// NewIO returns a new I/O instance for the SDL frontend. Every CHIP-8 pixel
// is drawn as a square of pixelSize window pixels.
func NewIO(logger *log.Logger, pixelSize int) *IO {
	return &IO{
		logger:    logger,
		pixelSize: int32(pixelSize),
	}
}

// SetupWindow initialises SDL and opens the main window. A missing audio
// device is not fatal, the emulator then runs silent.
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*io.pixelSize, internal.ScreenHeight*io.pixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window

	io.surface, err = window.GetSurface()
	if err != nil {
		return fmt.Errorf("getting window surface: %w", err)
	}
	if err := io.Draw(internal.Framebuffer{}); err != nil {
		return err
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		io.logger.Warn("Audio not available", log.Err(err))
		return nil
	}
	io.beeper, err = NewBeeper()
	if err != nil {
		io.logger.Warn("Audio not available", log.Err(err))
	}
	return nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.beeper != nil {
		io.beeper.Close()
	}
	if io.window != nil {
		_ = io.window.Destroy()
	}
	sdl.Quit()
}

// PollEvents drains the SDL event queue and updates the keypad. It returns
// false once the window was closed or Escape was pressed.
func (io *IO) PollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			if !io.handleKey(t.Keysym.Scancode, t.GetType() == sdl.KEYDOWN) {
				return false
			}
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

func (io *IO) handleKey(code sdl.Scancode, down bool) bool {
	if code == quitScancode {
		return !down
	}
	key, ok := keymap(code)
	if !ok {
		return true
	}
	if down {
		io.keys.SetKeymask(key)
	} else {
		io.keys.UnsetKeymask(key)
	}
	return true
}

// Keys returns the keypad state.
func (io *IO) Keys() internal.KeyState {
	return &io.keys
}

// Draw renders the framebuffer to the window.
func (io *IO) Draw(fb internal.Framebuffer) error {
	background := sdl.MapRGB(io.surface.Format, screenColor.R, screenColor.G, screenColor.B)
	foreground := sdl.MapRGB(io.surface.Format, spriteColor.R, spriteColor.G, spriteColor.B)

	if err := io.surface.FillRect(nil, background); err != nil {
		return fmt.Errorf("clearing window: %w", err)
	}
	for y := int32(0); y < internal.ScreenHeight; y++ {
		for x := int32(0); x < internal.ScreenWidth; x++ {
			if !fb.Lit(int(x), int(y)) {
				continue
			}
			rect := &sdl.Rect{X: x * io.pixelSize, Y: y * io.pixelSize, W: io.pixelSize, H: io.pixelSize}
			if err := io.surface.FillRect(rect, foreground); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}
	if err := io.window.UpdateSurface(); err != nil {
		return fmt.Errorf("updating window: %w", err)
	}
	return nil
}

// SetBeep starts or stops the tone.
func (io *IO) SetBeep(on bool) {
	if io.beeper == nil {
		return
	}
	if err := io.beeper.SetBeep(on); err != nil {
		io.logger.Error("Beep failed", log.Err(err))
	}
}
