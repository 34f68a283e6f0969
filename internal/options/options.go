// Package options contains the program options.
package options

// Frontend names accepted by --frontend.
const (
	FrontendSDL      = "sdl"
	FrontendTerminal = "term"
)

// Positional contains positional arguments.
type Positional struct {
	Program string `positional-arg-name:"PROGRAM" description:"CHIP-8 program image to run" required:"yes"`
}

// Flags contains behavior options.
type Flags struct {
	Hertz    int    `long:"hertz" description:"instructions executed per second" default:"3000"`
	Frontend string `long:"frontend" description:"display and input frontend: sdl, term" default:"sdl"`
	Scale    int    `long:"scale" description:"size of a CHIP-8 pixel in the SDL window" default:"10"`
	Trace    bool   `long:"trace" description:"log every executed instruction, implies --debug"`
	Debug    bool   `short:"d" long:"debug" description:"enable debug logging"`
	Quiet    bool   `short:"q" long:"quiet" description:"only log errors"`
}

// Outputs contains optional diagnostic outputs.
type Outputs struct {
	Wav       string `long:"wav" value-name:"FILE" description:"record the beeper to a WAV file"`
	StatsView bool   `long:"statsview" description:"serve runtime statistics on localhost:12600"`
	MemViz    string `long:"memviz" value-name:"FILE" description:"write a Graphviz dump of the final machine state"`
}

// Program options of the emulator.
type Program struct {
	Flags
	Outputs

	Args Positional `positional-args:"yes"`
}
