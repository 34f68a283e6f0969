package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mnafees/chopper/v2/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags([]string{"pong.ch8"})
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Args.Program)
	assert.Equal(t, 3000, opts.Hertz)
	assert.Equal(t, options.FrontendSDL, opts.Frontend)
	assert.Equal(t, 10, opts.Scale)
	assert.False(t, opts.Trace)
	assert.False(t, opts.Debug)
	assert.False(t, opts.Quiet)
	assert.Equal(t, "", opts.Wav)
	assert.Equal(t, "", opts.MemViz)
	assert.False(t, opts.StatsView)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "hertz and frontend",
			args: []string{"--hertz", "500", "--frontend=term", "game.ch8"},
			want: options.Program{
				Flags: options.Flags{Hertz: 500, Frontend: options.FrontendTerminal, Scale: 10},
				Args:  options.Positional{Program: "game.ch8"},
			},
		},
		{
			name: "trace implies debug",
			args: []string{"--trace", "-q", "game.ch8"},
			want: options.Program{
				Flags: options.Flags{Hertz: 3000, Frontend: options.FrontendSDL, Scale: 10, Trace: true, Debug: true},
				Args:  options.Positional{Program: "game.ch8"},
			},
		},
		{
			name: "outputs",
			args: []string{"--wav", "beep.wav", "--memviz", "state.dot", "--statsview", "--scale", "4", "game.ch8"},
			want: options.Program{
				Flags:   options.Flags{Hertz: 3000, Frontend: options.FrontendSDL, Scale: 4},
				Outputs: options.Outputs{Wav: "beep.wav", StatsView: true, MemViz: "state.dot"},
				Args:    options.Positional{Program: "game.ch8"},
			},
		},
		{
			name: "quiet",
			args: []string{"-q", "game.ch8"},
			want: options.Program{
				Flags: options.Flags{Hertz: 3000, Frontend: options.FrontendSDL, Scale: 10, Quiet: true},
				Args:  options.Positional{Program: "game.ch8"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlags(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing program", []string{}, "PROGRAM"},
		{"zero hertz", []string{"--hertz", "0", "game.ch8"}, "instruction rate"},
		{"negative scale", []string{"--scale=-1", "game.ch8"}, "scale"},
		{"unknown frontend", []string{"--frontend", "gl", "game.ch8"}, "unsupported frontend"},
		{"unknown flag", []string{"--turbo", "game.ch8"}, "turbo"},
		{"extra argument", []string{"game.ch8", "other.ch8"}, "other.ch8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.ErrorContains(t, err, tt.msg)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.False(t, errors.Is(err, ErrHelp))
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		_, err := ParseFlags([]string{arg})
		assert.True(t, errors.Is(err, ErrHelp))

		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))

		var buf bytes.Buffer
		usageErr.WriteUsage(&buf)
		assert.Contains(t, buf.String(), "--hertz")
		assert.Contains(t, buf.String(), "PROGRAM")
	}
}
