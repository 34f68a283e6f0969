// Package wavwriter records the beeper output to a WAV file. Audio is
// written as it is recorded, the file header is finalised on Close.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/pkg/tone"
)

const (
	bitDepth        = 8
	channels        = 1
	pcmFormat       = 1
	samplesPerFrame = tone.SampleRate / internal.TimerFrequency
)

// WavWriter writes one timer tick of audio per Record call.
type WavWriter struct {
	file    *os.File
	enc     *wav.Encoder
	samples []uint8
	buffer  *audio.IntBuffer
	phase   int
	err     error // first write error, reported by Close
}

// New creates the WAV file.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("wavwriter: %w", err)
	}

	return &WavWriter{
		file:    f,
		enc:     wav.NewEncoder(f, tone.SampleRate, bitDepth, channels, pcmFormat),
		samples: make([]uint8, samplesPerFrame),
		buffer: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: tone.SampleRate},
			Data:           make([]int, samplesPerFrame),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Record appends 1/60 s of either the tone or silence.
func (ww *WavWriter) Record(beeping bool) {
	if ww.err != nil {
		return
	}

	if beeping {
		ww.phase = tone.Square(ww.samples, ww.phase, tone.Silence)
	} else {
		ww.phase = 0
		for i := range ww.samples {
			ww.samples[i] = tone.Silence
		}
	}
	for i, s := range ww.samples {
		ww.buffer.Data[i] = int(s)
	}

	if err := ww.enc.Write(ww.buffer); err != nil {
		ww.err = fmt.Errorf("wavwriter: %w", err)
	}
}

// Close finalises the WAV header and closes the file.
func (ww *WavWriter) Close() error {
	err := ww.err
	if cerr := ww.enc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("wavwriter: %w", cerr)
	}
	if cerr := ww.file.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("wavwriter: %w", cerr)
	}
	return err
}
