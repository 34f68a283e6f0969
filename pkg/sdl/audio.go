package sdl

import (
	"fmt"

	"github.com/mnafees/chopper/v2/pkg/tone"
	"github.com/veandco/go-sdl2/sdl"
)

const bufferLength = 1024 // samples queued per refill

// Beeper plays a square wave tone on an SDL audio device.
type Beeper struct {
	id      sdl.AudioDeviceID
	silence uint8
	buffer  []uint8
	phase   int // sample position within the tone, carried across refills
	playing bool
}

// NewBeeper opens the default audio device. SDL audio must be initialised.
func NewBeeper() (*Beeper, error) {
	spec := &sdl.AudioSpec{
		Freq:     tone.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  bufferLength,
	}

	var actualSpec sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	b := &Beeper{
		id:      id,
		silence: actualSpec.Silence,
		buffer:  make([]uint8, bufferLength),
	}
	sdl.PauseAudioDevice(id, false)
	return b, nil
}

// SetBeep starts or stops the tone. While on, the device queue is topped up
// so that the tone plays without gaps.
func (b *Beeper) SetBeep(on bool) error {
	if !on {
		if b.playing {
			sdl.ClearQueuedAudio(b.id)
			b.playing = false
			b.phase = 0
		}
		return nil
	}

	b.playing = true
	if sdl.GetQueuedAudioSize(b.id) >= bufferLength {
		return nil
	}
	b.phase = tone.Square(b.buffer, b.phase, b.silence)
	if err := sdl.QueueAudio(b.id, b.buffer); err != nil {
		return fmt.Errorf("queueing audio: %w", err)
	}
	return nil
}

// Close stops playback and closes the device.
func (b *Beeper) Close() {
	sdl.ClearQueuedAudio(b.id)
	sdl.CloseAudioDevice(b.id)
}
