// Package tone generates the beeper waveform shared by the audio device
// and the WAV recorder.
package tone

// Waveform parameters of the beeper
const (
	SampleRate = 44100
	Hertz      = 220
	Volume     = 0.25

	// Silence is the zero level of unsigned 8-bit audio.
	Silence = 128
)

// Square fills buf with unsigned 8-bit samples of the square wave centred
// on silence, starting at phase. It returns the phase following the last
// sample.
func Square(buf []uint8, phase int, silence uint8) int {
	amplitude := uint8(Volume * 128)
	for i := range buf {
		// high for the first half of each period
		if (phase*Hertz*2/SampleRate)%2 == 0 {
			buf[i] = silence + amplitude
		} else {
			buf[i] = silence - amplitude
		}
		phase++
		if phase == SampleRate {
			phase = 0
		}
	}
	return phase
}
