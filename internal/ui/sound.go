package ui

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const chimeAsset = "assets/reset.wav"

// Chime plays a short confirmation sound after a reset. Loading is
// best-effort: a missing or undecodable asset leaves the chime silent
// instead of failing startup.
type Chime struct {
	buffer *beep.Buffer
}

func NewChime(enabled bool) *Chime {
	c := &Chime{}
	if !enabled {
		return c
	}

	f, err := os.Open(chimeAsset)
	if err != nil {
		return c
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return c
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return c
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	c.buffer = buffer
	return c
}

func (c *Chime) Play() {
	if c.buffer == nil {
		return
	}
	speaker.Play(c.buffer.Streamer(0, c.buffer.Len()))
}
