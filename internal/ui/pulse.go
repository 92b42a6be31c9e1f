package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2/canvas"
)

// pulseMax bounds the oscillating counter; the warmth of the readout color
// tracks the counter between the two bounds.
const pulseMax = 40

// Pulse animates a subtle accent glow across the numeric readouts. It owns
// a single bounded counter that reflects at 0 and pulseMax, and touches
// nothing else.
type Pulse struct {
	labels    []*canvas.Text
	interval  time.Duration
	value     int
	direction int
	stop      chan struct{}
}

func NewPulse(labels []*canvas.Text, interval time.Duration) *Pulse {
	return &Pulse{
		labels:    labels,
		interval:  interval,
		direction: 1,
		stop:      make(chan struct{}),
	}
}

// Step advances the counter one tick and recolors the labels.
func (p *Pulse) Step() {
	p.value += p.direction
	if p.value >= pulseMax {
		p.direction = -1
	} else if p.value <= 0 {
		p.direction = 1
	}

	c := color.NRGBA{R: 255, G: 255, B: uint8(255 - p.value), A: 255}
	for _, label := range p.labels {
		label.Color = c
		label.Refresh()
	}
}

// Value returns the current counter position.
func (p *Pulse) Value() int { return p.value }

func (p *Pulse) Start() {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.Step()
			}
		}
	}()
}

func (p *Pulse) Stop() {
	close(p.stop)
}
