// Package player steps a sprite's animation frame by frame: it advances
// the graphic-effect state, renders the costume and publishes each
// completed frame to subscribers.
package player

import (
	"context"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/academian/forkphorus/events"
	"github.com/academian/forkphorus/internal/logging"
)

var logger = logging.New("player")

// Frame describes one completed player step.
type Frame struct {
	Number  int
	Image   *image.NRGBA
	Elapsed time.Duration
}

// Config tunes the player loop.
type Config struct {
	// FrameInterval is the target time between frames.
	FrameInterval time.Duration
	// ColorStep is added to the sprite's color effect every frame.
	// 200 is a full hue cycle, so a step of 5 completes one every
	// 40 frames.
	ColorStep float64
}

// Player drives one sprite. All stepping happens on the goroutine that
// calls Run (or Step); only OnFrame subscriptions made before Run are
// safe.
type Player struct {
	sprite   *Sprite
	interval time.Duration
	step     float64
	frames   int

	// OnFrame is notified synchronously after every step, in
	// subscription order.
	OnFrame events.Slot[Frame]
}

// New returns a player for sprite. A zero FrameInterval runs flat out.
func New(sprite *Sprite, cfg Config) *Player {
	return &Player{
		sprite:   sprite,
		interval: cfg.FrameInterval,
		step:     cfg.ColorStep,
	}
}

// Sprite returns the sprite the player is driving.
func (p *Player) Sprite() *Sprite {
	return p.sprite
}

// Step advances the animation one frame and notifies OnFrame listeners.
func (p *Player) Step() Frame {
	start := time.Now()
	p.sprite.Effects.Change("color", p.step)
	img := p.sprite.Render()

	p.frames++
	f := Frame{
		Number:  p.frames,
		Image:   img,
		Elapsed: time.Since(start),
	}
	p.OnFrame.Emit(f)
	return f
}

// Run steps the sprite until ctx is cancelled, pacing frames to the
// configured interval and warning (at most every 10s) when rendering
// cannot keep up.
func (p *Player) Run(ctx context.Context) {
	var lastWarning time.Time
	for {
		select {
		case <-ctx.Done():
			return
		default:
			start := time.Now()
			p.Step()
			elapsed := time.Since(start)

			if elapsed > p.interval {
				if p.interval > 0 && time.Since(lastWarning) > 10*time.Second {
					logger.With(
						zap.Stringer("frameDuration", elapsed),
						zap.Stringer("frameInterval", p.interval)).
						Warn("Cannot keep up with frame interval. Consider a smaller costume or a longer FRAME_INTERVAL.")
					lastWarning = time.Now()
				}
			} else {
				time.Sleep(p.interval - elapsed)
			}
		}
	}
}
