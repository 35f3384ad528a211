// Command phodemo animates a PNG costume with the color effect cycling
// and writes the resulting frames to disk. The costume file is watched
// and reloaded live, so editing it mid-run updates the animation.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/caarlos0/env"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/academian/forkphorus/effects"
	"github.com/academian/forkphorus/events"
	"github.com/academian/forkphorus/internal/logging"
	"github.com/academian/forkphorus/player"
)

var (
	logger = logging.New("phodemo")
	config = DemoConfig{}
)

type DemoConfig struct {
	CostumePath   string        `env:"COSTUME_PATH" envDefault:"costume.png"`
	OutputDir     string        `env:"OUTPUT_DIR" envDefault:"frames"`
	FrameInterval time.Duration `env:"FRAME_INTERVAL" envDefault:"33ms"`
	FrameCount    int           `env:"FRAME_COUNT" envDefault:"120"`
	ColorStep     float64       `env:"COLOR_STEP" envDefault:"5"`
	Brightness    float64       `env:"BRIGHTNESS" envDefault:"0"`
	Ghost         float64       `env:"GHOST" envDefault:"0"`
	ScaleWidth    int           `env:"SCALE_WIDTH" envDefault:"0"`
	ScaleHeight   int           `env:"SCALE_HEIGHT" envDefault:"0"`
	RotationStyle string        `env:"ROTATION_STYLE" envDefault:"all around"`
	Direction     float64       `env:"DIRECTION" envDefault:"90"`
}

func main() {
	defer logger.Sync()

	err := env.Parse(&config)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to parse environment variables")
	}

	logger.With(zap.Any("config", config)).Info("Starting costume animation")
	logger.Info("Adjust COLOR_STEP to change how fast the hue cycles. 200 is a full cycle, so the default of 5 completes one cycle every 40 frames.")
	logger.Info("Adjust FRAME_INTERVAL and FRAME_COUNT to control pacing and length. FRAME_COUNT 0 runs until interrupted.")
	logger.Info("Set SCALE_WIDTH and SCALE_HEIGHT to resample the costume before animating.")
	logger.Info("Edit the costume file while running to see it reload live.")
	logger.Info("Press Ctrl+C to stop")

	costume, err := loadCostume(config.CostumePath)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to load costume")
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to create output directory")
	}

	sprite := &player.Sprite{
		Costume:       costume,
		Direction:     config.Direction,
		RotationStyle: player.ParseRotationStyle(config.RotationStyle),
	}
	sprite.Effects.Set("brightness", config.Brightness)
	sprite.Effects.Set("ghost", config.Ghost)

	p := player.New(sprite, player.Config{
		FrameInterval: config.FrameInterval,
		ColorStep:     config.ColorStep,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reload := watchCostume(ctx, config.CostumePath, costume.Fingerprint())

	p.OnFrame.Subscribe(func(f player.Frame) {
		// Costume swaps happen here, on the player goroutine, so the
		// sprite is never touched concurrently.
		select {
		case c := <-reload:
			sprite.Costume = c
		default:
		}

		if err := writeFrame(config.OutputDir, f); err != nil {
			logger.With(zap.Error(err), zap.Int("frame", f.Number)).Error("Failed to write frame")
		}
		if config.FrameCount > 0 && f.Number >= config.FrameCount {
			cancel()
		}
	})

	done := events.Settled(func() error {
		p.Run(ctx)
		return nil
	})

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-shutdown:
		logger.Info("Shutting down")
		cancel()
		<-done
	case <-done:
	}
	logger.With(zap.String("outputDir", config.OutputDir)).Info("Done")
}

func loadCostume(path string) (*effects.Costume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open costume: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode costume: %w", err)
	}

	costume := effects.NewCostume(img)
	if config.ScaleWidth > 0 && config.ScaleHeight > 0 {
		costume = costume.Scaled(config.ScaleWidth, config.ScaleHeight)
	}
	return costume, nil
}

// watchCostume reloads the costume whenever the file changes on disk.
// Reloaded costumes are handed to the player goroutine over the
// returned channel; writes with identical content are skipped via the
// costume fingerprint.
func watchCostume(ctx context.Context, path string, fingerprint uint64) <-chan *effects.Costume {
	reload := make(chan *effects.Costume, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.With(zap.Error(err)).Warn("Costume watching disabled")
		return reload
	}
	// Watch the directory: editors often replace the file rather than
	// writing it in place.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.With(zap.Error(err)).Warn("Costume watching disabled")
		watcher.Close()
		return reload
	}

	go func() {
		defer watcher.Close()

		lastFingerprint := fingerprint
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.With(zap.Error(err)).Warn("Costume watcher error")
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}

				costume, err := loadCostume(path)
				if err != nil {
					logger.With(zap.Error(err)).Warn("Failed to reload costume")
					continue
				}
				if costume.Fingerprint() == lastFingerprint {
					continue
				}
				lastFingerprint = costume.Fingerprint()

				// Drop a stale pending costume so the newest one wins.
				select {
				case <-reload:
				default:
				}
				reload <- costume
				logger.With(zap.String("path", path)).Info("Reloaded costume")
			}
		}
	}()

	return reload
}

func writeFrame(dir string, f player.Frame) error {
	name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", f.Number))
	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, f.Image); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}
