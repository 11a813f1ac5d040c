package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PixPMusic/gopher-push/internal/config"
	"github.com/PixPMusic/gopher-push/internal/controls"
	"github.com/PixPMusic/gopher-push/internal/display"
	"github.com/PixPMusic/gopher-push/internal/display/usbscreen"
	"github.com/PixPMusic/gopher-push/internal/midi"
	"github.com/PixPMusic/gopher-push/internal/palette"
	"github.com/PixPMusic/gopher-push/internal/push2"
	"github.com/PixPMusic/gopher-push/internal/state"
	"github.com/dikkadev/prettyslog"
	"github.com/lucasb-eyer/go-colorful"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

func main() {
	configPath := flag.String("config", "", "Config file (default: user config dir)")
	inPort := flag.String("in", "", "MIDI input port name")
	outPort := flag.String("out", "", "MIDI output port name")
	mappingFile := flag.String("mapping", "", "YAML address map")
	verbose := flag.Bool("v", false, "Debug logging")
	listPorts := flag.Bool("list", false, "List MIDI ports and exit")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(prettyslog.NewPrettyslogHandler("push",
		prettyslog.WithLevel(level),
	))
	slog.SetDefault(logger)

	if !cfg.FirstLaunchCompleted {
		cfg.FirstLaunchCompleted = true
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save default config", "err", err)
		} else {
			logger.Info("wrote default config", "path", cfg.Path())
		}
	}

	if *inPort != "" {
		cfg.InPort = *inPort
	}
	if *outPort != "" {
		cfg.OutPort = *outPort
	}
	if *mappingFile != "" {
		cfg.MappingFile = *mappingFile
	}

	// Initialize MIDI manager
	midiManager := midi.NewManager(logger)
	defer midiManager.Close()

	if *listPorts {
		for _, p := range midiManager.ListInPorts() {
			fmt.Println("in: ", p)
		}
		for _, p := range midiManager.ListOutPorts() {
			fmt.Println("out:", p)
		}
		return
	}

	if err := run(cfg, midiManager, logger); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, m *midi.Manager, logger *slog.Logger) error {
	addrs := controls.Default()
	if cfg.MappingFile != "" {
		var err error
		addrs, err = controls.LoadFile(cfg.MappingFile)
		if err != nil {
			return err
		}
	}
	mode, err := state.ParseEncoderMode(cfg.EncoderMode)
	if err != nil {
		return err
	}

	dev, err := push2.Open(systemTransports(m), push2.Options{
		InPort:       cfg.InPort,
		OutPort:      cfg.OutPort,
		Addresses:    addrs,
		EncoderMode:  mode,
		FlushTimeout: time.Duration(cfg.FlushTimeoutMS) * time.Millisecond,
		ClearOnClose: cfg.ClearOnClose,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			logger.Warn("close", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop(ctx, dev, cfg.FrameRate, logger)
}

// systemTransports opens real MIDI ports through m and the display over USB.
func systemTransports(m *midi.Manager) push2.Transports {
	return push2.Transports{
		OpenInput: func(name string) (push2.Input, error) {
			in, err := m.OpenInput(name)
			if err != nil {
				return nil, err
			}
			return in, nil
		},
		OpenOutput: func(name string) (push2.Output, error) {
			out, err := m.OpenOutput(name)
			if err != nil {
				return nil, err
			}
			return out, nil
		},
		OpenScreen: func() (push2.Screen, error) {
			s, err := usbscreen.Open()
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

// loop lights pads while held, mirrors the track encoders on screen and
// keeps the display fed.
func loop(ctx context.Context, dev *push2.Device, fps int, logger *slog.Logger) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	screen := dev.Display()
	redraw(screen, dev.State())

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
		}

		dirty := false
		for {
			ev, ok := dev.Poll()
			if !ok {
				break
			}
			logger.Debug("event", "ev", ev.String())

			switch e := ev.(type) {
			case controls.PadPressed:
				if err := dev.SetPadColor(e.Coord, padColor(e.Coord)); err != nil {
					return err
				}
			case controls.PadReleased:
				if err := dev.SetPadColor(e.Coord, palette.Black); err != nil {
					return err
				}
			case controls.ButtonPressed:
				if err := dev.SetButtonLight(e.Name, palette.White); err != nil {
					return err
				}
			case controls.ButtonReleased:
				if err := dev.SetButtonLight(e.Name, palette.Black); err != nil {
					return err
				}
			case controls.EncoderTwisted, controls.SliderMoved:
				dirty = true
			}
		}

		if dirty {
			redraw(screen, dev.State())
		}
		if err := screen.Flush(); err != nil {
			return err
		}
	}
}

// padColor spreads hues across the columns and fades them down the rows.
func padColor(c controls.PadCoord) uint8 {
	hue := float64(c.X) * 360 / controls.GridSize
	val := 1 - float64(c.Y)/(2*controls.GridSize)
	return palette.Nearest(colorful.Hsv(hue, 1, val))
}

func redraw(screen *display.Display, st *state.Cache) {
	screen.Clear()
	for _, enc := range controls.AllEncoders() {
		i, ok := enc.TrackIndex()
		if !ok {
			continue
		}
		v := st.Encoder(enc).Value
		screen.EncoderOutline(i, display.White)
		screen.EncoderBar(i, v, display.Green)
		x := i*display.EncoderRegionWidth + display.EncoderBarPadding
		screen.DrawText(fmt.Sprintf("%s %d", enc, v), image.Pt(x, 14), display.TextOptions{Size: 12})
	}

	// Touch strip position as a bar along the bottom edge.
	w := int(st.Slider()) * display.Width / 16384
	screen.FillRect(image.Rect(0, display.Height-4, w, display.Height), display.Cyan)
}
