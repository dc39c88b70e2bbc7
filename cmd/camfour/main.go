package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/icco/camfour"
	"github.com/icco/camfour/ai"
	"github.com/icco/camfour/vision"
	"github.com/icco/gutil/logging"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var log = logging.Must(logging.NewLogger(camfour.Service))

// Options are the command line flags for a local match.
type Options struct {
	Mode   string `short:"m" long:"mode" description:"Where human moves come from" choice:"console" choice:"tui" choice:"frames" default:"console"`
	Seed   uint64 `short:"s" long:"seed" env:"CAMFOUR_SEED" description:"Seed for the opponent, 0 seeds from the clock"`
	Frames string `short:"f" long:"frames" env:"CAMFOUR_FRAMES" description:"Directory of thresholded PNG frames for frames mode"`

	Color struct {
		LowH  int `long:"low-h" default:"0" description:"Lowest hue"`
		HighH int `long:"high-h" default:"179" description:"Highest hue"`
		LowS  int `long:"low-s" default:"0" description:"Lowest saturation"`
		HighS int `long:"high-s" default:"255" description:"Highest saturation"`
		LowV  int `long:"low-v" default:"0" description:"Lowest value"`
		HighV int `long:"high-v" default:"255" description:"Highest value"`
	} `group:"Marker color"`
}

// Bounds returns the marker color flags as HSV bounds.
func (o *Options) Bounds() vision.HSVBounds {
	return vision.HSVBounds{
		LowH:  o.Color.LowH,
		HighH: o.Color.HighH,
		LowS:  o.Color.LowS,
		HighS: o.Color.HighS,
		LowV:  o.Color.LowV,
		HighV: o.Color.HighV,
	}
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &opts, os.Stdin, os.Stdout); err != nil {
		log.Errorw("match stopped", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func newEngine(seed uint64) ai.Engine {
	if seed == 0 {
		return ai.NewWeighted(nil)
	}
	return ai.NewWeighted(ai.NewSeeded(seed))
}

func run(ctx context.Context, opts *Options, in io.Reader, out io.Writer) error {
	engine := newEngine(opts.Seed)
	m := camfour.NewMatch(engine)
	m.UpdateMeta("Engine", engine.Name())
	m.UpdateMeta("Source", opts.Mode)

	switch opts.Mode {
	case "tui":
		p := tea.NewProgram(newModel(m), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		return err
	case "frames":
		if opts.Frames == "" {
			return fmt.Errorf("frames mode needs --frames")
		}
		cam, err := vision.NewDirCamera(opts.Frames, opts.Bounds())
		if err != nil {
			return err
		}
		tracker, err := vision.NewTracker(ctx, cam)
		if err != nil {
			return err
		}
		_, err = m.Play(ctx, tracker, out)
		return err
	default:
		_, err := m.Play(ctx, vision.NewConsole(in, out), out)
		return err
	}
}
