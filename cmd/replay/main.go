package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icco/camfour"
	"github.com/icco/camfour/ai"
	"github.com/icco/camfour/vision"
	"github.com/icco/gutil/logging"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var log = logging.Must(logging.NewLogger(camfour.Service))

var opts struct {
	Filename flags.Filename `short:"f" long:"filename" description:"Move file to replay, one row,col per line" required:"true"`
	Seed     uint64         `short:"s" long:"seed" env:"CAMFOUR_SEED" default:"1" description:"Seed for the weighted opponent"`
	Engine   string         `short:"e" long:"engine" description:"Opponent to replay against" choice:"weighted" choice:"stub" default:"weighted"`
	JSON     bool           `long:"json" description:"Print the final snapshot as JSON"`
}

func main() {
	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	file, err := os.ReadFile(string(opts.Filename))
	if err != nil {
		log.Fatalw("could not read move file", "file", opts.Filename, zap.Error(err))
	}

	moves, err := ParseMoves(file)
	if err != nil {
		log.Fatalw("could not parse move file", "file", opts.Filename, zap.Error(err))
	}

	m, err := replay(context.Background(), moves, engine(opts.Engine, opts.Seed), os.Stdout)
	if err != nil {
		log.Errorw("replay stopped early", "file", opts.Filename, "turn", m.Turn(), zap.Error(err))
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m.Snapshot()); err != nil {
			log.Fatalw("could not encode snapshot", zap.Error(err))
		}
	}

	log.Infow("replay finished", "match", m.ID, "outcome", m.Outcome().String(), "turn", m.Turn())
}

func engine(name string, seed uint64) ai.Engine {
	if name == "stub" {
		return &ai.StubEngine{}
	}
	return ai.NewWeighted(ai.NewSeeded(seed))
}

// ParseMoves reads one human coordinate per line. Blank lines and lines
// starting with # are skipped.
func ParseMoves(data []byte) ([][2]int, error) {
	var moves [][2]int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		row, col, err := camfour.ParseCoordinate(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		moves = append(moves, [2]int{row, col})
	}

	return moves, scanner.Err()
}

// replay plays moves against e and returns the match, finished or not.
func replay(ctx context.Context, moves [][2]int, e ai.Engine, out io.Writer) (*camfour.Match, error) {
	m := camfour.NewMatch(e)
	m.UpdateMeta("Engine", e.Name())
	m.UpdateMeta("Source", "replay")

	_, err := m.Play(ctx, &vision.Script{Moves: moves}, out)
	return m, err
}
