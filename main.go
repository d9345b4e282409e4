package main // import "github.com/tonobo/hexants-go"

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "YAML tuning file")
	debug      = flag.Bool("debug", false, "log decisions and the board to stderr")
)

// PrintBoard draws the board as hex rows. Bases are B (ours) and b, cells
// are # void, . empty, e egg, c crystal, upper case when our ants stand on it.
func PrintBoard(w io.Writer, b *Board) {
	pos := Layout(b)
	if len(pos) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	grid := make([][]byte, int(maxY-minY)+1)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", int(maxX-minX)+1))
	}
	for index, p := range pos {
		grid[int(p.Y-minY)][int(p.X-minX)] = cellSymbol(b, index)
	}
	for _, row := range grid {
		fmt.Fprintf(w, "%s\n", strings.TrimRight(string(row), " "))
	}
}

func cellSymbol(b *Board, index int) byte {
	if base, ok := b.BaseOn(index); ok {
		if base.Owner == Mine {
			return 'B'
		}
		return 'b'
	}
	c := b.Cells[index]
	var s byte
	switch c.Kind {
	case Void:
		return '#'
	case Egg:
		s = 'e'
	case Crystal:
		s = 'c'
	default:
		return '.'
	}
	if c.AntCount(Mine) > 0 {
		s -= 'a' - 'A'
	}
	return s
}

// play runs the game: one board, then one output line per turn until the
// host closes the stream.
func play(r io.Reader, w io.Writer, cfg Config) error {
	in := NewInput(r)
	board, err := in.ReadBoard()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"cells": len(board.Cells),
		"bases": len(board.BaseCells(Mine)),
	}).Info("board loaded")

	out := bufio.NewWriter(w)
	for turn := 1; ; turn++ {
		if err := in.ReadTurn(board); err != nil {
			if errors.Is(err, io.EOF) {
				log.Infof("input closed after %d turns", turn-1)
				return nil
			}
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if log.IsLevelEnabled(log.DebugLevel) {
			var sb strings.Builder
			PrintBoard(&sb, board)
			log.Debugf("turn %d\n%s", turn, sb.String())
		}
		fmt.Fprintln(out, board.Move(cfg))
		if err := out.Flush(); err != nil {
			return err
		}
	}
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	cfg := DefaultConfig()
	if *configPath != "" {
		c, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = c
	}
	if err := play(os.Stdin, os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}
