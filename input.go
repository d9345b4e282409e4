package main // import "github.com/tonobo/hexants-go"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrInvalidInput = errors.New("invalid input")

// Input reads the host protocol as a stream of whitespace separated integers.
type Input struct {
	scan *bufio.Scanner
}

func NewInput(r io.Reader) *Input {
	scan := bufio.NewScanner(r)
	scan.Split(bufio.ScanWords)
	return &Input{scan: scan}
}

// Int returns io.EOF once the stream is exhausted.
func (in *Input) Int() (int, error) {
	if !in.scan.Scan() {
		if err := in.scan.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(in.scan.Text())
	if err != nil {
		return 0, fmt.Errorf("%w, %q is not an integer", ErrInvalidInput, in.scan.Text())
	}
	return v, nil
}

func (in *Input) ints(what string, out ...*int) error {
	for _, p := range out {
		v, err := in.Int()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w, input ended while reading %s", ErrInvalidInput, what)
		}
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// ReadBoard reads the startup block: cells with their neighbors, then our
// bases followed by the opponent's.
func (in *Input) ReadBoard() (*Board, error) {
	var n int
	if err := in.ints("cell count", &n); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w, negative cell count %d", ErrInvalidInput, n)
	}
	cells := make([]*Cell, n)
	for i := range cells {
		var code, resources int
		if err := in.ints("cell", &code, &resources); err != nil {
			return nil, err
		}
		if resources < 0 {
			return nil, fmt.Errorf("%w, cell %d has negative resources", ErrInvalidInput, i)
		}
		c := NewCell(i, KindFromCode(code), resources)
		for dir := range c.Neighbors {
			if err := in.ints("neighbors", &c.Neighbors[dir]); err != nil {
				return nil, err
			}
			if nb := c.Neighbors[dir]; nb != NoNeighbor && (nb < 0 || nb >= n) {
				return nil, fmt.Errorf("%w, cell %d has neighbor %d", ErrInvalidInput, i, nb)
			}
		}
		cells[i] = c
	}

	var count int
	if err := in.ints("base count", &count); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w, negative base count %d", ErrInvalidInput, count)
	}
	bases := make([]Base, 0, 2*count)
	for _, owner := range []Owner{Mine, Enemy} {
		for i := 0; i < count; i++ {
			base := Base{Owner: owner}
			if err := in.ints("bases", &base.Index); err != nil {
				return nil, err
			}
			if base.Index < 0 || base.Index >= n {
				return nil, fmt.Errorf("%w, base on missing cell %d", ErrInvalidInput, base.Index)
			}
			bases = append(bases, base)
		}
	}
	return NewBoard(cells, bases), nil
}

// ReadTurn applies one turn of cell states to the board. It returns io.EOF
// when the host closed the stream before the turn started.
func (in *Input) ReadTurn(b *Board) error {
	if len(b.Cells) == 0 {
		// nothing to read, so nothing to play
		return io.EOF
	}
	for i, c := range b.Cells {
		var resources, mine, enemy int
		if i == 0 {
			v, err := in.Int()
			if err != nil {
				return err
			}
			resources = v
			if err := in.ints("turn", &mine, &enemy); err != nil {
				return err
			}
		} else if err := in.ints("turn", &resources, &mine, &enemy); err != nil {
			return err
		}
		if resources < 0 || mine < 0 || enemy < 0 {
			return fmt.Errorf("%w, cell %d has negative counts", ErrInvalidInput, i)
		}
		c.Update(resources, mine, enemy)
	}
	return nil
}
