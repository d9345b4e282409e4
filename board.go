package main // import "github.com/tonobo/hexants-go"

import (
	log "github.com/sirupsen/logrus"
)

// Board is the whole game state of one match. Cells are indexed by their
// cell index, so the slice doubles as the index lookup table.
type Board struct {
	Cells []*Cell
	Bases []Base
}

func NewBoard(cells []*Cell, bases []Base) *Board {
	return &Board{Cells: cells, Bases: bases}
}

// Cell returns nil for indexes outside the board, NoNeighbor included.
func (b *Board) Cell(index int) *Cell {
	if index < 0 || index >= len(b.Cells) {
		return nil
	}
	return b.Cells[index]
}

func (b *Board) BaseCells(owner Owner) []*Cell {
	cells := []*Cell{}
	for _, base := range b.Bases {
		if base.Owner != owner {
			continue
		}
		if c := b.Cell(base.Index); c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}

func (b *Board) BaseOn(index int) (Base, bool) {
	for _, base := range b.Bases {
		if base.Index == index {
			return base, true
		}
	}
	return Base{}, false
}

// CellsOf lists the cells of a kind in index order.
func (b *Board) CellsOf(kind Kind) []*Cell {
	cells := []*Cell{}
	for _, c := range b.Cells {
		if c.Kind == kind {
			cells = append(cells, c)
		}
	}
	return cells
}

func (b *Board) TotalAnts(owner Owner) int {
	n := 0
	for _, c := range b.Cells {
		n += c.AntCount(owner)
	}
	return n
}

// Occupied lists, in index order, the cells holding at least one ant of owner.
func (b *Board) Occupied(owner Owner) []int {
	cells := []int{}
	for _, c := range b.Cells {
		for _, a := range c.Ants {
			if a.Owner == owner {
				cells = append(cells, a.Cell)
				break
			}
		}
	}
	return cells
}

func (b *Board) HasEggs() bool {
	for _, c := range b.Cells {
		if c.Kind == Egg && c.Resources > 0 {
			return true
		}
	}
	return false
}

// TargetEggs is true when eggs are left and we are behind on ants.
func (b *Board) TargetEggs() bool {
	return b.HasEggs() && b.TotalAnts(Mine) < b.TotalAnts(Enemy)
}

// Move decides the turn and returns the output line.
func (b *Board) Move(cfg Config) string {
	routes := b.Routes(cfg)
	for _, route := range routes {
		route.Print()
	}
	actions := routes.Actions()
	if len(actions) > 0 && cfg.Message != "" {
		actions = append(actions, Message(cfg.Message))
	}
	log.WithFields(log.Fields{
		"mine":    b.TotalAnts(Mine),
		"enemy":   b.TotalAnts(Enemy),
		"on":      b.Occupied(Mine),
		"routes":  len(routes),
		"actions": len(actions),
	}).Debug("move")
	return actions.String()
}
