package main // import "github.com/tonobo/hexants-go"

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

type Route struct {
	From     *Cell
	To       *Cell
	Distance int
	Strength int
}

type Routes []*Route

func (p Routes) Len() int           { return len(p) }
func (p Routes) Less(i, j int) bool { return p[i].Distance < p[j].Distance }
func (p Routes) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func (r *Route) Print() {
	log.WithFields(log.Fields{
		"from":     r.From.Index,
		"to":       r.To.Index,
		"kind":     r.To.Kind,
		"distance": r.Distance,
		"strength": r.Strength,
	}).Debug("route")
}

// Actions turns routes into LINE directives, in route order.
func (p Routes) Actions() Actions {
	actions := make(Actions, 0, len(p))
	for _, r := range p {
		actions = append(actions, Line(r.From.Index, r.To.Index, r.Strength))
	}
	return actions
}

// DistanceField holds hop counts from one source cell to every cell.
type DistanceField struct {
	hops    []int
	reached []bool
}

// To reports the hop count to index, ok is false when it cannot be reached.
func (f *DistanceField) To(index int) (int, bool) {
	if index < 0 || index >= len(f.reached) || !f.reached[index] {
		return 0, false
	}
	return f.hops[index], true
}

// Field floods the board breadth first from one cell. Void cells are never
// entered; a void source only reaches itself.
func (b *Board) Field(from int) *DistanceField {
	f := &DistanceField{
		hops:    make([]int, len(b.Cells)),
		reached: make([]bool, len(b.Cells)),
	}
	b.walk(from, func(index, hops int) bool {
		f.reached[index] = true
		f.hops[index] = hops
		return false
	})
	return f
}

// Distance is the least number of hops from one cell to another.
func (b *Board) Distance(from, to int) (int, bool) {
	distance, found := 0, false
	b.walk(from, func(index, hops int) bool {
		if index == to {
			distance, found = hops, true
		}
		return found
	})
	return distance, found
}

// walk visits cells in breadth first order, each once, until visit returns true.
func (b *Board) walk(from int, visit func(index, hops int) bool) {
	src := b.Cell(from)
	if src == nil {
		return
	}
	if visit(from, 0) || !src.Passable() {
		return
	}
	hops := make(map[int]int, len(b.Cells))
	hops[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.Cells[cur].Neighbors {
			next := b.Cell(n)
			if next == nil || !next.Passable() {
				continue
			}
			if _, seen := hops[n]; seen {
				continue
			}
			hops[n] = hops[cur] + 1
			if visit(n, hops[n]) {
				return
			}
			queue = append(queue, n)
		}
	}
}

// Routes picks this turn's targets. Every reachable (base, candidate) pair is
// ranked by distance, candidates outer and bases inner so equal distances keep
// that order. The closest crystal pairs are taken first, then the closest egg
// pair when eggs are targeted. The same target may be picked once per base.
func (b *Board) Routes(cfg Config) Routes {
	targetEggs := b.TargetEggs()
	candidates := b.CellsOf(Crystal)
	if targetEggs {
		candidates = append(candidates, b.CellsOf(Egg)...)
	}
	bases := b.BaseCells(Mine)
	fields := make([]*DistanceField, len(bases))
	for i, base := range bases {
		fields[i] = b.Field(base.Index)
	}

	ranked := Routes{}
	for _, target := range candidates {
		for i, base := range bases {
			distance, ok := fields[i].To(target.Index)
			if !ok {
				continue
			}
			ranked = append(ranked, &Route{From: base, To: target, Distance: distance})
		}
	}
	sort.Stable(ranked)
	log.WithFields(log.Fields{
		"eggs":       targetEggs,
		"candidates": len(candidates),
		"reachable":  len(ranked),
	}).Debug("ranked targets")

	take := cfg.TargetCount
	if targetEggs {
		take--
	}
	r := Routes{}
	for _, route := range ranked {
		if len(r) >= take {
			break
		}
		if route.To.Kind == Crystal {
			route.Strength = cfg.CrystalStrength
			r = append(r, route)
		}
	}
	if targetEggs {
		for _, route := range ranked {
			if route.To.Kind == Egg {
				route.Strength = cfg.EggStrength
				r = append(r, route)
				break
			}
		}
	}
	return r
}
