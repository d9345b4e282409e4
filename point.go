package main // import "github.com/tonobo/hexants-go"

import "github.com/joonazan/vec2"

// NoNeighbor marks a direction without an edge.
const NoNeighbor = -1

// Kind is what a cell holds. The values match the host's cell type codes.
type Kind int

const (
	Void Kind = iota - 1
	Empty
	Egg
	Crystal
)

// KindFromCode maps a host cell type code to a Kind. Unknown codes are empty.
func KindFromCode(code int) Kind {
	switch Kind(code) {
	case Void, Empty, Egg, Crystal:
		return Kind(code)
	}
	return Empty
}

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Egg:
		return "egg"
	case Crystal:
		return "crystal"
	}
	return "empty"
}

func (k Kind) IsResource() bool {
	return k == Egg || k == Crystal
}

// Direction2Vector holds, per neighbor slot, the vector subtracted from a
// cell position to get the neighbor position (doubled hex coordinates, y down).
// Slots are east, north-east, north-west, west, south-west, south-east.
var Direction2Vector = [6]vec2.Vector{
	{X: -2, Y: 0},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
	{X: 2, Y: 0},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

type Cell struct {
	Index     int
	Kind      Kind
	Resources int
	Neighbors [6]int
	Ants      []Ant
}

func NewCell(index int, kind Kind, resources int) *Cell {
	c := &Cell{Index: index, Kind: kind, Resources: resources}
	for i := range c.Neighbors {
		c.Neighbors[i] = NoNeighbor
	}
	return c
}

func (c *Cell) Passable() bool {
	return c.Kind != Void
}

// Update refreshes the per-turn state. A resource cell that ran dry turns empty
// for good.
func (c *Cell) Update(resources, mine, enemy int) {
	if resources == 0 && c.Kind.IsResource() {
		c.Kind = Empty
	}
	c.Resources = resources
	c.Ants = c.Ants[:0]
	for i := 0; i < mine; i++ {
		c.Ants = append(c.Ants, Ant{Owner: Mine, Cell: c.Index})
	}
	for i := 0; i < enemy; i++ {
		c.Ants = append(c.Ants, Ant{Owner: Enemy, Cell: c.Index})
	}
}

func (c *Cell) AntCount(owner Owner) int {
	n := 0
	for _, a := range c.Ants {
		if a.Owner == owner {
			n++
		}
	}
	return n
}

// Layout places every cell on a plane by walking neighbor slots. Each
// connected group starts at its lowest index and sits in its own row band
// below the previous one.
func Layout(b *Board) map[int]vec2.Vector {
	pos := make(map[int]vec2.Vector, len(b.Cells))
	band := 0.0
	for _, start := range b.Cells {
		if _, placed := pos[start.Index]; placed {
			continue
		}
		pos[start.Index] = vec2.Vector{}
		group := []int{start.Index}
		for i := 0; i < len(group); i++ {
			cur := b.Cells[group[i]]
			for dir, n := range cur.Neighbors {
				if b.Cell(n) == nil {
					continue
				}
				if _, placed := pos[n]; placed {
					continue
				}
				pos[n] = pos[cur.Index].Minus(Direction2Vector[dir])
				group = append(group, n)
			}
		}
		minY, maxY := pos[start.Index].Y, pos[start.Index].Y
		for _, idx := range group {
			if y := pos[idx].Y; y < minY {
				minY = y
			} else if y > maxY {
				maxY = y
			}
		}
		shift := vec2.Vector{X: 0, Y: minY - band}
		for _, idx := range group {
			pos[idx] = pos[idx].Minus(shift)
		}
		band += maxY - minY + 2
	}
	return pos
}
