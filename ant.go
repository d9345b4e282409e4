package main // import "github.com/tonobo/hexants-go"

type Owner int

const (
	Mine Owner = iota
	Enemy
)

// Ant only lives for one turn; the board rebuilds all of them from input.
type Ant struct {
	Owner Owner
	Cell  int
}

type Base struct {
	Owner Owner
	Index int
}
