package main // import "github.com/tonobo/hexants-go"

import (
	"fmt"
	"strings"
)

// Action is one directive of the output line.
type Action string

func Wait() Action {
	return "WAIT"
}

func Line(source, target, strength int) Action {
	return Action(fmt.Sprintf("LINE %d %d %d", source, target, strength))
}

func Beacon(cell, strength int) Action {
	return Action(fmt.Sprintf("BEACON %d %d", cell, strength))
}

func Message(text string) Action {
	return Action("MESSAGE " + text)
}

type Actions []Action

// String joins the directives with ";". No directives means WAIT.
func (a Actions) String() string {
	if len(a) == 0 {
		return string(Wait())
	}
	parts := make([]string, len(a))
	for i, action := range a {
		parts[i] = string(action)
	}
	return strings.Join(parts, ";")
}
