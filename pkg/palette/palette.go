// Package palette assigns stable terminal colors to free-form tag strings.
//
// Only seven colors rotate (black is reserved), so tags compete for them.
// The least recently used color is handed to each new tag, and the tag that
// held it loses its binding. Seeded tags keep fixed colors and stay out of
// the rotation entirely.
package palette

import (
	"sync"

	"github.com/dkoosis/logcolor/pkg/ansi"
)

// Rotation is the initial recency order, least recently used first.
var Rotation = [...]ansi.Color{ansi.Red, ansi.Green, ansi.Yellow, ansi.Blue, ansi.Magenta, ansi.Cyan, ansi.White}

// SeedTags returns the well-known tags bound to fixed colors.
func SeedTags() map[string]ansi.Color {
	return map[string]ansi.Color{
		"dalvikvm":        ansi.Blue,
		"Process":         ansi.Blue,
		"ActivityManager": ansi.Cyan,
		"ActivityThread":  ansi.Cyan,
	}
}

// Allocator maps tags to colors. Safe for concurrent use.
type Allocator struct {
	mu     sync.Mutex
	seeds  map[string]ansi.Color
	tags   map[string]ansi.Color
	owner  map[ansi.Color]string
	order  [len(Rotation)]ansi.Color // order[0] is least recently used
	evicts int
}

// New returns an allocator seeded with SeedTags and a fresh rotation.
func New() *Allocator {
	return NewWithSeeds(SeedTags())
}

// NewWithSeeds returns an allocator with the given fixed bindings.
func NewWithSeeds(seeds map[string]ansi.Color) *Allocator {
	a := &Allocator{
		seeds: make(map[string]ansi.Color, len(seeds)),
		tags:  make(map[string]ansi.Color),
		owner: make(map[ansi.Color]string),
		order: Rotation,
	}
	for tag, c := range seeds {
		a.seeds[tag] = c
	}
	return a
}

// Allocate returns the color for tag, assigning one if needed.
//
// A known tag has its color moved to most recently used. An unseen tag takes
// the least recently used color, evicting that color's previous holder.
func (a *Allocator) Allocate(tag string) ansi.Color {
	if c, ok := a.seeds[tag]; ok {
		return c
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.tags[tag]
	if !ok {
		c = a.order[0]
		if prev, held := a.owner[c]; held {
			delete(a.tags, prev)
			a.evicts++
		}
		a.tags[tag] = c
		a.owner[c] = tag
	}
	a.touch(c)
	return c
}

// touch moves c to the most recently used position.
func (a *Allocator) touch(c ansi.Color) {
	i := 0
	for i < len(a.order) && a.order[i] != c {
		i++
	}
	if i == len(a.order) {
		return
	}
	copy(a.order[i:], a.order[i+1:])
	a.order[len(a.order)-1] = c
}

// Order returns the current recency order, least recently used first.
func (a *Allocator) Order() []ansi.Color {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ansi.Color, len(a.order))
	copy(out, a.order[:])
	return out
}

// Evictions returns how many bindings have been displaced so far.
func (a *Allocator) Evictions() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.evicts
}
