package io

import (
	"fmt"
	"strings"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/errors"
)

// Toggle flips side Edge of cell (Q, R).
type Toggle struct {
	Q    int `json:"q" toml:"q" yaml:"q"`
	R    int `json:"r" toml:"r" yaml:"r"`
	Edge int `json:"edge" toml:"edge" yaml:"edge"`
}

func (t Toggle) String() string { return fmt.Sprintf("(%d,%d):%d", t.Q, t.R, t.Edge) }

// Script is an ordered list of toggles on a board of the given size.
type Script struct {
	Name    string   `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Width   int      `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`
	Height  int      `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"`
	Toggles []Toggle `json:"toggles" toml:"toggles" yaml:"toggles"`
}

// Size returns the board dimensions, defaulting unset ones to
// [grid.DefaultSize].
func (s *Script) Size() (width, height int) {
	width, height = s.Width, s.Height
	if width == 0 {
		width = grid.DefaultSize
	}
	if height == 0 {
		height = grid.DefaultSize
	}
	return width, height
}

// Validate checks the board size and every direction.
func (s *Script) Validate() error {
	if err := errors.ValidateGridSize(s.Size()); err != nil {
		return err
	}
	for i, t := range s.Toggles {
		if err := errors.ValidateDirection(t.Edge); err != nil {
			return fmt.Errorf("toggle %d %s: %w", i, t, err)
		}
	}
	return nil
}

// Apply toggles every entry on g and returns how many took effect. Off-board
// toggles are skipped and reported in one OUT_OF_BOUNDS error after the rest
// have been applied. A bad direction fails before g is touched.
func (s *Script) Apply(g *grid.Grid) (int, error) {
	for i, t := range s.Toggles {
		if err := errors.ValidateDirection(t.Edge); err != nil {
			return 0, fmt.Errorf("toggle %d %s: %w", i, t, err)
		}
	}

	applied := 0
	var missed []string
	for _, t := range s.Toggles {
		if g.Toggle(hex.Axial{Q: t.Q, R: t.R}, hex.Direction(t.Edge)) {
			applied++
			continue
		}
		missed = append(missed, t.String())
	}
	if len(missed) > 0 {
		return applied, errors.New(errors.ErrCodeOutOfBounds, "toggles off the board: %s", strings.Join(missed, ", "))
	}
	return applied, nil
}

// Grid builds a fresh board of the script's size and applies the script.
func (s *Script) Grid() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := grid.New(s.Size())
	if _, err := s.Apply(g); err != nil {
		return nil, err
	}
	return g, nil
}

// FromGrid returns a script that rebuilds g from an empty board, one toggle
// per connected side in q, r, side order.
func FromGrid(name string, g *grid.Grid) *Script {
	b := g.Bounds()
	s := &Script{Name: name, Width: b.Width(), Height: b.Height(), Toggles: []Toggle{}}
	for _, ref := range g.Connected() {
		s.Toggles = append(s.Toggles, Toggle{Q: ref.Cell.Q, R: ref.Cell.R, Edge: int(ref.Owned)})
	}
	return s
}

// Reference returns the track used throughout the documentation: a single
// line with a junction in cell (0,0), open at cells (0,-1) and (0,2).
func Reference() *Script {
	return &Script{
		Name:   "reference",
		Width:  grid.DefaultSize,
		Height: grid.DefaultSize,
		Toggles: []Toggle{
			{Q: 0, R: 1, Edge: 1},
			{Q: 0, R: 0, Edge: 2},
			{Q: 2, R: -1, Edge: 0},
			{Q: 2, R: 0, Edge: 1},
			{Q: 1, R: 1, Edge: 0},
			{Q: 1, R: 1, Edge: 2},
			{Q: 0, R: 0, Edge: 1},
			{Q: 0, R: 2, Edge: 1},
			{Q: 0, R: 2, Edge: 2},
		},
	}
}
