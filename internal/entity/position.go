package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// NewPosition creates a position at (x, y).
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Key returns the stable "x,y" encoding used in saved room mappings.
func (p Position) Key() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Offset returns the position moved by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return "(" + p.Key() + ")"
}

// ParsePositionKey decodes a key produced by Position.Key.
func ParsePositionKey(key string) (Position, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Position{}, fmt.Errorf("position key %q has no separator", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Position{}, fmt.Errorf("position key %q: bad x: %w", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Position{}, fmt.Errorf("position key %q: bad y: %w", key, err)
	}
	return Position{X: x, Y: y}, nil
}

// PositionData is the serialized form of a Position.
type PositionData struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToData converts the position to its serialized form.
func (p Position) ToData() PositionData {
	return PositionData{X: p.X, Y: p.Y}
}

// PositionFromData rebuilds a position from its serialized form.
func PositionFromData(d PositionData) Position {
	return Position{X: d.X, Y: d.Y}
}
