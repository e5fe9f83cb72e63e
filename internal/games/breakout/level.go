package breakout

import (
	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
)

// BrickColors are the row colors, repeating every five rows.
var BrickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorEmerald,
	core.ColorBlue,
	core.ColorViolet,
}

// Brick is one grid cell. Its position never changes once placed and it
// goes from alive to destroyed at most once.
type Brick struct {
	Col, Row      int
	X, Y          float64
	Width, Height float64
	Alive         bool
	Color         core.Color
}

// Bounds returns the brick rectangle in field pixels.
func (b *Brick) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// BrickManager owns the brick grid.
type BrickManager struct {
	Bricks []*Brick // Column-major, in build order
	Cols   int
	Rows   int

	layout config.BrickConfig
}

// NewBrickManager creates an empty grid with the given layout.
func NewBrickManager(layout config.BrickConfig) *BrickManager {
	return &BrickManager{
		Cols:   layout.Cols,
		layout: layout,
	}
}

// Init rebuilds a full grid of Cols x rows alive bricks.
func (m *BrickManager) Init(rows int) {
	m.Rows = rows
	m.Bricks = make([]*Brick, 0, m.Cols*rows)

	for col := range m.Cols {
		for row := range rows {
			m.Bricks = append(m.Bricks, &Brick{
				Col:    col,
				Row:    row,
				X:      float64(col)*(m.layout.Width+m.layout.Padding) + m.layout.OffsetLeft,
				Y:      float64(row)*(m.layout.Height+m.layout.Padding) + m.layout.OffsetTop,
				Width:  m.layout.Width,
				Height: m.layout.Height,
				Alive:  true,
				Color:  BrickColors[row%len(BrickColors)],
			})
		}
	}
}

// CheckAllCleared reports whether every brick is destroyed.
func (m *BrickManager) CheckAllCleared() bool {
	for _, b := range m.Bricks {
		if b.Alive {
			return false
		}
	}
	return true
}

// DestroyBrick marks a brick destroyed. It reports whether the brick was
// alive, so repeated calls have no further effect.
func (m *BrickManager) DestroyBrick(b *Brick) bool {
	if b == nil || !b.Alive {
		return false
	}
	b.Alive = false
	return true
}

// CheckBallCollision returns the first alive brick in build order that
// overlaps the ball, or nil. The first match wins, not the nearest.
func (m *BrickManager) CheckBallCollision(ball *Ball) *Brick {
	for _, b := range m.Bricks {
		if b.Alive && b.Bounds().IntersectsCircle(ball.X, ball.Y, ball.Radius) {
			return b
		}
	}
	return nil
}

// AliveCount returns how many bricks remain.
func (m *BrickManager) AliveCount() int {
	n := 0
	for _, b := range m.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// BrickAt returns the brick at a grid position, or nil.
func (m *BrickManager) BrickAt(col, row int) *Brick {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return nil
	}
	return m.Bricks[col*m.Rows+row]
}
