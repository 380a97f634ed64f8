package hostlib

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/peter-r-g/CodeItOut/script"
)

type Direction int

const (
	NoDirection Direction = iota
	Up
	Right
	Down
	Left
)

var directionNames = map[string]Direction{
	"up":    Up,
	"right": Right,
	"down":  Down,
	"left":  Left,
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "None"
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	return NoDirection
}

// ParseDirection reads a direction name, ignoring case
func ParseDirection(name string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(name)]
	if !ok {
		return NoDirection, errors.Errorf("%q is not a direction", name)
	}
	return d, nil
}

type Point struct {
	X, Y int
}

type ObjectKind int

const (
	Floor ObjectKind = iota
	Wall
	Key
	UnlockedExit
	LockedExit
)

// Placement is one object placed on the map. Color is set for keys and locked exits.
type Placement struct {
	Kind      ObjectKind
	At        Point
	Direction Direction
	Color     string
}

// MapBuilder records the map a map making script describes
type MapBuilder struct {
	Size       Point
	CellSize   Point
	Start      Point
	Placements []Placement
}

func NewMapBuilder() *MapBuilder {
	return &MapBuilder{}
}

func (b *MapBuilder) point(args []any) (Point, error) {
	x, err := whole("x", args[0])
	if err != nil {
		return Point{}, err
	}
	y, err := whole("y", args[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// cell reads a point that must lie inside the map
func (b *MapBuilder) cell(args []any) (Point, error) {
	p, err := b.point(args)
	if err != nil {
		return Point{}, err
	}
	if b.Size == (Point{}) {
		return Point{}, errors.New("SetSize must be called before placing objects")
	}
	if p.X < 0 || p.Y < 0 || p.X >= b.Size.X || p.Y >= b.Size.Y {
		return Point{}, errors.Errorf("(%d, %d) is outside the %dx%d map", p.X, p.Y, b.Size.X, b.Size.Y)
	}
	return p, nil
}

func (b *MapBuilder) setter(name string, target *Point) script.MethodSpec {
	return script.MethodSpec{
		Names:  []string{name},
		Params: params(number("x"), number("y")),
		Invoke: func(_ *script.Script, args []any) (any, error) {
			p, err := b.point(args)
			if err != nil {
				return nil, err
			}
			*target = p
			return nil, nil
		},
	}
}

// place builds a placement method. Directed objects take a direction
// after the coordinates and colored ones take a color last.
func (b *MapBuilder) place(name string, kind ObjectKind, directed, colored bool) script.MethodSpec {
	extra := []script.Param{number("x"), number("y")}
	if directed {
		extra = append(extra, text("direction"))
	}
	if colored {
		extra = append(extra, text("color"))
	}

	return script.MethodSpec{
		Names:  []string{name},
		Params: params(extra...),
		Invoke: func(_ *script.Script, args []any) (any, error) {
			p, err := b.cell(args)
			if err != nil {
				return nil, err
			}
			placement := Placement{Kind: kind, At: p}
			next := 2
			if directed {
				if placement.Direction, err = ParseDirection(args[next].(string)); err != nil {
					return nil, err
				}
				next++
			}
			if colored {
				placement.Color = args[next].(string)
			}
			b.Placements = append(b.Placements, placement)
			return nil, nil
		},
	}
}

func (b *MapBuilder) Register(s *script.Script) error {
	return register(s, []script.MethodSpec{
		b.setter("SetSize", &b.Size),
		b.setter("SetCellSize", &b.CellSize),
		b.setter("SetStartPosition", &b.Start),
		b.place("PlaceFloor", Floor, false, false),
		b.place("PlaceWall", Wall, true, false),
		b.place("PlaceKey", Key, false, true),
		b.place("PlaceUnlockedExit", UnlockedExit, true, false),
		b.place("PlaceLockedExit", LockedExit, true, true),
	})
}
