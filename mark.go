package vegaplot

import (
	"encoding/json"
)

// Mark is the visual shape of a chart. The set of kinds is closed: the
// eleven types below are the only implementations.
type Mark interface {
	Kind() string
}

type Arc struct {
	Color       string  `json:"color,omitempty"`
	InnerRadius float64 `json:"innerRadius,omitempty"`
	OuterRadius float64 `json:"outerRadius,omitempty"`
}

func NewArc() *Arc { return &Arc{} }
func (*Arc) Kind() string { return "arc" }

type Area struct {
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Line    bool    `json:"line,omitempty"`
}

func NewArea() *Area { return &Area{Opacity: 0.7} }
func (*Area) Kind() string { return "area" }

type Bar struct {
	Color        string  `json:"color,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`
}

func NewBar() *Bar { return &Bar{} }
func (*Bar) Kind() string { return "bar" }

type Circle struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

func NewCircle() *Circle { return &Circle{} }
func (*Circle) Kind() string { return "circle" }

type Line struct {
	Color       string  `json:"color,omitempty"`
	Interpolate string  `json:"interpolate,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

func NewLine() *Line { return &Line{Interpolate: "linear"} }
func (*Line) Kind() string { return "line" }

type Point struct {
	Color  string  `json:"color,omitempty"`
	Shape  string  `json:"shape,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Filled bool    `json:"filled,omitempty"`
}

func NewPoint() *Point { return &Point{Shape: "circle"} }
func (*Point) Kind() string { return "point" }

type Rect struct {
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

func NewRect() *Rect { return &Rect{} }
func (*Rect) Kind() string { return "rect" }

type Rule struct {
	Color       string  `json:"color,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

func NewRule() *Rule { return &Rule{StrokeWidth: 1} }
func (*Rule) Kind() string { return "rule" }

type Square struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

func NewSquare() *Square { return &Square{} }
func (*Square) Kind() string { return "square" }

type Tick struct {
	Color     string  `json:"color,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
}

func NewTick() *Tick { return &Tick{Thickness: 1} }
func (*Tick) Kind() string { return "tick" }

type Trail struct {
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

func NewTrail() *Trail { return &Trail{} }
func (*Trail) Kind() string { return "trail" }

// marshalMark writes a mark as its Vega-Lite form, the shape payload next to
// a "type" discriminator. The switch covers every kind.
func marshalMark(m Mark) ([]byte, error) {
	switch m := m.(type) {
	case *Arc:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Arc
		}{m.Kind(), m})
	case *Area:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Area
		}{m.Kind(), m})
	case *Bar:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Bar
		}{m.Kind(), m})
	case *Circle:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Circle
		}{m.Kind(), m})
	case *Line:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Line
		}{m.Kind(), m})
	case *Point:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Point
		}{m.Kind(), m})
	case *Rect:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Rect
		}{m.Kind(), m})
	case *Rule:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Rule
		}{m.Kind(), m})
	case *Square:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Square
		}{m.Kind(), m})
	case *Tick:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Tick
		}{m.Kind(), m})
	case *Trail:
		return json.Marshal(struct {
			Type string `json:"type"`
			*Trail
		}{m.Kind(), m})
	default:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{m.Kind()})
	}
}
