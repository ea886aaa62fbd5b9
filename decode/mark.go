package decode

import (
	"strings"

	"github.com/quickviz/vegaplot"
)

// markParser selects the chart's mark kind and sets the attributes shared by
// every kind. The kind is fixed once selected: only the preamble can replace
// the mark.
type markParser struct {
	*parser
	chart *vegaplot.Chart
}

func newMarkParser(tokens []string, chart *vegaplot.Chart, trace TraceFunc) *markParser {
	p := markParser{
		parser: &parser{tokens: tokens, trace: trace},
		chart:  chart,
	}
	p.init = p.parseKind
	p.table = map[string]command{
		"COLOR": {arity: 1, fixed: p.parseColor},
	}
	return &p
}

func (p *markParser) parseKind(i, end int) (int, error) {
	found := matchOne(p.tokens[i], map[string]func(){
		"ARC":    func() { p.chart.Mark = vegaplot.NewArc() },
		"AREA":   func() { p.chart.Mark = vegaplot.NewArea() },
		"BAR":    func() { p.chart.Mark = vegaplot.NewBar() },
		"CIRCLE": func() { p.chart.Mark = vegaplot.NewCircle() },
		"LINE":   func() { p.chart.Mark = vegaplot.NewLine() },
		"POINT":  func() { p.chart.Mark = vegaplot.NewPoint() },
		"RECT":   func() { p.chart.Mark = vegaplot.NewRect() },
		"RULE":   func() { p.chart.Mark = vegaplot.NewRule() },
		"SQUARE": func() { p.chart.Mark = vegaplot.NewSquare() },
		"TICK":   func() { p.chart.Mark = vegaplot.NewTick() },
		"TRAIL":  func() { p.chart.Mark = vegaplot.NewTrail() },
	})
	if !found {
		return 0, VocabError{Command: "MARK", Token: p.tokens[i]}
	}
	return i + 1, nil
}

func (p *markParser) parseColor(tok string) error {
	if !setMarkColor(p.chart.Mark, strings.ToLower(tok)) {
		p.tracef("unregistered mark kind", tok)
	}
	return nil
}

// setMarkColor applies the one attribute every mark kind shares without the
// caller knowing which kind is active. The switch covers the whole closed
// set; the default branch only fires for a kind added without a case here,
// in which case the attribute is silently not applied.
func setMarkColor(m vegaplot.Mark, color string) bool {
	switch m := m.(type) {
	case *vegaplot.Arc:
		m.Color = color
	case *vegaplot.Area:
		m.Color = color
	case *vegaplot.Bar:
		m.Color = color
	case *vegaplot.Circle:
		m.Color = color
	case *vegaplot.Line:
		m.Color = color
	case *vegaplot.Point:
		m.Color = color
	case *vegaplot.Rect:
		m.Color = color
	case *vegaplot.Rule:
		m.Color = color
	case *vegaplot.Square:
		m.Color = color
	case *vegaplot.Tick:
		m.Color = color
	case *vegaplot.Trail:
		m.Color = color
	default:
		return false
	}
	return true
}
