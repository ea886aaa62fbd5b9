package decode

import (
	"strconv"

	"github.com/quickviz/vegaplot"
)

// chartParser handles the top-level plot commands and owns the chart being
// built. Axis and mark attributes are delegated to transient sub-parsers,
// one per consumed token range.
type chartParser struct {
	*parser
	chart *vegaplot.Chart
}

func newChartParser(tokens []string, chart *vegaplot.Chart, trace TraceFunc) *chartParser {
	p := chartParser{
		parser: &parser{tokens: tokens, trace: trace},
		chart:  chart,
	}
	p.init = p.parseInit
	p.table = map[string]command{
		"WIDTH":   {arity: 1, fixed: p.parseWidth},
		"HEIGHT":  {arity: 1, fixed: p.parseHeight},
		"X_FIELD": {arity: 1, ranged: p.parseXField},
		"Y_FIELD": {arity: 1, ranged: p.parseYField},
		"MARK":    {arity: 1, ranged: p.parseMark},
		"GRID":    {arity: 1, fixed: p.parseGrid},
		"TITLE":   {arity: 1, fixed: p.parseTitle},
	}
	return &p
}

// parseInit consumes nothing: it only installs the default display
// configuration, grid enabled.
func (p *chartParser) parseInit(i, end int) (int, error) {
	grid := true
	p.chart.Config = &vegaplot.Config{
		Axis: &vegaplot.AxisConfig{Grid: &grid},
	}
	return i, nil
}

func (p *chartParser) parseWidth(tok string) error {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return NumberError{Command: "WIDTH", Token: tok}
	}
	p.chart.Width = v
	return nil
}

func (p *chartParser) parseHeight(tok string) error {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return NumberError{Command: "HEIGHT", Token: tok}
	}
	p.chart.Height = v
	return nil
}

func (p *chartParser) parseXField(i, end int) (int, error) {
	if p.chart.Encoding == nil {
		p.chart.Encoding = &vegaplot.Encodings{}
	}
	p.chart.Encoding.X = &vegaplot.Encoding{}
	sub := newFieldParser(p.tokens, p.chart.Encoding.X, p.trace)
	return sub.loop(i, end)
}

func (p *chartParser) parseYField(i, end int) (int, error) {
	if p.chart.Encoding == nil {
		p.chart.Encoding = &vegaplot.Encodings{}
	}
	p.chart.Encoding.Y = &vegaplot.Encoding{}
	sub := newFieldParser(p.tokens, p.chart.Encoding.Y, p.trace)
	return sub.loop(i, end)
}

func (p *chartParser) parseMark(i, end int) (int, error) {
	sub := newMarkParser(p.tokens, p.chart, p.trace)
	return sub.loop(i, end)
}

func (p *chartParser) parseGrid(tok string) error {
	found := matchOne(tok, map[string]func(){
		"TRUE":  func() { *p.chart.Config.Axis.Grid = true },
		"FALSE": func() { *p.chart.Config.Axis.Grid = false },
	})
	if !found {
		return VocabError{Command: "GRID", Token: tok}
	}
	return nil
}

func (p *chartParser) parseTitle(tok string) error {
	p.chart.Title = tok
	return nil
}
