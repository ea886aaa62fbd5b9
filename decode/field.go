package decode

import (
	"github.com/quickviz/vegaplot"
)

var fieldTypes = []string{
	vegaplot.TypeQuantitative,
	vegaplot.TypeNominal,
	vegaplot.TypeOrdinal,
	vegaplot.TypeTemporal,
}

var aggregates = []string{
	"count",
	"valid",
	"missing",
	"distinct",
	"sum",
	"product",
	"mean",
	"average",
	"variance",
	"variancep",
	"stdev",
	"stedevp",
	"stederr",
	"median",
	"q1",
	"q3",
	"ci0",
	"ci1",
	"min",
	"max",
	"argmin",
	"argmax",
}

var timeUnits = []string{
	"year",
	"quarter",
	"month",
	"day",
	"date",
	"hours",
	"minutes",
	"seconds",
	"miliseconds",
}

// fieldParser consumes the attributes of one axis encoding. Its first token
// is always the field name.
type fieldParser struct {
	*parser
	enc *vegaplot.Encoding
}

func newFieldParser(tokens []string, enc *vegaplot.Encoding, trace TraceFunc) *fieldParser {
	p := fieldParser{
		parser: &parser{tokens: tokens, trace: trace},
		enc:    enc,
	}
	p.init = p.parseName
	p.table = map[string]command{
		"TYPE":      {arity: 1, fixed: p.parseType},
		"BIN":       {arity: 1, ranged: p.parseBin},
		"AGGREGATE": {arity: 1, ranged: p.parseAggregate},
		"TIME_UNIT": {arity: 1, fixed: p.parseTimeUnit},
	}
	return &p
}

func (p *fieldParser) parseName(i, end int) (int, error) {
	p.enc.Field = p.tokens[i]
	p.enc.Type = vegaplot.TypeQuantitative
	return i + 1, nil
}

func (p *fieldParser) parseType(tok string) error {
	if !matchValue(tok, fieldTypes, &p.enc.Type) {
		return VocabError{Command: "TYPE", Token: tok}
	}
	return nil
}

// parseBin accepts either a bare TRUE/FALSE flag or a full binning
// configuration, never both. A dangling BIN keyword must produce something.
func (p *fieldParser) parseBin(i, end int) (int, error) {
	found := matchOne(p.tokens[i], map[string]func(){
		"TRUE":  func() { p.enc.Bin = vegaplot.FlagBin(true) },
		"FALSE": func() { p.enc.Bin = vegaplot.FlagBin(false) },
	})
	if found {
		return i + 1, nil
	}
	var bin vegaplot.Bin
	sub := newBinParser(p.tokens, &bin, p.trace)
	next, err := sub.loop(i, end)
	if err != nil {
		return 0, err
	}
	if sub.parsed == 0 {
		return 0, MissingBinError{Field: p.enc.Field}
	}
	p.enc.Bin = vegaplot.SpecBin(&bin)
	return next, nil
}

func (p *fieldParser) parseAggregate(i, end int) (int, error) {
	if !matchValue(p.tokens[i], aggregates, &p.enc.Aggregate) {
		return 0, VocabError{Command: "AGGREGATE", Token: p.tokens[i]}
	}
	return i + 1, nil
}

func (p *fieldParser) parseTimeUnit(tok string) error {
	if !matchValue(tok, timeUnits, &p.enc.TimeUnit) {
		return VocabError{Command: "TIME_UNIT", Token: tok}
	}
	return nil
}
