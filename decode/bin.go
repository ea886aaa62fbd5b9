package decode

import (
	"strconv"

	"github.com/quickviz/vegaplot"
)

// binParser consumes the attributes of one binning configuration. It counts
// how many attributes it actually set so the field parser can tell "no
// binning given" from "a malformed one".
type binParser struct {
	*parser
	bin    *vegaplot.Bin
	parsed int
}

func newBinParser(tokens []string, bin *vegaplot.Bin, trace TraceFunc) *binParser {
	p := binParser{
		parser: &parser{tokens: tokens, trace: trace},
		bin:    bin,
	}
	p.table = map[string]command{
		"ANCHOR":  {arity: 1, fixed: p.setFloat("ANCHOR", &p.bin.Anchor)},
		"BASE":    {arity: 1, fixed: p.setFloat("BASE", &p.bin.Base)},
		"BINNED":  {arity: 1, fixed: p.setBool(&p.bin.Binned)},
		"MAXBINS": {arity: 1, fixed: p.setFloat("MAXBINS", &p.bin.MaxBins)},
		"MINSTEP": {arity: 1, fixed: p.setFloat("MINSTEP", &p.bin.MinStep)},
		"NICE":    {arity: 1, fixed: p.setBool(&p.bin.Nice)},
		"STEP":    {arity: 1, fixed: p.setFloat("STEP", &p.bin.Step)},
	}
	return &p
}

func (p *binParser) setFloat(cmd string, dst **float64) fixedFunc {
	return func(tok string) error {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return NumberError{Command: cmd, Token: tok}
		}
		*dst = &v
		p.parsed++
		return nil
	}
}

// setBool leaves the attribute unset when the token is neither TRUE nor
// FALSE. Not an error: the parsed counter simply does not move.
func (p *binParser) setBool(dst **bool) fixedFunc {
	set := func(v bool) func() {
		return func() {
			*dst = &v
			p.parsed++
		}
	}
	return func(tok string) error {
		matchOne(tok, map[string]func(){
			"TRUE":  set(true),
			"FALSE": set(false),
		})
		return nil
	}
}
