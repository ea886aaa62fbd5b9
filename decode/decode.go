// Package decode turns a stream of whitespace-split plot command tokens into
// a vegaplot.Chart specification.
//
// The grammar is flat: a command keyword followed by its arguments, matched
// case-insensitively. Each sub-parser owns a command table mapping keywords
// to handlers and hands control back to its caller as soon as it meets a
// token outside its own vocabulary.
package decode

import (
	"github.com/quickviz/vegaplot"
)

// TraceFunc receives every token the decoder dispatches on. Used for
// debugging, never for control flow.
type TraceFunc func(name, token string)

type Option func(*options)

type options struct {
	trace TraceFunc
}

func WithTrace(fn TraceFunc) Option {
	return func(o *options) {
		o.trace = fn
	}
}

// Decode parses tokens into a chart specification. The data reference is
// attached before parsing begins and is never modified by the decoder. The
// whole stream must be consumed; leftover tokens are an error.
func Decode(tokens []string, data *vegaplot.Data, opts ...Option) (*vegaplot.Chart, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	chart := vegaplot.Chart{
		Data:     data,
		Encoding: &vegaplot.Encodings{},
	}
	p := newChartParser(tokens, &chart, o.trace)
	last, err := p.loop(0, len(tokens))
	if err != nil {
		return nil, err
	}
	if last != len(tokens) {
		return nil, TrailingError{Tokens: tokens, At: last}
	}
	return &chart, nil
}

// Handlers come in two shapes. A fixed handler consumes exactly one argument
// token; the engine advances the cursor past the command and the argument. A
// ranged handler decides itself how many tokens it consumes and returns the
// cursor where parsing resumes.
type (
	fixedFunc func(tok string) error
	rangeFunc func(i, end int) (int, error)
)

type command struct {
	arity  int
	fixed  fixedFunc
	ranged rangeFunc
}

// parser drives the dispatch loop. It knows nothing about charts: all
// mutation happens inside the handlers registered by the concrete
// sub-parsers.
type parser struct {
	tokens []string
	table  map[string]command
	init   rangeFunc
	trace  TraceFunc
}

// step dispatches on the token at i. A token absent from the table returns i
// unchanged, signalling "not my command" to the loop.
func (p *parser) step(i, end int) (int, error) {
	tok := p.tokens[i]
	p.tracef("step", tok)

	cmd, ok := p.table[canon(tok)]
	if !ok {
		return i, nil
	}
	if rest := end - (i + 1); rest < cmd.arity {
		return 0, ArityError{Command: canon(tok), Want: cmd.arity, Got: rest}
	}
	i++
	if cmd.fixed != nil {
		if err := cmd.fixed(p.tokens[i]); err != nil {
			return 0, err
		}
		return i + 1, nil
	}
	return cmd.ranged(i, end)
}

// loop runs the optional init hook, then steps until the cursor reaches end
// or stops advancing. The final cursor is returned so a caller can resume
// after the range this parser consumed.
func (p *parser) loop(i, end int) (int, error) {
	if p.init != nil {
		var err error
		if i, err = p.init(i, end); err != nil {
			return 0, err
		}
	}
	for i < end {
		next, err := p.step(i, end)
		if err != nil {
			return 0, err
		}
		if next == i {
			break
		}
		i = next
	}
	return i, nil
}

func (p *parser) tracef(name, tok string) {
	if p.trace != nil {
		p.trace(name, tok)
	}
}
