package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickviz/vegaplot"
)

func TestMarkKinds(t *testing.T) {
	kinds := map[string]string{
		"ARC":    "arc",
		"AREA":   "area",
		"BAR":    "bar",
		"CIRCLE": "circle",
		"LINE":   "line",
		"POINT":  "point",
		"RECT":   "rect",
		"RULE":   "rule",
		"SQUARE": "square",
		"TICK":   "tick",
		"TRAIL":  "trail",
	}
	for tok, kind := range kinds {
		spec, err := Decode([]string{"MARK", tok, "COLOR", "BLUE"}, nil)
		require.NoError(t, err, "mark %s", tok)
		require.NotNil(t, spec.Mark)
		assert.Equal(t, kind, spec.Mark.Kind())
		assert.True(t, setMarkColor(spec.Mark, "blue"))
	}
}

func TestMarkColorPerKind(t *testing.T) {
	spec, err := Decode([]string{"MARK", "LINE", "COLOR", "BLUE"}, nil)
	require.NoError(t, err)
	mark, ok := spec.Mark.(*vegaplot.Line)
	require.True(t, ok)
	assert.Equal(t, "blue", mark.Color)

	// constructing another kind is unaffected
	assert.Empty(t, vegaplot.NewBar().Color)
}

func TestMarkInvalidKind(t *testing.T) {
	_, err := Decode([]string{"MARK", "SPLINE"}, nil)
	var verr VocabError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "MARK", verr.Command)
	assert.Equal(t, "SPLINE", verr.Token)
}

func TestMarkColorLowerCased(t *testing.T) {
	spec, err := Decode([]string{"MARK", "POINT", "COLOR", "SteelBlue"}, nil)
	require.NoError(t, err)
	mark, ok := spec.Mark.(*vegaplot.Point)
	require.True(t, ok)
	assert.Equal(t, "steelblue", mark.Color)
}

func TestSetMarkColor(t *testing.T) {
	marks := []vegaplot.Mark{
		vegaplot.NewArc(),
		vegaplot.NewArea(),
		vegaplot.NewBar(),
		vegaplot.NewCircle(),
		vegaplot.NewLine(),
		vegaplot.NewPoint(),
		vegaplot.NewRect(),
		vegaplot.NewRule(),
		vegaplot.NewSquare(),
		vegaplot.NewTick(),
		vegaplot.NewTrail(),
	}
	for _, m := range marks {
		require.True(t, setMarkColor(m, "green"), "kind %s", m.Kind())
	}
}
