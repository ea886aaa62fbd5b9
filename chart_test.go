package vegaplot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartMarshal(t *testing.T) {
	grid := false
	chart := Chart{
		Title:  "report",
		Width:  400,
		Height: 300,
		Mark:   &Bar{Color: "red"},
		Encoding: &Encodings{
			X: &Encoding{Field: "sales", Type: TypeQuantitative},
		},
		Config: &Config{
			Axis: &AxisConfig{Grid: &grid},
		},
	}
	got, err := json.Marshal(&chart)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": "report",
		"width": 400,
		"height": 300,
		"mark": {"type": "bar", "color": "red"},
		"encoding": {"x": {"field": "sales", "type": "quantitative"}},
		"config": {"axis": {"grid": false}}
	}`, string(got))
}

func TestChartMarshalEmpty(t *testing.T) {
	var chart Chart
	got, err := json.Marshal(&chart)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestMarkMarshalKinds(t *testing.T) {
	marks := []Mark{
		NewArc(), NewArea(), NewBar(), NewCircle(), NewLine(), NewPoint(),
		NewRect(), NewRule(), NewSquare(), NewTick(), NewTrail(),
	}
	for _, m := range marks {
		chart := Chart{Mark: m}
		got, err := json.Marshal(&chart)
		require.NoError(t, err)

		var spec struct {
			Mark map[string]any `json:"mark"`
		}
		require.NoError(t, json.Unmarshal(got, &spec))
		assert.Equal(t, m.Kind(), spec.Mark["type"])
	}
}

func TestBinValueMarshal(t *testing.T) {
	got, err := json.Marshal(FlagBin(true))
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))

	var (
		anchor = 0.0
		step   = 5.0
	)
	got, err = json.Marshal(SpecBin(&Bin{Anchor: &anchor, Step: &step}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"anchor": 0, "step": 5}`, string(got))
}

func TestEncodingMarshalBinFlag(t *testing.T) {
	enc := Encoding{
		Field: "age",
		Type:  TypeQuantitative,
		Bin:   FlagBin(true),
	}
	got, err := json.Marshal(&enc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"field": "age", "type": "quantitative", "bin": true}`, string(got))
}

func TestDataMarshal(t *testing.T) {
	data := Data{
		Values: []Row{
			{"region": "north", "sales": 12.5},
			{"region": "south", "sales": 9.0},
		},
	}
	got, err := json.Marshal(&data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"values": [
		{"region": "north", "sales": 12.5},
		{"region": "south", "sales": 9}
	]}`, string(got))
}
