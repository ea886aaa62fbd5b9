package vegaplot

import (
	"encoding/json"
)

const (
	TypeQuantitative = "quantitative"
	TypeNominal      = "nominal"
	TypeOrdinal      = "ordinal"
	TypeTemporal     = "temporal"
)

// Chart is the specification built by the decode package and handed to a
// renderer. Zero values mean "not set" and are omitted from the marshalled
// specification.
type Chart struct {
	Title  string
	Width  int
	Height int

	Data     *Data
	Mark     Mark
	Encoding *Encodings
	Config   *Config
}

func (c *Chart) MarshalJSON() ([]byte, error) {
	var (
		mark json.RawMessage
		err  error
	)
	if c.Mark != nil {
		mark, err = marshalMark(c.Mark)
		if err != nil {
			return nil, err
		}
	}
	spec := struct {
		Title    string          `json:"title,omitempty"`
		Width    int             `json:"width,omitempty"`
		Height   int             `json:"height,omitempty"`
		Data     *Data           `json:"data,omitempty"`
		Mark     json.RawMessage `json:"mark,omitempty"`
		Encoding *Encodings      `json:"encoding,omitempty"`
		Config   *Config         `json:"config,omitempty"`
	}{
		Title:    c.Title,
		Width:    c.Width,
		Height:   c.Height,
		Data:     c.Data,
		Mark:     mark,
		Encoding: c.Encoding,
		Config:   c.Config,
	}
	return json.Marshal(spec)
}

type Encodings struct {
	X *Encoding `json:"x,omitempty"`
	Y *Encoding `json:"y,omitempty"`
}

// Encoding maps a data field to a visual axis.
type Encoding struct {
	Field     string    `json:"field,omitempty"`
	Type      string    `json:"type,omitempty"`
	Bin       *BinValue `json:"bin,omitempty"`
	Aggregate string    `json:"aggregate,omitempty"`
	TimeUnit  string    `json:"timeUnit,omitempty"`
}

type Config struct {
	Axis *AxisConfig `json:"axis,omitempty"`
}

type AxisConfig struct {
	Grid *bool `json:"grid,omitempty"`
}

type Row = map[string]any

// Data is the opaque reference to the tabular values a chart draws from. It
// is attached to the chart before decoding begins and never modified by it.
type Data struct {
	Name   string `json:"name,omitempty"`
	Values []Row  `json:"values,omitempty"`
}
