package vegaplot

import (
	"encoding/json"
)

// Bin holds the parameters controlling how continuous values are grouped
// into buckets. Every attribute is optional.
type Bin struct {
	Anchor  *float64 `json:"anchor,omitempty"`
	Base    *float64 `json:"base,omitempty"`
	Binned  *bool    `json:"binned,omitempty"`
	MaxBins *float64 `json:"maxbins,omitempty"`
	MinStep *float64 `json:"minstep,omitempty"`
	Nice    *bool    `json:"nice,omitempty"`
	Step    *float64 `json:"step,omitempty"`
}

// BinValue is either a bare boolean flag or a full binning configuration,
// never both.
type BinValue struct {
	Flag *bool
	Bin  *Bin
}

func FlagBin(flag bool) *BinValue {
	return &BinValue{
		Flag: &flag,
	}
}

func SpecBin(bin *Bin) *BinValue {
	return &BinValue{
		Bin: bin,
	}
}

func (b *BinValue) MarshalJSON() ([]byte, error) {
	if b.Flag != nil {
		return json.Marshal(*b.Flag)
	}
	return json.Marshal(b.Bin)
}
