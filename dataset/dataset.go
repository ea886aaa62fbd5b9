// Package dataset builds the data reference a chart draws from. Values can
// be materialized from a SQL result set or from a CSV stream; the decode
// package only ever sees the finished vegaplot.Data.
package dataset

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/midbel/slices"

	"github.com/quickviz/vegaplot"
)

// FromRows drains a SQL result set into chart data. Byte slice cells are
// stored as strings, everything else as the driver gave it.
func FromRows(rows *sql.Rows) (*vegaplot.Data, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var data vegaplot.Data
	for rows.Next() {
		var (
			values = make([]any, len(cols))
			ptrs   = make([]any, len(cols))
		)
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(vegaplot.Row, len(cols))
		for i, c := range cols {
			row[c] = normalize(values[i])
		}
		data.Values = append(data.Values, row)
	}
	return &data, rows.Err()
}

// FromCSV reads records whose first row names the columns. Cells that parse
// as numbers become float64, everything else stays a string.
func FromCSV(r io.Reader) (*vegaplot.Data, error) {
	rs := csv.NewReader(r)
	records, err := rs.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	var (
		cols = slices.Fst(records)
		data vegaplot.Data
	)
	for _, rec := range slices.Rest(records) {
		row := make(vegaplot.Row, len(cols))
		for i, c := range cols {
			if i >= len(rec) {
				break
			}
			row[c] = cell(rec[i])
		}
		data.Values = append(data.Values, row)
	}
	return &data, nil
}

func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func cell(str string) any {
	if v, err := strconv.ParseFloat(str, 64); err == nil {
		return v
	}
	return str
}
