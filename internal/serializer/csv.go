package serializer

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
)

type CSVSerializer struct{}

// Encode writes a header row and one row per element. The input must be a
// slice whose elements implement Tabular.
func (s *CSVSerializer) Encode(input any, output io.Writer) error {
	v := reflect.ValueOf(input)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("csv export expects a slice, got %T", input)
	}

	w := csv.NewWriter(output)
	var header []string
	for i := 0; i < v.Len(); i++ {
		row, ok := v.Index(i).Interface().(Tabular)
		if !ok {
			return fmt.Errorf("csv export: %T is not tabular", v.Index(i).Interface())
		}
		if header == nil {
			header = row.CSVHeader()
			if err := w.Write(header); err != nil {
				return err
			}
		}
		if err := w.Write(row.CSVRecord()); err != nil {
			return err
		}
	}
	if header == nil {
		if t, ok := reflect.Zero(v.Type().Elem()).Interface().(Tabular); ok {
			if err := w.Write(t.CSVHeader()); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

func (s *CSVSerializer) Extension() string { return "csv" }

func (s *CSVSerializer) ContentType() string { return "text/csv" }

func init() {
	Register("csv", &CSVSerializer{})
}
