package serializer

import (
	"encoding/json"
	"io"
)

type JSONSerializer struct{}

func (s *JSONSerializer) Encode(input any, output io.Writer) error {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return enc.Encode(input)
}

func (s *JSONSerializer) Extension() string { return "json" }

func (s *JSONSerializer) ContentType() string { return "application/json" }

func init() {
	Register("json", &JSONSerializer{})
}
