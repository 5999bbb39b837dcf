package serializer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
)

var serializers = make(Serializers)

type Serializers map[string]Serializer

// Serializer writes a slice of export records in one file format.
type Serializer interface {
	// Encode encodes the input into the output
	Encode(input any, output io.Writer) error

	// Extension is the file extension used for saved exports
	Extension() string

	// ContentType is sent with downloaded exports
	ContentType() string
}

// Tabular is implemented by records that can be flattened to CSV rows.
type Tabular interface {
	CSVHeader() []string
	CSVRecord() []string
}

// Register registers a serializer under a format name such as "json"
func Register(format string, serializer Serializer) {
	serializers[strings.ToLower(format)] = serializer
}

// ForFormat returns the serializer for the format or ErrUnsupportedFormat.
func ForFormat(format string) (Serializer, error) {
	if s, ok := serializers[strings.ToLower(strings.TrimSpace(format))]; ok {
		return s, nil
	}
	return nil, domain.ErrUnsupportedFormat
}

// Encode looks up the format and encodes the input with it.
func Encode(format string, input any, output io.Writer) error {
	s, err := ForFormat(format)
	if err != nil {
		return err
	}
	if err := s.Encode(input, output); err != nil {
		return fmt.Errorf("encoding %s export: %w", format, err)
	}
	return nil
}

// Formats lists registered format names.
func Formats() []string {
	formats := make([]string, 0, len(serializers))
	for f := range serializers {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
