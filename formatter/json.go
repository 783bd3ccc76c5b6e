package formatter

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Output formats
const (
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatText = "text"
)

// ResponseBuilder serializes plan responses.
type ResponseBuilder struct {
	indent bool
}

// NewResponseBuilder creates a builder. With indent set JSON output is
// pretty-printed.
func NewResponseBuilder(indent bool) *ResponseBuilder {
	return &ResponseBuilder{indent: indent}
}

// BuildJSON serializes a plan response to JSON
func (rb *ResponseBuilder) BuildJSON(res *PlanResponse) ([]byte, error) {
	if rb.indent {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}

// Write serializes res in format to w.
func (rb *ResponseBuilder) Write(w io.Writer, format string, res *PlanResponse) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		b, err := rb.BuildJSON(res)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case FormatXML:
		_, err := w.Write(rb.BuildXML(res))
		return err
	case FormatText, "":
		return rb.WriteText(w, res)
	default:
		return &UnsupportedFormatError{Format: format}
	}
}

// UnsupportedFormatError reports an unknown output format.
type UnsupportedFormatError struct{ Format string }

func (e *UnsupportedFormatError) Error() string {
	return "formatter: unsupported format " + strconv.Quote(e.Format)
}
