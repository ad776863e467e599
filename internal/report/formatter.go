package report

import (
	"encoding/json"

	"github.com/techmac/taskimport/internal/domain"
)

// OutputFormatter defines the interface for formatting import results
type OutputFormatter interface {
	Format(result domain.Result) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats import results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result domain.Result) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
