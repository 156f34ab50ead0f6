package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// ErrUnsupportedFormat is returned for format names no formatter answers to.
var ErrUnsupportedFormat = eris.New("unsupported report format")

// Formatter renders a report payload to bytes. Implementations must be pure:
// deterministic formatting, no side effects.
type Formatter interface {
	Format(p *ReportPayload) ([]byte, error)
	// Name returns the canonical format identifier.
	Name() string
}

var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":   "console",
	"txt":    "console",
	"report": "html",
	"doc":    "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// Format renders the payload with the named formatter.
func Format(p *ReportPayload, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, eris.Wrapf(ErrUnsupportedFormat, "%q (try one of: %s)", format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return f.Format(p)
}

// WriteFormatted runs a formatter and writes the output to a timestamped
// file, returning the filename.
func WriteFormatted(f Formatter, p *ReportPayload) (string, error) {
	data, err := f.Format(p)
	if err != nil {
		return "", err
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	filename := fmt.Sprintf("pension_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
