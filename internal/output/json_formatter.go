package output

import (
	"github.com/goccy/go-json"
)

// JSONFormatter serializes the payload as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(p *ReportPayload) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
