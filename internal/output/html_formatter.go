package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter produces the exportable document: a standalone HTML report
// with the fixed section structure Inputs & Assumptions, Calculation Detail,
// Grossed-Up Award.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"gbp": gbp,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(p *ReportPayload) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
