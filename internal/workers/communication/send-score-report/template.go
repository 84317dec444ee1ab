// internal/workers/communication/send-score-report/template.go
package sendscorereport

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const subjectFormat = "Your AI-Readiness score for %s"

var textReport = texttemplate.Must(texttemplate.New("text").Parse(
	`Your AI-Readiness score for {{.OccupationName}} is {{printf "%.1f" .AIR}}.

Individual readiness (V^R): {{printf "%.1f" .VR}}
Market opportunity (H^R):   {{printf "%.1f" .HR}}
Synergy:                    {{printf "%.1f" .SynergyPercentage}}%
{{- if .BestPathway}}

Recommended next step: {{.BestPathway}}
{{- end}}
`))

var htmlReport = htmltemplate.Must(htmltemplate.New("html").Parse(
	`<h2>AI-Readiness score for {{.OccupationName}}: {{printf "%.1f" .AIR}}</h2>
<table>
<tr><td>Individual readiness (V<sup>R</sup>)</td><td>{{printf "%.1f" .VR}}</td></tr>
<tr><td>Market opportunity (H<sup>R</sup>)</td><td>{{printf "%.1f" .HR}}</td></tr>
<tr><td>Synergy</td><td>{{printf "%.1f" .SynergyPercentage}}%</td></tr>
</table>
{{- if .BestPathway}}
<p>Recommended next step: <strong>{{.BestPathway}}</strong></p>
{{- end}}
`))

type report struct {
	Subject string
	Text    string
	HTML    string
	SMS     string
}

func renderReport(in *Input) (*report, error) {
	var text, html bytes.Buffer
	if err := textReport.Execute(&text, in); err != nil {
		return nil, fmt.Errorf("render text report: %w", err)
	}
	if err := htmlReport.Execute(&html, in); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	return &report{
		Subject: fmt.Sprintf(subjectFormat, in.OccupationName),
		Text:    text.String(),
		HTML:    html.String(),
		SMS:     fmt.Sprintf("AI-R for %s: %.1f (V^R %.1f, H^R %.1f)", in.OccupationName, in.AIR, in.VR, in.HR),
	}, nil
}
