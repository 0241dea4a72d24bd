package report

import (
	"bytes"
	"context"
	"html/template"
	"os"

	"github.com/haziqachik/pcdiag/internal/errors"
)

// HTMLSink renders the payload as a self-contained HTML report file.
type HTMLSink struct {
	path string
	tmpl *template.Template
}

func NewHTMLSink(path string) (*HTMLSink, error) {
	errFactory := errors.New()

	if path == "" {
		return nil, errFactory.WithMessage(ErrInvalidOutput, "empty HTML output path")
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrInitFailed, err)
	}

	return &HTMLSink{path: path, tmpl: tmpl}, nil
}

func (s *HTMLSink) Write(ctx context.Context, p *Payload) error {
	errFactory := errors.New()

	if p == nil {
		return errFactory.New(ErrNilPayload)
	}
	if err := ctx.Err(); err != nil {
		return errFactory.Wrap(errors.ErrTimeout, err)
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, p); err != nil {
		return errFactory.Wrap(ErrEncodeFailed, err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PC Diagnostic Report</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #222; }
h1, h2 { color: #0b5394; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.sev-critical { color: #b00020; font-weight: bold; }
.sev-high { color: #d2691e; font-weight: bold; }
.warning { background: #fdecea; border-left: 4px solid #b00020; padding: 0.6rem 1rem; }
.over { color: #888; }
</style>
</head>
<body>
<h1>PC Diagnostic Report</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} &middot; use case: {{.Params.UseCase}} &middot; budget: ${{.Params.BudgetUSD}}</p>

<h2>Performance Scores</h2>
<table>
<tr><th>Gaming</th><th>Recording</th><th>Multitasking</th><th>GPU Tier</th></tr>
<tr>
<td>{{printf "%.0f" .Classification.Scores.Gaming}}</td>
<td>{{printf "%.0f" .Classification.Scores.Recording}}</td>
<td>{{printf "%.0f" .Classification.Scores.Multitasking}}</td>
<td>{{.Classification.GPUTier}}</td>
</tr>
</table>

<h2>Bottlenecks</h2>
{{if .Classification.Bottlenecks}}
<table>
<tr><th>Component</th><th>Severity</th><th>Issue</th><th>Current</th><th>Recommendation</th></tr>
{{range .Classification.Bottlenecks}}
<tr>
<td>{{.Component}}</td>
<td class="sev-{{.Severity}}">{{.Severity}}</td>
<td>{{.Issue}}</td>
<td>{{.CurrentSpec}}</td>
<td>{{.Recommendation}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No bottlenecks detected.</p>
{{end}}

<h2>Upgrade Recommendations</h2>
{{range .Recommendations}}
<h3>{{.Category}} &mdash; priority {{.Priority}}</h3>
{{if .CriticalWarning}}<p class="warning">{{.CriticalWarning}}</p>{{end}}
<p>{{.Reason}}</p>
{{if .Options}}
<table>
<tr><th>Option</th><th>Est. Cost</th><th>Budget</th><th>Notes</th></tr>
{{range .Options}}
<tr{{if eq .BudgetStatus "over_budget"}} class="over"{{end}}>
<td>{{.Label}}</td>
<td>${{.EstimatedCostUSD}}</td>
<td>{{.BudgetStatus}}</td>
<td>{{.Notes}}</td>
</tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`
