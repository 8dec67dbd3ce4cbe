package graphing

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

var summaryTemplate = template.Must(template.New("summary").Funcs(template.FuncMap{
	"join":       func(s []string) string { return strings.Join(s, ", ") },
	"formatTime": func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
}).Parse(`
<div class="run-summary">
    <div class="run-summary-header">
        <h1>Memory Bandwidth Report</h1>
        <div class="session-id">Session: {{.SessionID}}</div>
    </div>
    <table class="summary-table">
        <tr><td>Input</td><td>{{.InputFile}}</td></tr>
        <tr><td>Mode</td><td>{{.Mode}}</td></tr>
        <tr><td>Sockets</td><td>{{join .Sockets}}</td></tr>
        <tr><td>Samples</td><td>{{.Rows}}</td></tr>
        <tr><td>Range</td><td>{{formatTime .Start}} &ndash; {{formatTime .End}}</td></tr>
    </table>
</div>
`))

const reportCSS = `
    <style>
        * {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
        }
        body {
            max-width: 1400px;
            margin: 0 auto;
            padding: 20px;
        }
        .run-summary {
            margin-bottom: 20px;
        }
        .run-summary-header {
            border-bottom: 2px solid #333;
            padding-bottom: 10px;
            margin-bottom: 15px;
        }
        .run-summary-header h1 {
            margin: 0;
            font-size: 18px;
        }
        .session-id {
            font-size: 11px;
            color: #666;
            font-family: monospace;
        }
        .summary-table {
            width: 100%;
            border-collapse: collapse;
            font-size: 12px;
            background: #f5f5f5;
            border: 1px solid #ddd;
        }
        .summary-table td {
            padding: 4px 8px;
            border-bottom: 1px solid #eee;
        }
        .summary-table td:first-child {
            width: 120px;
            color: #666;
        }
        .container {
            display: block !important;
            margin: 0 !important;
            overflow: hidden !important;
        }
        .item {
            margin: 0 !important;
        }
    </style>
`

func renderSummary(sum Summary) (string, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, sum); err != nil {
		return "", err
	}
	return buf.String(), nil
}
