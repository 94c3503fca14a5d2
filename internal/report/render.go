// Package report renders a print-ready HTML timesheet. It is a pure
// presentation transform over service.Timesheet rows; all aggregation
// happens upstream.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/mlanger/zeiterfassung/internal/service"
)

var timesheetTmpl = template.Must(template.New("timesheet").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Zeiterfassung {{.MonthLabel}}</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 2rem; color: #222; }
  h1 { font-size: 1.4rem; margin-bottom: 0; }
  .meta { color: #666; margin-bottom: 1.5rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #bbb; padding: 0.3rem 0.6rem; text-align: left; font-size: 0.85rem; }
  th { background: #eee; }
  td.empty { color: #999; }
  tr.day-total td { font-weight: bold; background: #f7f7f7; }
  .month-total { margin-top: 1rem; font-weight: bold; }
  @media print {
    body { margin: 0.5cm; }
    @page { size: A4 portrait; margin: 1.5cm; }
  }
</style>
</head>
<body>
<h1>Zeiterfassung {{.MonthLabel}}</h1>
<div class="meta">{{if .UserName}}{{.UserName}}{{else}}&nbsp;{{end}}</div>
<table>
<thead>
<tr><th>Date</th><th>Start</th><th>End</th><th>Duration</th><th>Notes</th></tr>
</thead>
<tbody>
{{range $day := .Days}}{{if $day.HasWork}}{{range $i, $row := $day.Rows}}
<tr>
  <td>{{if eq $i 0}}{{$day.Date}}{{end}}</td>
  <td>{{$row.Start}}</td>
  <td>{{$row.End}}</td>
  <td>{{$row.Duration}}</td>
  <td>{{$row.Notes}}</td>
</tr>
{{end}}<tr class="day-total">
  <td></td>
  <td colspan="3">Day total</td>
  <td>{{$day.Total}}</td>
</tr>
{{else}}
<tr>
  <td>{{$day.Date}}</td>
  <td class="empty" colspan="4">&mdash;</td>
</tr>
{{end}}{{end}}
</tbody>
</table>
<div class="month-total">Total {{.MonthLabel}}: {{.Total}}</div>
</body>
</html>
`))

// Render writes the HTML timesheet for one month.
func Render(w io.Writer, sheet *service.Timesheet) error {
	if err := timesheetTmpl.Execute(w, sheet); err != nil {
		return fmt.Errorf("rendering timesheet: %w", err)
	}
	return nil
}
