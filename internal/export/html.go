package export

import (
	"html/template"
	"io"
	"time"

	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
)

const reportHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .report-card {
      background: #ffffff;
      max-width: 900px;
      margin: 0 auto;
      padding: 48px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    h1 { margin: 0 0 6px; font-size: 22px; }
    .generated {
      color: #8792a2;
      font-size: 12px;
      margin-bottom: 32px;
    }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.3px;
      color: #8792a2;
      border-bottom: 2px solid #e3e8ee;
      padding: 8px 10px;
    }
    td { padding: 10px; border-bottom: 1px solid #e3e8ee; }
    .num { text-align: right; }
    .status { text-transform: capitalize; }
    tfoot td { font-weight: 600; border-bottom: none; }
    @media print {
      body { background: #ffffff; padding: 0; }
      .report-card { box-shadow: none; padding: 0; max-width: none; }
    }
  </style>
</head>
<body>
  <div class="report-card">
    <h1>{{.Title}}</h1>
    <div class="generated">Generated {{.GeneratedAt}}</div>
    <table>
      <thead>
        <tr>
          <th>Member</th>
          <th>Month</th>
          <th class="num">Rent</th>
          <th class="num">EB Share</th>
          <th class="num">Extra</th>
          <th class="num">Advance</th>
          <th class="num">Total</th>
          <th>Status</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.Member}}</td>
          <td>{{.Month}}</td>
          <td class="num">{{.Rent}}</td>
          <td class="num">{{.EBShare}}</td>
          <td class="num">{{.Extra}}</td>
          <td class="num">{{.Advance}}</td>
          <td class="num">{{.Total}}</td>
          <td class="status">{{.Status}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr>
          <td colspan="6">Grand total</td>
          <td class="num">{{.GrandTotal}}</td>
          <td></td>
        </tr>
      </tfoot>
    </table>
  </div>
</body>
</html>`

var reportTemplate = template.Must(template.New("rent-report").Parse(reportHTMLTemplate))

type reportRow struct {
	Member  string
	Month   string
	Rent    string
	EBShare string
	Extra   string
	Advance string
	Total   string
	Status  string
}

type reportInput struct {
	Title       string
	GeneratedAt string
	Rows        []reportRow
	GrandTotal  string
}

// WriteHTML renders the rent report as a self-contained printable page.
// Amounts carry the configured currency symbol and thousands separators.
func WriteHTML(w io.Writer, records []rentdomain.RentRecordView, symbol string, now time.Time) error {
	input := reportInput{
		Title:       "Rent Report",
		GeneratedAt: now.Format("2 January 2006 15:04"),
		Rows:        make([]reportRow, 0, len(records)),
	}

	var grandTotal float64
	for _, record := range records {
		grandTotal += record.FinalTotal
		input.Rows = append(input.Rows, reportRow{
			Member:  record.MemberName,
			Month:   record.MonthLabel,
			Rent:    formatMoney(symbol, record.Rent),
			EBShare: formatMoney(symbol, record.EBShare),
			Extra:   formatMoney(symbol, record.ExtraShare),
			Advance: formatMoney(symbol, record.Advance),
			Total:   formatMoney(symbol, record.FinalTotal),
			Status:  record.PaymentStatus,
		})
	}
	input.GrandTotal = formatMoney(symbol, grandTotal)

	return reportTemplate.Execute(w, input)
}
