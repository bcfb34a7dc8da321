package export

import (
	"encoding/csv"
	"io"

	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
)

// csvHeader is the fixed column set of the rent report. Order matters:
// downstream spreadsheets key on these positions.
var csvHeader = []string{"Member", "Month", "Rent", "EB Share", "Extra", "Advance", "Total", "Status"}

// WriteCSV streams the rent report as RFC 4180 CSV. Fields containing
// commas or quotes come out properly escaped.
func WriteCSV(w io.Writer, records []rentdomain.RentRecordView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, record := range records {
		row := []string{
			record.MemberName,
			record.MonthLabel,
			formatNumber(record.Rent),
			formatNumber(record.EBShare),
			formatNumber(record.ExtraShare),
			formatNumber(record.Advance),
			formatNumber(record.FinalTotal),
			record.PaymentStatus,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
