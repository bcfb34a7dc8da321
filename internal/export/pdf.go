package export

import (
	"io"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
)

// WritePDF renders the rent report as a PDF with the same columns as the
// CSV export. Amounts use plain grouping without the currency symbol; the
// standard PDF fonts have no rupee glyph.
func WritePDF(w io.Writer, records []rentdomain.RentRecordView, now time.Time) error {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Rent Report", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Generated "+now.Format("2 January 2006 15:04"), props.Text{
			Size:  9,
			Align: align.Left,
		}),
	)

	m.AddRow(10,
		text.NewCol(3, "Member", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Month", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Rent", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "EB Share", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Extra", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Advance", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Status", props.Text{Style: fontstyle.Bold, Size: 9}),
	)

	var grandTotal float64
	for _, record := range records {
		grandTotal += record.FinalTotal
		m.AddRow(8,
			text.NewCol(3, record.MemberName, props.Text{Size: 9}),
			text.NewCol(2, record.MonthLabel, props.Text{Size: 9}),
			text.NewCol(1, formatAmount(record.Rent), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, formatAmount(record.EBShare), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, formatAmount(record.ExtraShare), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, formatAmount(record.Advance), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, formatAmount(record.FinalTotal), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, record.PaymentStatus, props.Text{Size: 9}),
		)
	}

	m.AddRow(10,
		col.New(7),
		text.NewCol(3, "Grand total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, formatAmount(grandTotal), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return err
	}

	_, err = w.Write(doc.GetBytes())
	return err
}
