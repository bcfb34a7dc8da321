package export

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/smallbiznis/rentdesk/internal/config"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	FormatCSV  = "csv"
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

var ErrUnknownFormat = errors.New("unknown_format")

// ContentType returns the MIME type for a report format, or "" when the
// format is not recognized.
func ContentType(format string) string {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return ""
	}
}

type Params struct {
	fx.In

	Log      *zap.Logger
	Records  rentdomain.Service
	Settings *config.SettingsHolder
}

// Service renders the rent report. It runs over the full filtered set, not
// the visible page, so a report covers every matching record.
type Service struct {
	log      *zap.Logger
	records  rentdomain.Service
	settings *config.SettingsHolder
}

func New(p Params) *Service {
	return &Service{
		log:      p.Log.Named("export.service"),
		records:  p.Records,
		settings: p.Settings,
	}
}

func (s *Service) Render(ctx context.Context, format string, req rentdomain.ListRentRecordsRequest, w io.Writer) error {
	records, err := s.records.Filtered(ctx, req)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch format {
	case FormatCSV:
		err = WriteCSV(w, records)
	case FormatHTML:
		err = WriteHTML(w, records, s.settings.Get().CurrencySymbol, now)
	case FormatPDF:
		err = WritePDF(w, records, now)
	default:
		return ErrUnknownFormat
	}
	if err != nil {
		return err
	}

	s.log.Info("report rendered",
		zap.String("format", format),
		zap.Int("records", len(records)),
	)
	return nil
}

var Module = fx.Module("export.service",
	fx.Provide(New),
)
