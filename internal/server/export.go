package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/rentdesk/internal/export"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
)

// ExportRentRecords renders the rent report in the requested format. The
// same query/status filters as the list endpoint apply; pagination does
// not, the report always covers the full filtered set.
func (s *Server) ExportRentRecords(c *gin.Context) {
	var query struct {
		Format string `form:"format,default=csv"`
		Query  string `form:"query"`
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	format := strings.ToLower(strings.TrimSpace(query.Format))
	contentType := export.ContentType(format)
	if contentType == "" {
		AbortWithError(c, export.ErrUnknownFormat)
		return
	}

	var buf bytes.Buffer
	err := s.exportsvc.Render(c.Request.Context(), format, rentdomain.ListRentRecordsRequest{
		Query:  strings.TrimSpace(query.Query),
		Status: strings.TrimSpace(query.Status),
	}, &buf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// HTML renders inline so the browser can print it; CSV and PDF download.
	if format != export.FormatHTML {
		filename := fmt.Sprintf("rent-report-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
