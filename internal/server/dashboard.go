package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
	paymentdomain "github.com/smallbiznis/rentdesk/internal/payment/domain"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
)

type dashboardResponse struct {
	ActiveMembers int64                 `json:"active_members"`
	LatestMonth   *monthdomain.Month    `json:"latest_month,omitempty"`
	RentBilled    float64               `json:"rent_billed"`
	RentCollected float64               `json:"rent_collected"`
	RentPending   float64               `json:"rent_pending"`
	Payments      paymentdomain.Summary `json:"payments"`
}

// GetDashboard assembles the overview cards: active headcount, the latest
// billing month, billed/collected/pending rent for that month, and the
// payment summary.
func (s *Server) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	activeMembers, err := s.members.ActiveCount(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	months, err := s.months.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := dashboardResponse{ActiveMembers: activeMembers}

	if len(months) > 0 {
		latest := months[0] // list is ordered newest first
		resp.LatestMonth = &latest

		records, err := s.records.Filtered(ctx, rentdomain.ListRentRecordsRequest{})
		if err != nil {
			AbortWithError(c, err)
			return
		}
		for _, record := range records {
			if record.MonthID != latest.ID {
				continue
			}
			resp.RentBilled += record.FinalTotal
			if record.PaymentStatus == rentdomain.StatusPaid {
				resp.RentCollected += record.FinalTotal
			} else {
				resp.RentPending += record.FinalTotal
			}
		}
	}

	summary, err := s.payments.Summarize(ctx, time.Now().UTC())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	resp.Payments = summary

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
