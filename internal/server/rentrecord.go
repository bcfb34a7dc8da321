package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
)

type createRentRecordRequest struct {
	MemberID      string  `json:"member_id"`
	MonthID       string  `json:"month_id"`
	Rent          float64 `json:"rent"`
	EBShare       float64 `json:"eb_share"`
	ExtraShare    float64 `json:"extra_share"`
	Advance       float64 `json:"advance"`
	PaymentStatus string  `json:"payment_status"`
	PaidDate      *string `json:"paid_date"`
	PaymentNote   string  `json:"payment_note"`
}

func (s *Server) CreateRentRecord(c *gin.Context) {
	var req createRentRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paidDate, err := parseOptionalDate(req.PaidDate)
	if err != nil {
		AbortWithError(c, newValidationError("paid_date", "invalid_paid_date", "invalid paid_date"))
		return
	}

	resp, err := s.records.Create(c.Request.Context(), rentdomain.CreateRentRecordRequest{
		MemberID:      strings.TrimSpace(req.MemberID),
		MonthID:       strings.TrimSpace(req.MonthID),
		Rent:          req.Rent,
		EBShare:       req.EBShare,
		ExtraShare:    req.ExtraShare,
		Advance:       req.Advance,
		PaymentStatus: req.PaymentStatus,
		PaidDate:      paidDate,
		PaymentNote:   req.PaymentNote,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type listRentRecordsQuery struct {
	Query    string `form:"query"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size"`
}

func (s *Server) ListRentRecords(c *gin.Context) {
	var query listRentRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.records.List(c.Request.Context(), rentdomain.ListRentRecordsRequest{
		Query:    strings.TrimSpace(query.Query),
		Status:   strings.TrimSpace(query.Status),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRentRecordByID(c *gin.Context) {
	resp, err := s.records.GetByID(c.Request.Context(), rentdomain.GetRentRecordRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateRentRecord(c *gin.Context) {
	var req struct {
		MemberID      *string  `json:"member_id"`
		MonthID       *string  `json:"month_id"`
		Rent          *float64 `json:"rent"`
		EBShare       *float64 `json:"eb_share"`
		ExtraShare    *float64 `json:"extra_share"`
		Advance       *float64 `json:"advance"`
		PaymentStatus *string  `json:"payment_status"`
		PaidDate      *string  `json:"paid_date"`
		PaymentNote   *string  `json:"payment_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paidDate, err := parseOptionalDate(req.PaidDate)
	if err != nil {
		AbortWithError(c, newValidationError("paid_date", "invalid_paid_date", "invalid paid_date"))
		return
	}

	resp, err := s.records.Update(c.Request.Context(), rentdomain.UpdateRentRecordRequest{
		ID:            strings.TrimSpace(c.Param("id")),
		MemberID:      req.MemberID,
		MonthID:       req.MonthID,
		Rent:          req.Rent,
		EBShare:       req.EBShare,
		ExtraShare:    req.ExtraShare,
		Advance:       req.Advance,
		PaymentStatus: req.PaymentStatus,
		PaidDate:      paidDate,
		PaymentNote:   req.PaymentNote,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteRentRecord(c *gin.Context) {
	err := s.records.Delete(c.Request.Context(), rentdomain.DeleteRentRecordRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
