package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/smallbiznis/rentdesk/internal/payment/domain"
)

type createPaymentRequest struct {
	MemberID    string  `json:"member_id"`
	Amount      float64 `json:"amount"`
	PaymentDate *string `json:"payment_date"`
	PaymentType string  `json:"payment_type"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		AbortWithError(c, newValidationError("payment_date", "invalid_payment_date", "invalid payment_date"))
		return
	}

	resp, err := s.payments.Create(c.Request.Context(), paymentdomain.CreatePaymentRequest{
		MemberID:    strings.TrimSpace(req.MemberID),
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		PaymentType: req.PaymentType,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	var query struct {
		Query    string `form:"query"`
		Type     string `form:"type"`
		Page     int    `form:"page,default=1"`
		PageSize int    `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.payments.List(c.Request.Context(), paymentdomain.ListPaymentsRequest{
		Query:    strings.TrimSpace(query.Query),
		Type:     strings.TrimSpace(query.Type),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) PaymentSummary(c *gin.Context) {
	resp, err := s.payments.Summarize(c.Request.Context(), time.Now().UTC())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPaymentByID(c *gin.Context) {
	resp, err := s.payments.GetByID(c.Request.Context(), paymentdomain.GetPaymentRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePayment(c *gin.Context) {
	var req struct {
		MemberID    *string  `json:"member_id"`
		Amount      *float64 `json:"amount"`
		PaymentDate *string  `json:"payment_date"`
		PaymentType *string  `json:"payment_type"`
		Status      *string  `json:"status"`
		Notes       *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		AbortWithError(c, newValidationError("payment_date", "invalid_payment_date", "invalid payment_date"))
		return
	}

	resp, err := s.payments.Update(c.Request.Context(), paymentdomain.UpdatePaymentRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		MemberID:    req.MemberID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		PaymentType: req.PaymentType,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePayment(c *gin.Context) {
	err := s.payments.Delete(c.Request.Context(), paymentdomain.DeletePaymentRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
