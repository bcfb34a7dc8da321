package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
)

// Numeric inputs default to zero when absent; the dashboard submits only
// the readings the operator filled in.
type createMonthRequest struct {
	MonthName string  `json:"month_name"`
	Year      int     `json:"year"`
	EBPrev    float64 `json:"eb_prev"`
	EBCurr    float64 `json:"eb_curr"`
	UnitRate  float64 `json:"unit_rate"`
	Water     float64 `json:"water"`
	Gas       float64 `json:"gas"`
	Internet  float64 `json:"internet"`
	Misc      float64 `json:"misc"`
	TotalRent float64 `json:"total_rent"`
}

func (s *Server) CreateMonth(c *gin.Context) {
	var req createMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.months.Create(c.Request.Context(), monthdomain.CreateMonthRequest{
		MonthName: strings.TrimSpace(req.MonthName),
		Year:      req.Year,
		EBPrev:    req.EBPrev,
		EBCurr:    req.EBCurr,
		UnitRate:  req.UnitRate,
		Water:     req.Water,
		Gas:       req.Gas,
		Internet:  req.Internet,
		Misc:      req.Misc,
		TotalRent: req.TotalRent,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMonths(c *gin.Context) {
	resp, err := s.months.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMonthByID(c *gin.Context) {
	resp, err := s.months.GetByID(c.Request.Context(), monthdomain.GetMonthRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMonth(c *gin.Context) {
	var req struct {
		MonthName *string  `json:"month_name"`
		Year      *int     `json:"year"`
		EBPrev    *float64 `json:"eb_prev"`
		EBCurr    *float64 `json:"eb_curr"`
		UnitRate  *float64 `json:"unit_rate"`
		Water     *float64 `json:"water"`
		Gas       *float64 `json:"gas"`
		Internet  *float64 `json:"internet"`
		Misc      *float64 `json:"misc"`
		TotalRent *float64 `json:"total_rent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.months.Update(c.Request.Context(), monthdomain.UpdateMonthRequest{
		ID:        strings.TrimSpace(c.Param("id")),
		MonthName: req.MonthName,
		Year:      req.Year,
		EBPrev:    req.EBPrev,
		EBCurr:    req.EBCurr,
		UnitRate:  req.UnitRate,
		Water:     req.Water,
		Gas:       req.Gas,
		Internet:  req.Internet,
		Misc:      req.Misc,
		TotalRent: req.TotalRent,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMonth(c *gin.Context) {
	err := s.months.Delete(c.Request.Context(), monthdomain.DeleteMonthRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
