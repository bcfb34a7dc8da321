package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
)

type memberPayload struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	RoomNo   *string `json:"room_no"`
	Avatar   *string `json:"avatar"`
	Status   *string `json:"status"`
	JoinDate *string `json:"join_date"`
}

func (s *Server) CreateMember(c *gin.Context) {
	var req memberPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	joinDate, err := parseOptionalDate(req.JoinDate)
	if err != nil {
		AbortWithError(c, newValidationError("join_date", "invalid_join_date", "invalid join_date"))
		return
	}

	resp, err := s.members.Create(c.Request.Context(), memberdomain.CreateMemberRequest{
		Name:     strings.TrimSpace(req.Name),
		Phone:    stringValue(req.Phone),
		Email:    stringValue(req.Email),
		RoomNo:   stringValue(req.RoomNo),
		Avatar:   stringValue(req.Avatar),
		Status:   stringValue(req.Status),
		JoinDate: joinDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMembers(c *gin.Context) {
	var query struct {
		Status string `form:"status"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.members.List(c.Request.Context(), memberdomain.ListMemberRequest{
		Status: strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMemberByID(c *gin.Context) {
	resp, err := s.members.GetByID(c.Request.Context(), memberdomain.GetMemberRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateMember(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email"`
		RoomNo   *string `json:"room_no"`
		Avatar   *string `json:"avatar"`
		Status   *string `json:"status"`
		JoinDate *string `json:"join_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	joinDate, err := parseOptionalDate(req.JoinDate)
	if err != nil {
		AbortWithError(c, newValidationError("join_date", "invalid_join_date", "invalid join_date"))
		return
	}

	resp, err := s.members.Update(c.Request.Context(), memberdomain.UpdateMemberRequest{
		ID:       strings.TrimSpace(c.Param("id")),
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		RoomNo:   req.RoomNo,
		Avatar:   req.Avatar,
		Status:   req.Status,
		JoinDate: joinDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteMember(c *gin.Context) {
	err := s.members.Delete(c.Request.Context(), memberdomain.DeleteMemberRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
