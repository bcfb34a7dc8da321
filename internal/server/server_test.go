package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	authdomain "github.com/smallbiznis/rentdesk/internal/auth/domain"
	authrepo "github.com/smallbiznis/rentdesk/internal/auth/repository"
	authservice "github.com/smallbiznis/rentdesk/internal/auth/service"
	authsession "github.com/smallbiznis/rentdesk/internal/auth/session"
	"github.com/smallbiznis/rentdesk/internal/config"
	"github.com/smallbiznis/rentdesk/internal/export"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	memberrepo "github.com/smallbiznis/rentdesk/internal/member/repository"
	memberservice "github.com/smallbiznis/rentdesk/internal/member/service"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
	monthrepo "github.com/smallbiznis/rentdesk/internal/month/repository"
	monthservice "github.com/smallbiznis/rentdesk/internal/month/service"
	paymentdomain "github.com/smallbiznis/rentdesk/internal/payment/domain"
	paymentrepo "github.com/smallbiznis/rentdesk/internal/payment/repository"
	paymentservice "github.com/smallbiznis/rentdesk/internal/payment/service"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
	rentrepo "github.com/smallbiznis/rentdesk/internal/rentrecord/repository"
	rentservice "github.com/smallbiznis/rentdesk/internal/rentrecord/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:server_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&memberdomain.Member{},
		&monthdomain.Month{},
		&rentdomain.RentRecord{},
		&paymentdomain.Payment{},
		&authdomain.User{},
		&authdomain.Session{},
	))

	node, err := snowflake.NewNode(4)
	require.NoError(t, err)

	cfg := config.Config{SessionTTLHours: 1}
	log := zap.NewNop()
	settings := config.StaticSettings(config.DefaultSettings())

	userRepo, sessionRepo := authrepo.New(db)
	authsvc := authservice.New(authservice.Params{
		Log: log, Config: cfg, Repo: userRepo, SessionRepo: sessionRepo, GenID: node,
	})

	membersRepo := memberrepo.Provide()
	monthsRepo := monthrepo.Provide()
	recordsRepo := rentrepo.Provide()
	paymentsRepo := paymentrepo.Provide()

	members := memberservice.New(memberservice.Params{
		DB: db, Log: log, GenID: node, Repo: membersRepo,
	})
	months := monthservice.New(monthservice.Params{
		DB: db, Log: log, GenID: node, Repo: monthsRepo, Members: membersRepo,
	})
	records := rentservice.New(rentservice.Params{
		DB: db, Log: log, GenID: node, Repo: recordsRepo,
		Members: membersRepo, Months: monthsRepo, Settings: settings,
	})
	payments := paymentservice.New(paymentservice.Params{
		DB: db, Log: log, GenID: node, Repo: paymentsRepo,
		Members: membersRepo, Settings: settings,
	})
	exportsvc := export.New(export.Params{Log: log, Records: records, Settings: settings})

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(ErrorHandlingMiddleware())

	return NewServer(ServerParams{
		Gin:       engine,
		Cfg:       cfg,
		DB:        db,
		GenID:     node,
		Sessions:  authsession.NewManager(cfg),
		Authsvc:   authsvc,
		Members:   members,
		Months:    months,
		Records:   records,
		Payments:  payments,
		ExportSvc: exportsvc,
	})
}

func login(t *testing.T, s *Server) *http.Cookie {
	t.Helper()

	_, err := s.authsvc.CreateUser(t.Context(), authdomain.CreateUserRequest{
		Email:    "ops@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	w := doJSON(s, http.MethodPost, "/auth/login", map[string]any{
		"email":    "ops@example.com",
		"password": "correct horse",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == authsession.DefaultCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func doJSON(s *Server, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestAPIRequiresSession(t *testing.T) {
	s := setupServer(t)

	w := doJSON(s, http.MethodGet, "/api/members", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"unauthorized"`)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := setupServer(t)
	_ = login(t, s)

	w := doJSON(s, http.MethodPost, "/auth/login", map[string]any{
		"email":    "ops@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMemberLifecycle(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/members", map[string]any{
		"name":    "Ravi Kumar",
		"room_no": "2A",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeData(t, w)
	assert.Equal(t, "active", created["status"])
	id := fmt.Sprintf("%v", created["id"])

	inactive := "inactive"
	w = doJSON(s, http.MethodPatch, "/api/members/"+id, map[string]any{"status": inactive}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inactive", decodeData(t, w)["status"])

	w = doJSON(s, http.MethodDelete, "/api/members/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, http.MethodGet, "/api/members/"+id, nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMemberValidation(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/members", map[string]any{"name": "  "}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"validation_error"`)
}

func TestMonthDerivesBillingFields(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	for _, name := range []string{"Ravi", "Anita", "Vikram", "Priya"} {
		w := doJSON(s, http.MethodPost, "/api/members", map[string]any{"name": name}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(s, http.MethodPost, "/api/months", map[string]any{
		"month_name": "January",
		"year":       2025,
		"eb_prev":    4520,
		"eb_curr":    4880,
		"unit_rate":  5,
		"water":      400,
		"gas":        200,
		"internet":   150,
		"misc":       50,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "January 2025", data["month_year"])
	assert.Equal(t, 360.0, data["eb_units"])
	assert.Equal(t, 1800.0, data["eb_total"])
	assert.Equal(t, 450.0, data["eb_per_head"])
	assert.Equal(t, 800.0, data["extra_total"])
	assert.Equal(t, 200.0, data["extra_per_head"])
	assert.Equal(t, 4.0, data["total_members"])
}

func TestDuplicateMonthConflicts(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	payload := map[string]any{"month_name": "January", "year": 2025}
	w := doJSON(s, http.MethodPost, "/api/months", payload, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, http.MethodPost, "/api/months", payload, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRentRecordExportCSV(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/members", map[string]any{"name": "Ravi Kumar"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	memberID := fmt.Sprintf("%v", decodeData(t, w)["id"])

	w = doJSON(s, http.MethodPost, "/api/months", map[string]any{"month_name": "January", "year": 2025}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	monthID := fmt.Sprintf("%v", decodeData(t, w)["id"])

	w = doJSON(s, http.MethodPost, "/api/rent_records", map[string]any{
		"member_id":   memberID,
		"month_id":    monthID,
		"rent":        5000,
		"eb_share":    450,
		"extra_share": 200,
		"advance":     500,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5150.0, decodeData(t, w)["final_total"])

	w = doJSON(s, http.MethodGet, "/api/rent_records/export?format=csv", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Member,Month,Rent,EB Share,Extra,Advance,Total,Status", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Ravi Kumar")
	assert.Contains(t, lines[1], "5150")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	w := doJSON(s, http.MethodGet, "/api/rent_records/export?format=xlsx", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/members", map[string]any{"name": "Ravi"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, http.MethodGet, "/api/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, 1.0, data["active_members"])
}

func TestLogoutRevokesCookieSession(t *testing.T) {
	s := setupServer(t)
	cookie := login(t, s)

	w := doJSON(s, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s, http.MethodGet, "/api/members", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
