package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/rentdesk/internal/auth"
	authdomain "github.com/smallbiznis/rentdesk/internal/auth/domain"
	"github.com/smallbiznis/rentdesk/internal/auth/session"
	"github.com/smallbiznis/rentdesk/internal/config"
	"github.com/smallbiznis/rentdesk/internal/export"
	"github.com/smallbiznis/rentdesk/internal/member"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	"github.com/smallbiznis/rentdesk/internal/month"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
	"github.com/smallbiznis/rentdesk/internal/observability"
	obsmiddleware "github.com/smallbiznis/rentdesk/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/rentdesk/internal/observability/metrics"
	obstracing "github.com/smallbiznis/rentdesk/internal/observability/tracing"
	"github.com/smallbiznis/rentdesk/internal/payment"
	paymentdomain "github.com/smallbiznis/rentdesk/internal/payment/domain"
	"github.com/smallbiznis/rentdesk/internal/rentrecord"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	auth.Module,
	member.Module,
	month.Module,
	rentrecord.Module,
	payment.Module,
	export.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log, obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	db        *gorm.DB
	genID     *snowflake.Node
	sessions  *session.Manager
	authsvc   authdomain.Service
	members   memberdomain.Service
	months    monthdomain.Service
	records   rentdomain.Service
	payments  paymentdomain.Service
	exportsvc *export.Service
}

type ServerParams struct {
	fx.In

	Gin       *gin.Engine
	Cfg       config.Config
	DB        *gorm.DB
	GenID     *snowflake.Node
	Sessions  *session.Manager
	Authsvc   authdomain.Service
	Members   memberdomain.Service
	Months    monthdomain.Service
	Records   rentdomain.Service
	Payments  paymentdomain.Service
	ExportSvc *export.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:    p.Gin,
		cfg:       p.Cfg,
		db:        p.DB,
		genID:     p.GenID,
		sessions:  p.Sessions,
		authsvc:   p.Authsvc,
		members:   p.Members,
		months:    p.Months,
		records:   p.Records,
		payments:  p.Payments,
		exportsvc: p.ExportSvc,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
	auth.POST("/change-password", s.AuthRequired(), s.ChangePassword)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(s.AuthRequired())

	// -------- Members --------
	api.GET("/members", s.ListMembers)
	api.POST("/members", s.CreateMember)
	api.GET("/members/:id", s.GetMemberByID)
	api.PATCH("/members/:id", s.UpdateMember)
	api.DELETE("/members/:id", s.DeleteMember)

	// -------- Months --------
	api.GET("/months", s.ListMonths)
	api.POST("/months", s.CreateMonth)
	api.GET("/months/:id", s.GetMonthByID)
	api.PATCH("/months/:id", s.UpdateMonth)
	api.DELETE("/months/:id", s.DeleteMonth)

	// -------- Rent records --------
	api.GET("/rent_records", s.ListRentRecords)
	api.POST("/rent_records", s.CreateRentRecord)
	api.GET("/rent_records/export", s.ExportRentRecords)
	api.GET("/rent_records/:id", s.GetRentRecordByID)
	api.PATCH("/rent_records/:id", s.UpdateRentRecord)
	api.DELETE("/rent_records/:id", s.DeleteRentRecord)

	// -------- Payments --------
	api.GET("/payments", s.ListPayments)
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/summary", s.PaymentSummary)
	api.GET("/payments/:id", s.GetPaymentByID)
	api.PATCH("/payments/:id", s.UpdatePayment)
	api.DELETE("/payments/:id", s.DeletePayment)

	// -------- Dashboard --------
	api.GET("/dashboard", s.GetDashboard)
}
