package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/config"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	"github.com/smallbiznis/rentdesk/internal/payment/domain"
	"github.com/smallbiznis/rentdesk/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Members  memberdomain.Repository
	Settings *config.SettingsHolder
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	members  memberdomain.Repository
	settings *config.SettingsHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("payment.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		members:  p.Members,
		settings: p.Settings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreatePaymentRequest) (domain.Payment, error) {
	memberID, err := s.requireMember(ctx, req.MemberID)
	if err != nil {
		return domain.Payment{}, err
	}
	if req.Amount <= 0 {
		return domain.Payment{}, domain.ErrInvalidAmount
	}

	paymentType := strings.TrimSpace(req.PaymentType)
	if paymentType == "" {
		paymentType = domain.TypeRent
	}
	if !domain.ValidType(paymentType) {
		return domain.Payment{}, domain.ErrInvalidType
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusCompleted
	}
	if !domain.ValidStatus(status) {
		return domain.Payment{}, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	payment := domain.Payment{
		ID:          s.genID.Generate(),
		MemberID:    memberID,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		PaymentType: paymentType,
		Status:      status,
		Notes:       strings.TrimSpace(req.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &payment); err != nil {
		return domain.Payment{}, err
	}

	s.log.Info("payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("member_id", payment.MemberID.String()),
		zap.Float64("amount", payment.Amount),
		zap.String("type", payment.PaymentType),
	)
	return payment, nil
}

func (s *Service) List(ctx context.Context, req domain.ListPaymentsRequest) (domain.ListPaymentsResponse, error) {
	paymentType := strings.TrimSpace(req.Type)
	if paymentType != "" && paymentType != domain.TypeAll && !domain.ValidType(paymentType) {
		return domain.ListPaymentsResponse{}, domain.ErrInvalidType
	}

	items, err := s.repo.ListViews(ctx, s.db, domain.ListPaymentFilter{})
	if err != nil {
		return domain.ListPaymentsResponse{}, err
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	filtered := make([]domain.PaymentView, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.MemberName), query) {
			continue
		}
		if paymentType != "" && paymentType != domain.TypeAll && item.PaymentType != paymentType {
			continue
		}
		filtered = append(filtered, *item)
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.settings.Get().RentPageSize
	}

	page, info := pagination.Paginate(filtered, pagination.Pagination{
		Page:     req.Page,
		PageSize: pageSize,
	})

	return domain.ListPaymentsResponse{
		PageInfo: info,
		Payments: page,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetPaymentRequest) (domain.Payment, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Payment{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if item == nil {
		return domain.Payment{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdatePaymentRequest) (domain.Payment, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Payment{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if existing == nil {
		return domain.Payment{}, domain.ErrNotFound
	}

	fields := map[string]any{}
	if req.MemberID != nil {
		memberID, err := s.requireMember(ctx, *req.MemberID)
		if err != nil {
			return domain.Payment{}, err
		}
		fields["member_id"] = memberID
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return domain.Payment{}, domain.ErrInvalidAmount
		}
		fields["amount"] = *req.Amount
	}
	if req.PaymentDate != nil {
		fields["payment_date"] = req.PaymentDate.UTC()
	}
	if req.PaymentType != nil {
		paymentType := strings.TrimSpace(*req.PaymentType)
		if !domain.ValidType(paymentType) {
			return domain.Payment{}, domain.ErrInvalidType
		}
		fields["payment_type"] = paymentType
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !domain.ValidStatus(status) {
			return domain.Payment{}, domain.ErrInvalidStatus
		}
		fields["status"] = status
	}
	if req.Notes != nil {
		fields["notes"] = strings.TrimSpace(*req.Notes)
	}
	fields["updated_at"] = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		return domain.Payment{}, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if updated == nil {
		return domain.Payment{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeletePaymentRequest) error {
	id, err := s.parseID(req.ID)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}

// Summarize walks every payment once. Volumes here are household-scale;
// aggregate SQL would save nothing.
func (s *Service) Summarize(ctx context.Context, now time.Time) (domain.Summary, error) {
	items, err := s.repo.ListViews(ctx, s.db, domain.ListPaymentFilter{})
	if err != nil {
		return domain.Summary{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var summary domain.Summary
	for _, item := range items {
		if item == nil {
			continue
		}
		switch item.Status {
		case domain.StatusCompleted:
			summary.TotalCompleted += item.Amount
		case domain.StatusPending:
			summary.TotalPending += item.Amount
		}
		if !item.PaymentDate.Before(monthStart) && item.PaymentDate.Before(monthEnd) {
			summary.CurrentMonth += item.Amount
		}
	}
	return summary, nil
}

func (s *Service) requireMember(ctx context.Context, value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrMemberRequired
	}
	member, err := s.members.FindByID(ctx, s.db, id)
	if err != nil {
		return 0, err
	}
	if member == nil {
		return 0, domain.ErrMemberRequired
	}
	return id, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
