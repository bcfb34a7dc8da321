package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/billing"
	"github.com/smallbiznis/rentdesk/internal/config"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
	"github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
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
	Months   monthdomain.Repository
	Settings *config.SettingsHolder
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	members  memberdomain.Repository
	months   monthdomain.Repository
	settings *config.SettingsHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("rentrecord.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		members:  p.Members,
		months:   p.Months,
		settings: p.Settings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRentRecordRequest) (domain.RentRecord, error) {
	memberID, err := s.requireMember(ctx, req.MemberID)
	if err != nil {
		return domain.RentRecord{}, err
	}
	monthID, err := s.requireMonth(ctx, req.MonthID)
	if err != nil {
		return domain.RentRecord{}, err
	}

	status := strings.TrimSpace(req.PaymentStatus)
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) {
		return domain.RentRecord{}, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	record := domain.RentRecord{
		ID:            s.genID.Generate(),
		MemberID:      memberID,
		MonthID:       monthID,
		Rent:          req.Rent,
		EBShare:       req.EBShare,
		ExtraShare:    req.ExtraShare,
		Advance:       req.Advance,
		FinalTotal:    billing.RentTotal(req.Rent, req.EBShare, req.ExtraShare, req.Advance),
		PaymentStatus: status,
		PaidDate:      req.PaidDate,
		PaymentNote:   strings.TrimSpace(req.PaymentNote),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &record); err != nil {
		return domain.RentRecord{}, err
	}

	s.log.Info("rent record created",
		zap.String("record_id", record.ID.String()),
		zap.String("member_id", record.MemberID.String()),
		zap.Float64("final_total", record.FinalTotal),
	)
	return record, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRentRecordsRequest) (domain.ListRentRecordsResponse, error) {
	filtered, err := s.Filtered(ctx, req)
	if err != nil {
		return domain.ListRentRecordsResponse{}, err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.settings.Get().RentPageSize
	}

	page, info := pagination.Paginate(filtered, pagination.Pagination{
		Page:     req.Page,
		PageSize: pageSize,
	})

	return domain.ListRentRecordsResponse{
		PageInfo: info,
		Records:  page,
	}, nil
}

// Filtered applies the name and status filters in store order. The two
// filters are independent predicates, so their application order does not
// matter.
func (s *Service) Filtered(ctx context.Context, req domain.ListRentRecordsRequest) ([]domain.RentRecordView, error) {
	status := strings.TrimSpace(req.Status)
	if status != "" && status != domain.StatusAll && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	items, err := s.repo.ListViews(ctx, s.db, domain.ListRentRecordFilter{})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	filtered := make([]domain.RentRecordView, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.MemberName), query) {
			continue
		}
		if status != "" && status != domain.StatusAll && item.PaymentStatus != status {
			continue
		}
		filtered = append(filtered, *item)
	}
	return filtered, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetRentRecordRequest) (domain.RentRecord, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.RentRecord{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.RentRecord{}, err
	}
	if item == nil {
		return domain.RentRecord{}, domain.ErrNotFound
	}
	return *item, nil
}

// Update merges the requested fields and recomputes final_total from the
// merged amounts before persisting. Writes are last-write-wins; there is
// no version column.
func (s *Service) Update(ctx context.Context, req domain.UpdateRentRecordRequest) (domain.RentRecord, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.RentRecord{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.RentRecord{}, err
	}
	if existing == nil {
		return domain.RentRecord{}, domain.ErrNotFound
	}

	record := *existing
	if req.MemberID != nil {
		memberID, err := s.requireMember(ctx, *req.MemberID)
		if err != nil {
			return domain.RentRecord{}, err
		}
		record.MemberID = memberID
	}
	if req.MonthID != nil {
		monthID, err := s.requireMonth(ctx, *req.MonthID)
		if err != nil {
			return domain.RentRecord{}, err
		}
		record.MonthID = monthID
	}
	if req.Rent != nil {
		record.Rent = *req.Rent
	}
	if req.EBShare != nil {
		record.EBShare = *req.EBShare
	}
	if req.ExtraShare != nil {
		record.ExtraShare = *req.ExtraShare
	}
	if req.Advance != nil {
		record.Advance = *req.Advance
	}
	if req.PaymentStatus != nil {
		status := strings.TrimSpace(*req.PaymentStatus)
		if !domain.ValidStatus(status) {
			return domain.RentRecord{}, domain.ErrInvalidStatus
		}
		record.PaymentStatus = status
	}
	if req.PaidDate != nil {
		record.PaidDate = req.PaidDate
	}
	if req.PaymentNote != nil {
		record.PaymentNote = strings.TrimSpace(*req.PaymentNote)
	}

	record.FinalTotal = billing.RentTotal(record.Rent, record.EBShare, record.ExtraShare, record.Advance)

	fields := map[string]any{
		"member_id":      record.MemberID,
		"month_id":       record.MonthID,
		"rent":           record.Rent,
		"eb_share":       record.EBShare,
		"extra_share":    record.ExtraShare,
		"advance":        record.Advance,
		"final_total":    record.FinalTotal,
		"payment_status": record.PaymentStatus,
		"paid_date":      record.PaidDate,
		"payment_note":   record.PaymentNote,
		"updated_at":     time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		return domain.RentRecord{}, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.RentRecord{}, err
	}
	if updated == nil {
		return domain.RentRecord{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteRentRecordRequest) error {
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

func (s *Service) requireMonth(ctx context.Context, value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrMonthRequired
	}
	month, err := s.months.FindByID(ctx, s.db, id)
	if err != nil {
		return 0, err
	}
	if month == nil {
		return 0, domain.ErrMonthRequired
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
