package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/billing"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	"github.com/smallbiznis/rentdesk/internal/month/domain"
	"github.com/smallbiznis/rentdesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Members memberdomain.Repository
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	members memberdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("month.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		members: p.Members,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMonthRequest) (domain.Month, error) {
	monthName := strings.TrimSpace(req.MonthName)
	if monthName == "" {
		return domain.Month{}, domain.ErrInvalidMonthName
	}
	if req.Year < 1000 || req.Year > 9999 {
		return domain.Month{}, domain.ErrInvalidYear
	}

	now := time.Now().UTC()
	month := domain.Month{
		ID:        s.genID.Generate(),
		MonthName: monthName,
		Year:      req.Year,
		MonthYear: domain.MonthLabel(monthName, req.Year),
		EBPrev:    req.EBPrev,
		EBCurr:    req.EBCurr,
		UnitRate:  req.UnitRate,
		Water:     req.Water,
		Gas:       req.Gas,
		Internet:  req.Internet,
		Misc:      req.Misc,
		TotalRent: req.TotalRent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.derive(ctx, &month); err != nil {
		return domain.Month{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &month); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Month{}, domain.ErrMonthExists
		}
		return domain.Month{}, err
	}

	s.log.Info("billing month created",
		zap.String("month_id", month.ID.String()),
		zap.String("month", month.MonthYear),
	)
	return month, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Month, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	months := make([]domain.Month, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		months = append(months, *item)
	}
	return months, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetMonthRequest) (domain.Month, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Month{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Month{}, err
	}
	if item == nil {
		return domain.Month{}, domain.ErrNotFound
	}
	return *item, nil
}

// Update merges the requested fields into the stored month and recomputes
// every derived column from the merged inputs before persisting. The store
// never enforces consistency between eb_units and eb_curr − eb_prev; this
// recompute-on-every-persist is the only guard.
func (s *Service) Update(ctx context.Context, req domain.UpdateMonthRequest) (domain.Month, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Month{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Month{}, err
	}
	if existing == nil {
		return domain.Month{}, domain.ErrNotFound
	}

	month := *existing
	if req.MonthName != nil {
		monthName := strings.TrimSpace(*req.MonthName)
		if monthName == "" {
			return domain.Month{}, domain.ErrInvalidMonthName
		}
		month.MonthName = monthName
	}
	if req.Year != nil {
		if *req.Year < 1000 || *req.Year > 9999 {
			return domain.Month{}, domain.ErrInvalidYear
		}
		month.Year = *req.Year
	}
	month.MonthYear = domain.MonthLabel(month.MonthName, month.Year)

	if req.EBPrev != nil {
		month.EBPrev = *req.EBPrev
	}
	if req.EBCurr != nil {
		month.EBCurr = *req.EBCurr
	}
	if req.UnitRate != nil {
		month.UnitRate = *req.UnitRate
	}
	if req.Water != nil {
		month.Water = *req.Water
	}
	if req.Gas != nil {
		month.Gas = *req.Gas
	}
	if req.Internet != nil {
		month.Internet = *req.Internet
	}
	if req.Misc != nil {
		month.Misc = *req.Misc
	}
	if req.TotalRent != nil {
		month.TotalRent = *req.TotalRent
	}

	if err := s.derive(ctx, &month); err != nil {
		return domain.Month{}, err
	}

	fields := map[string]any{
		"month_name":     month.MonthName,
		"year":           month.Year,
		"month_year":     month.MonthYear,
		"eb_prev":        month.EBPrev,
		"eb_curr":        month.EBCurr,
		"unit_rate":      month.UnitRate,
		"eb_units":       month.EBUnits,
		"eb_total":       month.EBTotal,
		"eb_per_head":    month.EBPerHead,
		"water":          month.Water,
		"gas":            month.Gas,
		"internet":       month.Internet,
		"misc":           month.Misc,
		"extra_total":    month.ExtraTotal,
		"extra_per_head": month.ExtraPerHead,
		"total_members":  month.TotalMembers,
		"total_rent":     month.TotalRent,
		"updated_at":     time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Month{}, domain.ErrMonthExists
		}
		return domain.Month{}, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Month{}, err
	}
	if updated == nil {
		return domain.Month{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteMonthRequest) error {
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

	if err := s.repo.Delete(ctx, s.db, id); err != nil {
		if db.IsForeignKeyErr(err) {
			return domain.ErrMonthInUse
		}
		return err
	}
	return nil
}

// derive recomputes every stored derived column from its inputs and the
// current active member count.
func (s *Service) derive(ctx context.Context, month *domain.Month) error {
	activeMembers, err := s.members.CountByStatus(ctx, s.db, memberdomain.StatusActive)
	if err != nil {
		return err
	}

	eb := billing.Electricity(month.EBPrev, month.EBCurr, month.UnitRate, int(activeMembers))
	extra := billing.SharedExpenses(month.Water, month.Gas, month.Internet, month.Misc, int(activeMembers))

	month.EBUnits = eb.Units
	month.EBTotal = eb.Total
	month.EBPerHead = eb.PerHead
	month.ExtraTotal = extra.Total
	month.ExtraPerHead = extra.PerHead
	month.TotalMembers = int(activeMembers)
	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
