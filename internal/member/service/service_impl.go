package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/member/domain"
	"github.com/smallbiznis/rentdesk/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("member.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMemberRequest) (domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Member{}, domain.ErrInvalidName
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusActive
	}
	if !domain.ValidStatus(status) {
		return domain.Member{}, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	member := domain.Member{
		ID:        s.genID.Generate(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		RoomNo:    strings.TrimSpace(req.RoomNo),
		Avatar:    strings.TrimSpace(req.Avatar),
		Status:    status,
		JoinDate:  req.JoinDate,
		Metadata:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &member); err != nil {
		return domain.Member{}, err
	}

	s.log.Info("member created",
		zap.String("member_id", member.ID.String()),
		zap.String("status", member.Status),
	)
	return member, nil
}

func (s *Service) List(ctx context.Context, req domain.ListMemberRequest) ([]domain.Member, error) {
	filter := domain.ListMemberFilter{}
	status := strings.TrimSpace(req.Status)
	if status != "" && status != domain.StatusAll {
		if !domain.ValidStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = status
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		members = append(members, *item)
	}
	return members, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetMemberRequest) (domain.Member, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Member{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Member{}, err
	}
	if item == nil {
		return domain.Member{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateMemberRequest) (domain.Member, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Member{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Member{}, err
	}
	if existing == nil {
		return domain.Member{}, domain.ErrNotFound
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Member{}, domain.ErrInvalidName
		}
		fields["name"] = name
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		fields["email"] = strings.TrimSpace(*req.Email)
	}
	if req.RoomNo != nil {
		fields["room_no"] = strings.TrimSpace(*req.RoomNo)
	}
	if req.Avatar != nil {
		fields["avatar"] = strings.TrimSpace(*req.Avatar)
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !domain.ValidStatus(status) {
			return domain.Member{}, domain.ErrInvalidStatus
		}
		fields["status"] = status
	}
	if req.JoinDate != nil {
		fields["join_date"] = *req.JoinDate
	}

	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		if err := s.repo.Update(ctx, s.db, id, fields); err != nil {
			return domain.Member{}, err
		}
	}

	updated, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Member{}, err
	}
	if updated == nil {
		return domain.Member{}, domain.ErrNotFound
	}
	return *updated, nil
}

// Delete removes a member immediately. There is no soft delete; rent
// records and payments referencing the member block the delete through
// their foreign keys.
func (s *Service) Delete(ctx context.Context, req domain.DeleteMemberRequest) error {
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
			return domain.ErrMemberInUse
		}
		return err
	}

	s.log.Info("member deleted", zap.String("member_id", id.String()))
	return nil
}

func (s *Service) ActiveCount(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, s.db, domain.StatusActive)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
