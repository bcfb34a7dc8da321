package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/rentdesk/internal/config"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	memberrepo "github.com/smallbiznis/rentdesk/internal/member/repository"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
	monthrepo "github.com/smallbiznis/rentdesk/internal/month/repository"
	"github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
	rentrepo "github.com/smallbiznis/rentdesk/internal/rentrecord/repository"
	rentservice "github.com/smallbiznis/rentdesk/internal/rentrecord/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	node    *snowflake.Node
	svc     domain.Service
	members memberdomain.Repository
	months  monthdomain.Repository
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:rent_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&memberdomain.Member{}, &monthdomain.Month{}, &domain.RentRecord{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	members := memberrepo.Provide()
	months := monthrepo.Provide()

	svc := rentservice.New(rentservice.Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     rentrepo.Provide(),
		Members:  members,
		Months:   months,
		Settings: config.StaticSettings(config.DefaultSettings()),
	})

	return &fixture{db: db, node: node, svc: svc, members: members, months: months}
}

func (f *fixture) seedMember(t *testing.T, name string) memberdomain.Member {
	t.Helper()
	now := time.Now().UTC()
	member := memberdomain.Member{
		ID:        f.node.Generate(),
		Name:      name,
		Status:    memberdomain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.members.Insert(context.Background(), f.db, &member))
	return member
}

func (f *fixture) seedMonth(t *testing.T, name string, year int) monthdomain.Month {
	t.Helper()
	now := time.Now().UTC()
	month := monthdomain.Month{
		ID:        f.node.Generate(),
		MonthName: name,
		Year:      year,
		MonthYear: monthdomain.MonthLabel(name, year),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.months.Insert(context.Background(), f.db, &month))
	return month
}

func TestCreateComputesFinalTotal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi Kumar")
	month := f.seedMonth(t, "January", 2025)

	record, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
		MemberID:   member.ID.String(),
		MonthID:    month.ID.String(),
		Rent:       5000,
		EBShare:    450,
		ExtraShare: 200,
		Advance:    500,
	})
	require.NoError(t, err)

	assert.Equal(t, 5150.0, record.FinalTotal)
	assert.Equal(t, domain.StatusPending, record.PaymentStatus)
}

func TestCreateAllowsNegativeFinalTotal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Anita")
	month := f.seedMonth(t, "February", 2025)

	record, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
		MemberID: member.ID.String(),
		MonthID:  month.ID.String(),
		Rent:     1000,
		Advance:  1850,
	})
	require.NoError(t, err)

	assert.Equal(t, -850.0, record.FinalTotal)
}

func TestCreateRequiresExistingMemberAndMonth(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")
	month := f.seedMonth(t, "March", 2025)

	_, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
		MemberID: f.node.Generate().String(),
		MonthID:  month.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrMemberRequired)

	_, err = f.svc.Create(ctx, domain.CreateRentRecordRequest{
		MemberID: member.ID.String(),
		MonthID:  "not-a-number",
	})
	assert.ErrorIs(t, err, domain.ErrMonthRequired)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")
	month := f.seedMonth(t, "April", 2025)

	_, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
		MemberID:      member.ID.String(),
		MonthID:       month.ID.String(),
		PaymentStatus: "overdue",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestListFiltersByNameAndStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ravi := f.seedMember(t, "Ravi Kumar")
	anita := f.seedMember(t, "Anita Sharma")
	month := f.seedMonth(t, "May", 2025)

	mustCreate := func(member memberdomain.Member, status string) {
		_, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
			MemberID:      member.ID.String(),
			MonthID:       month.ID.String(),
			Rent:          5000,
			PaymentStatus: status,
		})
		require.NoError(t, err)
	}
	mustCreate(ravi, domain.StatusPaid)
	mustCreate(ravi, domain.StatusPending)
	mustCreate(anita, domain.StatusPaid)

	// Case-insensitive substring match on the member name.
	res, err := f.svc.List(ctx, domain.ListRentRecordsRequest{Query: "rAvI"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalItems)
	for _, record := range res.Records {
		assert.Equal(t, "Ravi Kumar", record.MemberName)
	}

	// Status filter composes with the name filter.
	res, err = f.svc.List(ctx, domain.ListRentRecordsRequest{Query: "ravi", Status: domain.StatusPaid})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalItems)

	// "all" is a sentinel, not a stored status.
	res, err = f.svc.List(ctx, domain.ListRentRecordsRequest{Status: domain.StatusAll})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalItems)
}

func TestListPaginatesWithConfiguredPageSize(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")
	month := f.seedMonth(t, "June", 2025)

	for i := 0; i < 7; i++ {
		_, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
			MemberID: member.ID.String(),
			MonthID:  month.ID.String(),
			Rent:     float64(1000 + i),
		})
		require.NoError(t, err)
	}

	res, err := f.svc.List(ctx, domain.ListRentRecordsRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, res.Records, 5)
	assert.Equal(t, 2, res.PageCount)
	assert.Equal(t, 7, res.TotalItems)

	res, err = f.svc.List(ctx, domain.ListRentRecordsRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)

	// Out-of-range pages clamp to the last page instead of erroring.
	res, err = f.svc.List(ctx, domain.ListRentRecordsRequest{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.Len(t, res.Records, 2)
}

func TestListEmptyHasZeroPages(t *testing.T) {
	f := setup(t)

	res, err := f.svc.List(context.Background(), domain.ListRentRecordsRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Equal(t, 0, res.PageCount)
}

func TestUpdateRecomputesFinalTotal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")
	month := f.seedMonth(t, "July", 2025)

	record, err := f.svc.Create(ctx, domain.CreateRentRecordRequest{
		MemberID: member.ID.String(),
		MonthID:  month.ID.String(),
		Rent:     5000,
		EBShare:  450,
	})
	require.NoError(t, err)

	advance := 600.0
	status := domain.StatusPaid
	updated, err := f.svc.Update(ctx, domain.UpdateRentRecordRequest{
		ID:            record.ID.String(),
		Advance:       &advance,
		PaymentStatus: &status,
	})
	require.NoError(t, err)

	// Untouched amounts survive the merge and the total reflects the new advance.
	assert.Equal(t, 5000.0, updated.Rent)
	assert.Equal(t, 4850.0, updated.FinalTotal)
	assert.Equal(t, domain.StatusPaid, updated.PaymentStatus)
}

func TestDeleteMissingRecord(t *testing.T) {
	f := setup(t)

	err := f.svc.Delete(context.Background(), domain.DeleteRentRecordRequest{ID: f.node.Generate().String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
