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
	"github.com/smallbiznis/rentdesk/internal/payment/domain"
	paymentrepo "github.com/smallbiznis/rentdesk/internal/payment/repository"
	paymentservice "github.com/smallbiznis/rentdesk/internal/payment/service"
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
}

func setup(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:pay_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&memberdomain.Member{}, &domain.Payment{}))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	members := memberrepo.Provide()
	svc := paymentservice.New(paymentservice.Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Repo:     paymentrepo.Provide(),
		Members:  members,
		Settings: config.StaticSettings(config.DefaultSettings()),
	})

	return &fixture{db: db, node: node, svc: svc, members: members}
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

func date(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}

func TestCreateDefaultsTypeAndStatus(t *testing.T) {
	f := setup(t)
	member := f.seedMember(t, "Ravi")

	payment, err := f.svc.Create(context.Background(), domain.CreatePaymentRequest{
		MemberID: member.ID.String(),
		Amount:   5000,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TypeRent, payment.PaymentType)
	assert.Equal(t, domain.StatusCompleted, payment.Status)
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestCreateValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")

	_, err := f.svc.Create(ctx, domain.CreatePaymentRequest{
		MemberID: f.node.Generate().String(),
		Amount:   100,
	})
	assert.ErrorIs(t, err, domain.ErrMemberRequired)

	_, err = f.svc.Create(ctx, domain.CreatePaymentRequest{
		MemberID: member.ID.String(),
		Amount:   0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.svc.Create(ctx, domain.CreatePaymentRequest{
		MemberID:    member.ID.String(),
		Amount:      100,
		PaymentType: "loan",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestListFiltersByNameAndType(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ravi := f.seedMember(t, "Ravi Kumar")
	anita := f.seedMember(t, "Anita Sharma")

	mustCreate := func(member memberdomain.Member, paymentType string, amount float64) {
		_, err := f.svc.Create(ctx, domain.CreatePaymentRequest{
			MemberID:    member.ID.String(),
			Amount:      amount,
			PaymentType: paymentType,
		})
		require.NoError(t, err)
	}
	mustCreate(ravi, domain.TypeRent, 5000)
	mustCreate(ravi, domain.TypeAdvance, 1000)
	mustCreate(anita, domain.TypeRent, 4500)

	res, err := f.svc.List(ctx, domain.ListPaymentsRequest{Query: "anita"})
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalItems)
	assert.Equal(t, "Anita Sharma", res.Payments[0].MemberName)

	res, err = f.svc.List(ctx, domain.ListPaymentsRequest{Query: "RAVI", Type: domain.TypeAdvance})
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalItems)
	assert.Equal(t, 1000.0, res.Payments[0].Amount)

	res, err = f.svc.List(ctx, domain.ListPaymentsRequest{Type: domain.TypeAll})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalItems)
}

func TestListOrdersByPaymentDateDesc(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")

	for _, day := range []int{3, 27, 15} {
		_, err := f.svc.Create(ctx, domain.CreatePaymentRequest{
			MemberID:    member.ID.String(),
			Amount:      100,
			PaymentDate: date(2025, time.June, day),
		})
		require.NoError(t, err)
	}

	res, err := f.svc.List(ctx, domain.ListPaymentsRequest{})
	require.NoError(t, err)
	require.Len(t, res.Payments, 3)
	assert.Equal(t, 27, res.Payments[0].PaymentDate.Day())
	assert.Equal(t, 15, res.Payments[1].PaymentDate.Day())
	assert.Equal(t, 3, res.Payments[2].PaymentDate.Day())
}

func TestSummarize(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")

	mustCreate := func(amount float64, status string, when *time.Time) {
		_, err := f.svc.Create(ctx, domain.CreatePaymentRequest{
			MemberID:    member.ID.String(),
			Amount:      amount,
			Status:      status,
			PaymentDate: when,
		})
		require.NoError(t, err)
	}
	mustCreate(5000, domain.StatusCompleted, date(2025, time.June, 5))
	mustCreate(1200, domain.StatusCompleted, date(2025, time.May, 20))
	mustCreate(800, domain.StatusPending, date(2025, time.June, 10))
	mustCreate(300, domain.StatusFailed, date(2025, time.June, 12))

	summary, err := f.svc.Summarize(ctx, time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 6200.0, summary.TotalCompleted)
	assert.Equal(t, 800.0, summary.TotalPending)
	// Current month counts every payment dated in June regardless of status.
	assert.Equal(t, 6100.0, summary.CurrentMonth)
}

func TestUpdateAndDelete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	member := f.seedMember(t, "Ravi")

	payment, err := f.svc.Create(ctx, domain.CreatePaymentRequest{
		MemberID: member.ID.String(),
		Amount:   500,
	})
	require.NoError(t, err)

	status := domain.StatusPending
	updated, err := f.svc.Update(ctx, domain.UpdatePaymentRequest{
		ID:     payment.ID.String(),
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, updated.Status)
	assert.Equal(t, 500.0, updated.Amount)

	require.NoError(t, f.svc.Delete(ctx, domain.DeletePaymentRequest{ID: payment.ID.String()}))
	err = f.svc.Delete(ctx, domain.DeletePaymentRequest{ID: payment.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
