package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/staff"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllLive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, member *staff.Staff) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Resolve(ctx context.Context, street, city string) (ports.GeoResult, error) {
	args := m.Called(ctx, street, city)
	return args.Get(0).(ports.GeoResult), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PublishOrderChange(ctx context.Context, change ports.OrderChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var handlerTestNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

// newPendingOrder builds a valid pending order delivering in three days.
func newPendingOrder(t *testing.T, headcount bool) *order.Order {
	t.Helper()

	guests := 12
	if headcount {
		guests = 25
	}

	address, err := order.NewAddress("12 Provence Lane", "Mimizan")
	require.NoError(t, err)

	pricing, err := order.NewPricing(
		kernel.MoneyFromFloat(540.00),
		kernel.ZeroMoney(),
		kernel.MoneyFromFloat(5.00),
		kernel.MoneyFromFloat(545.00),
	)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		guests, 10, address, handlerTestNow.AddDate(0, 0, 3),
		"", true, pricing, handlerTestNow, "",
	)
	require.NoError(t, err)
	return o
}

// advanceOrderTo walks a pending order forward until it reaches the wanted
// status.
func advanceOrderTo(t *testing.T, o *order.Order, want order.Status) {
	t.Helper()

	actor := kernel.NewUUID()
	for o.Status() != want {
		require.NoError(t, o.Advance(actor, handlerTestNow))
	}
}
