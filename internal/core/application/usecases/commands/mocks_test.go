package commands_test

import (
	"context"
	"time"

	"signhero/internal/core/application/usecases/commands"
	"signhero/internal/core/domain/model/kernel"
	"signhero/internal/core/domain/model/order"
	"signhero/internal/core/domain/model/report"
	"signhero/internal/core/domain/model/subscription"
	"signhero/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared mocks for the command handler tests. Every handler variant reuses
// the same repository and unit-of-work doubles.

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
func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReportRepository) Get(ctx context.Context, id kernel.UUID) (*report.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}
func (m *MockReportRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*report.Report, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.Report), args.Error(1)
}
func (m *MockReportRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Upsert(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubscriptionRepository) GetByProviderSubscriptionID(ctx context.Context, id string) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}
func (m *MockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
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
func (m *MockUoW) ReportRepository() ports.ReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportRepository)
}
func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	args := m.Called()
	return args.Get(0).(commands.ReportUoW)
}

type MockOrderReportUoWFactory struct{ mock.Mock }

func (m *MockOrderReportUoWFactory) Create() commands.OrderReportUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderReportUoW)
}

type MockSubscriptionUoWFactory struct{ mock.Mock }

func (m *MockSubscriptionUoWFactory) Create() commands.SubscriptionUoW {
	args := m.Called()
	return args.Get(0).(commands.SubscriptionUoW)
}

type MockBillingProvider struct{ mock.Mock }

func (m *MockBillingProvider) CreateCheckoutSession(ctx context.Context, req ports.CheckoutSessionRequest) (ports.CheckoutSession, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.CheckoutSession), args.Error(1)
}
func (m *MockBillingProvider) GetSubscription(ctx context.Context, subscriptionID string) (ports.ProviderSubscription, error) {
	args := m.Called(ctx, subscriptionID)
	return args.Get(0).(ports.ProviderSubscription), args.Error(1)
}
func (m *MockBillingProvider) ParseWebhookEvent(payload []byte, signature string) (ports.WebhookEvent, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(ports.WebhookEvent), args.Error(1)
}

var testNow = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// orderFixture builds a valid order in the given status for handler tests.
func orderFixture(status order.Status) *order.Order {
	price, _ := kernel.NewMoneyFromInt(95)
	perDay, _ := kernel.NewMoneyFromInt(10)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		status,
		order.CustomerInfo{
			Name:  "Jordan Lee",
			Email: "jordan@example.com",
			Phone: "5551234567",
			EventAddress: order.Address{
				Street: "123 Main St", City: "Austin", State: "TX", Zip: "78701",
			},
		},
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		"Maya",
		order.PackageInfo{
			Name:                "Letter Sign Package",
			Price:               price,
			SignCount:           2,
			SetupDaysBefore:     1,
			TeardownDaysAfter:   1,
			ExtraDayBeforePrice: perDay,
			ExtraDayAfterPrice:  perDay,
		},
		[]order.Slot{
			{Position: 1, Sign: &order.SignRef{ID: "sign-1", Name: "Balloon Cluster", EventType: "birthday", Style: "playful", Color: "#ff0000"}},
			{Position: 2, IsNameSlot: true},
		},
		order.Options{},
		nil,
		price,
		testNow,
		testNow,
	)
	if err != nil {
		panic(err)
	}
	return o
}
