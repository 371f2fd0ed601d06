package cmd

import (
	"time"

	adapterhttp "signhero/internal/adapters/in/http"
	"signhero/internal/adapters/out/postgres"
	"signhero/internal/adapters/out/stripebilling"
	"signhero/internal/core/application/usecases/commands"
	"signhero/internal/core/application/usecases/queries"
	"signhero/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	billing    ports.BillingProvider
	clock      func() time.Time
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	billing, err := stripebilling.NewClient(
		configs.StripeSecretKey,
		configs.StripeWebhookSecret,
		configs.StripeWebhookSecretSecondary,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		billing:    billing,
		clock:      time.Now,
	}, nil
}

func (c *CompositionRoot) BillingProvider() ports.BillingProvider {
	return c.billing
}

func (c *CompositionRoot) Clock() func() time.Time {
	return c.clock
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateResetOrderStatusCommandHandler() commands.ResetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRecordPickupCommandHandler() commands.RecordPickupCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPickupCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGenerateReportCommandHandler() commands.GenerateReportCommandHandler {
	var f commands.OrderReportUoWFactory = FuncOrderReportUoWFactory(func() commands.OrderReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateReportCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteReportCommandHandler() commands.DeleteReportCommandHandler {
	var f commands.ReportUoWFactory = FuncReportUoWFactory(func() commands.ReportUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteReportCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertSubscriptionCommandHandler() commands.UpsertSubscriptionCommandHandler {
	var f commands.SubscriptionUoWFactory = FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertSubscriptionCommandHandler(f, c.billing, c.clock)
}

func (c *CompositionRoot) CreateSyncSubscriptionCommandHandler() commands.SyncSubscriptionCommandHandler {
	var f commands.SubscriptionUoWFactory = FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncSubscriptionCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCancelSubscriptionCommandHandler() commands.CancelSubscriptionCommandHandler {
	var f commands.SubscriptionUoWFactory = FuncSubscriptionUoWFactory(func() commands.SubscriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelSubscriptionCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReportsByOrderQueryHandler() queries.GetReportsByOrderQueryHandler {
	return queries.NewGetReportsByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverduePickupsQueryHandler() queries.GetOverduePickupsQueryHandler {
	return queries.NewGetOverduePickupsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateResetOrderStatusCommandHandler(),
		c.CreateGenerateReportCommandHandler(),
		c.CreateDeleteReportCommandHandler(),
		c.CreateRecordPickupCommandHandler(),
		c.CreateUpsertSubscriptionCommandHandler(),
		c.CreateSyncSubscriptionCommandHandler(),
		c.CreateCancelSubscriptionCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetReportsByOrderQueryHandler(),
		c.CreateGetOverduePickupsQueryHandler(),
		c.billing,
		c.clock,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReportUoWFactory func() commands.ReportUoW

func (f FuncReportUoWFactory) Create() commands.ReportUoW {
	return f()
}

type FuncOrderReportUoWFactory func() commands.OrderReportUoW

func (f FuncOrderReportUoWFactory) Create() commands.OrderReportUoW {
	return f()
}

type FuncSubscriptionUoWFactory func() commands.SubscriptionUoW

func (f FuncSubscriptionUoWFactory) Create() commands.SubscriptionUoW {
	return f()
}
