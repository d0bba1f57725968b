package cmd

import (
	"context"
	"log/slog"

	"catering/internal/adapters/out/geo"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	geocoder   ports.Geocoder
	pricer     services.PricingEngine
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		geocoder:   geo.NewClient(configs.GeoServiceURL, configs.GeoHomeCity),
		pricer:     services.NewPricingEngine(),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.geocoder, c.pricer, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReturnEquipmentCommandHandler() commands.ReturnEquipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnEquipmentCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepOrdersCommandHandler() commands.SweepOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOrdersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetKanbanBoardQueryHandler() queries.GetKanbanBoardQueryHandler {
	return queries.NewGetKanbanBoardQueryHandler(c.gormDB, services.NewKanbanProjector())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// LogNotifier is the notifier used when no message broker is configured.
// Order changes are written to the log instead of being published.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes order changes to the log.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) PublishOrderChange(ctx context.Context, change ports.OrderChange) error {
	n.logger.InfoContext(ctx, "order changed",
		"orderID", change.OrderID.String(),
		"status", change.Status.String(),
		"priority", change.Priority.String(),
		"notes", change.Notes,
	)
	return nil
}
