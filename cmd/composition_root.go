package cmd

import (
	"log/slog"
	"os"

	"arkdumpster/internal/adapters/out/mailer"
	"arkdumpster/internal/adapters/out/postgres"
	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/application/usecases/queries"
	"arkdumpster/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	mailClient ports.NotificationSender
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	mailClient, err := mailer.NewClient(config.MailerBaseURL, config.MailerAPIKey, config.MailerFrom)
	if err != nil {
		logger.Error("failed to create mail client", "error", err)
		os.Exit(1)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		mailClient: mailClient,
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() commands.CreateQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateQuoteStatusCommandHandler() commands.UpdateQuoteStatusCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateQuoteStatusCommandHandler(f)
}

func (c *CompositionRoot) CreatePromoteQuoteCommandHandler() commands.PromoteQuoteCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPromoteQuoteCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.lifecycleUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateMoveOrderCommandHandler() commands.MoveOrderCommandHandler {
	return commands.NewMoveOrderCommandHandler(c.lifecycleUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdjustLineDescriptionCommandHandler() commands.AdjustLineDescriptionCommandHandler {
	return commands.NewAdjustLineDescriptionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDumpsterCommandHandler() commands.AssignDumpsterCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDumpsterCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseDumpsterCommandHandler() commands.ReleaseDumpsterCommandHandler {
	var f commands.DumpsterUoWFactory = FuncDumpsterUoWFactory(func() commands.DumpsterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseDumpsterCommandHandler(f)
}

func (c *CompositionRoot) CreateSendOrderNotificationCommandHandler() commands.SendOrderNotificationCommandHandler {
	return commands.NewSendOrderNotificationCommandHandler(c.orderUoWFactory(), c.mailClient, c.logger)
}

func (c *CompositionRoot) CreateRecordInvoiceEventCommandHandler() commands.RecordInvoiceEventCommandHandler {
	return commands.NewRecordInvoiceEventCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRetryDumpsterReleasesCommandHandler() commands.RetryDumpsterReleasesCommandHandler {
	return commands.NewRetryDumpsterReleasesCommandHandler(c.lifecycleUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQuotesQueryHandler() queries.GetQuotesQueryHandler {
	return queries.NewGetQuotesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDumpsterBoardQueryHandler() queries.GetDumpsterBoardQueryHandler {
	return queries.NewGetDumpsterBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceCatalogQueryHandler() queries.GetServiceCatalogQueryHandler {
	return queries.NewGetServiceCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDumpsterUoWFactory func() commands.DumpsterUoW

func (f FuncDumpsterUoWFactory) Create() commands.DumpsterUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
