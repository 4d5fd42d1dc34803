package cmd

import (
	"log/slog"

	"hogtrade/internal/adapters/in/http"
	"hogtrade/internal/adapters/out/postgres"
	"hogtrade/internal/core/application/usecases/commands"
	"hogtrade/internal/core/application/usecases/queries"
	"hogtrade/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateTransactionCommandHandler() commands.CreateTransactionCommandHandler {
	var f commands.SaleUoWFactory = FuncSaleUoWFactory(func() commands.SaleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransactionCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDeliveryCommandHandler() commands.RecordDeliveryCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableHogsQueryHandler() queries.GetAvailableHogsQueryHandler {
	return queries.NewGetAvailableHogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllHogsQueryHandler() queries.GetAllHogsQueryHandler {
	return queries.NewGetAllHogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionsQueryHandler() queries.GetTransactionsQueryHandler {
	return queries.NewGetTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionQueryHandler() queries.GetTransactionQueryHandler {
	return queries.NewGetTransactionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateTransactionCommandHandler(),
		c.CreateRecordDeliveryCommandHandler(),
		c.CreateGetAvailableHogsQueryHandler(),
		c.CreateGetAllHogsQueryHandler(),
		c.CreateGetDeliveriesQueryHandler(),
		c.CreateGetTransactionsQueryHandler(),
		c.CreateGetTransactionQueryHandler(),
		c.CreateGetCustomersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetAvailableHogsQueryHandler(), logger)
}

type FuncSaleUoWFactory func() commands.SaleUoW

func (f FuncSaleUoWFactory) Create() commands.SaleUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}
