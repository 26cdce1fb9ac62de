package cmd

import (
	"log/slog"

	"entregas/internal/adapters/out/postgres"
	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/application/usecases/queries"
	"entregas/internal/core/ports"

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

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) registerUoWFactory() commands.RegisterUoWFactory {
	return FuncRegisterUoWFactory(func() commands.RegisterUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) costUoWFactory() commands.CostUoWFactory {
	return FuncCostUoWFactory(func() commands.CostUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

// orderRepository hands read-only use cases a repository outside any
// transaction.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddTripCostCommandHandler() commands.AddTripCostCommandHandler {
	return commands.NewAddTripCostCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveTripCostCommandHandler() commands.RemoveTripCostCommandHandler {
	return commands.NewRemoveTripCostCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddPaymentCommandHandler() commands.AddPaymentCommandHandler {
	return commands.NewAddPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateProcessReturnCommandHandler(logger *slog.Logger) commands.ProcessReturnCommandHandler {
	return commands.NewProcessReturnCommandHandler(c.orderUoWFactory(), logger)
}

func (c *CompositionRoot) CreateUpdateReturnStatusCommandHandler(logger *slog.Logger) commands.UpdateReturnStatusCommandHandler {
	return commands.NewUpdateReturnStatusCommandHandler(c.orderUoWFactory(), logger)
}

func (c *CompositionRoot) CreateOpenRegisterCommandHandler() commands.OpenRegisterCommandHandler {
	return commands.NewOpenRegisterCommandHandler(c.registerUoWFactory())
}

func (c *CompositionRoot) CreateCloseRegisterCommandHandler() commands.CloseRegisterCommandHandler {
	return commands.NewCloseRegisterCommandHandler(c.registerUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDepositCommandHandler() commands.RegisterDepositCommandHandler {
	return commands.NewRegisterDepositCommandHandler(c.registerUoWFactory())
}

func (c *CompositionRoot) CreateRegisterWithdrawalCommandHandler() commands.RegisterWithdrawalCommandHandler {
	return commands.NewRegisterWithdrawalCommandHandler(c.registerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettlementTotalsCommandHandler() commands.UpdateSettlementTotalsCommandHandler {
	return commands.NewUpdateSettlementTotalsCommandHandler(c.settlementUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreatePurchaseWithNewCostCommandHandler() commands.PurchaseWithNewCostCommandHandler {
	return commands.NewPurchaseWithNewCostCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateRecordCustomerTransactionCommandHandler() commands.RecordCustomerTransactionCommandHandler {
	return commands.NewRecordCustomerTransactionCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateRecordCostCommandHandler() commands.RecordCostCommandHandler {
	return commands.NewRecordCostCommandHandler(c.costUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByDriverQueryHandler() queries.GetOrdersByDriverQueryHandler {
	return queries.NewGetOrdersByDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySettlementQueryHandler() queries.GetDailySettlementQueryHandler {
	return queries.NewGetDailySettlementQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetProfitabilityQueryHandler() queries.GetProfitabilityQueryHandler {
	return queries.NewGetProfitabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBestSellersQueryHandler() queries.GetBestSellersQueryHandler {
	return queries.NewGetBestSellersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyCostsQueryHandler() queries.GetDailyCostsQueryHandler {
	return queries.NewGetDailyCostsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRegisterUoWFactory func() commands.RegisterUoW

func (f FuncRegisterUoWFactory) Create() commands.RegisterUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCostUoWFactory func() commands.CostUoW

func (f FuncCostUoWFactory) Create() commands.CostUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
