package services_test

import (
	"logistics/internal/adapters/out/inmem"
	"logistics/internal/core/domain/model"
	"logistics/internal/core/services"
	"logistics/internal/pkg/ids"
)

// fixture wires every service over fresh in-memory repositories, the same
// way the composition root does for a memory-backed run.
type fixture struct {
	customers   *inmem.Repository[model.Customer]
	stores      *inmem.Repository[model.Store]
	deposits    *inmem.Repository[model.Deposit]
	packages    *inmem.Repository[model.Package]
	orders      *inmem.Repository[model.Order]
	deliveries  *inmem.Repository[model.Delivery]
	departments *inmem.Repository[model.Department]
	employees   *inmem.Repository[model.Employee]
	persons     *inmem.Repository[model.DeliveryPerson]
	vehicles    *inmem.Repository[model.PersonalVehicle]

	customerSvc services.CustomerService
	sellerSvc   services.SellerService
	employeeSvc services.EmployeeService
	personSvc   services.DeliveryPersonService
	userSvc     services.UserService
}

func newFixture() *fixture {
	f := &fixture{
		customers:   inmem.NewRepository[model.Customer](),
		stores:      inmem.NewRepository[model.Store](),
		deposits:    inmem.NewRepository[model.Deposit](),
		packages:    inmem.NewRepository[model.Package](),
		orders:      inmem.NewRepository[model.Order](),
		deliveries:  inmem.NewRepository[model.Delivery](),
		departments: inmem.NewRepository[model.Department](),
		employees:   inmem.NewRepository[model.Employee](),
		persons:     inmem.NewRepository[model.DeliveryPerson](),
		vehicles:    inmem.NewRepository[model.PersonalVehicle](),
	}

	alloc := ids.NewMaxPlusOne()
	f.customerSvc = services.NewCustomerService(f.customers, f.orders, f.deliveries, f.packages, alloc)
	f.sellerSvc = services.NewSellerService(f.stores, f.deposits, f.packages, f.deliveries, f.orders, alloc)
	f.employeeSvc = services.NewEmployeeService(f.employees, f.deliveries, f.departments, f.orders, alloc)
	f.personSvc = services.NewDeliveryPersonService(f.deliveries, f.persons, f.vehicles, f.orders, alloc)
	f.userSvc = services.NewUserService(f.customers, f.employees, f.persons, f.departments, alloc)
	return f
}
