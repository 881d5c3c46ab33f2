package cmd

import (
	"path/filepath"

	"logistics/internal/adapters/out/flatfile"
	"logistics/internal/adapters/out/inmem"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model"
	"logistics/internal/core/ports"
	"logistics/internal/core/services"
	"logistics/internal/pkg/ids"

	"gorm.io/gorm"
)

// CompositionRoot wires every repository and service for the configured
// storage backend. All repositories of one run share the same backend.
type CompositionRoot struct {
	customers   ports.Repository[model.Customer]
	stores      ports.Repository[model.Store]
	deposits    ports.Repository[model.Deposit]
	packages    ports.Repository[model.Package]
	orders      ports.Repository[model.Order]
	deliveries  ports.Repository[model.Delivery]
	departments ports.Repository[model.Department]
	employees   ports.Repository[model.Employee]
	persons     ports.Repository[model.DeliveryPerson]
	vehicles    ports.Repository[model.PersonalVehicle]

	ids ports.IDAllocator
}

// NewCompositionRoot builds the repositories for the configured backend.
// gormDB is only consulted when the backend is postgres and may be nil
// otherwise.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		customers:   buildRepo(configs, gormDB, "customers", flatfile.CustomerCodec(), postgres.CustomerMapping()),
		stores:      buildRepo(configs, gormDB, "stores", flatfile.StoreCodec(), postgres.StoreMapping()),
		deposits:    buildRepo(configs, gormDB, "deposits", flatfile.DepositCodec(), postgres.DepositMapping()),
		packages:    buildRepo(configs, gormDB, "packages", flatfile.PackageCodec(), postgres.PackageMapping()),
		orders:      buildRepo(configs, gormDB, "orders", flatfile.OrderCodec(), postgres.OrderMapping()),
		deliveries:  buildRepo(configs, gormDB, "deliveries", flatfile.DeliveryCodec(), postgres.DeliveryMapping()),
		departments: buildRepo(configs, gormDB, "departments", flatfile.DepartmentCodec(), postgres.DepartmentMapping()),
		employees:   buildRepo(configs, gormDB, "employees", flatfile.EmployeeCodec(), postgres.EmployeeMapping()),
		persons:     buildRepo(configs, gormDB, "delivery_persons", flatfile.DeliveryPersonCodec(), postgres.DeliveryPersonMapping()),
		vehicles:    buildRepo(configs, gormDB, "personal_vehicles", flatfile.PersonalVehicleCodec(), postgres.PersonalVehicleMapping()),
		ids:         ids.NewMaxPlusOne(),
	}
}

// buildRepo selects the backend for one entity type. Every entity goes
// through the same switch, so a run never mixes backends.
func buildRepo[T ports.Entity](
	configs Config,
	gormDB *gorm.DB,
	name string,
	codec flatfile.Codec[T],
	mapping postgres.Mapping[T],
) ports.Repository[T] {
	switch configs.StorageBackend {
	case BackendFile:
		return flatfile.NewRepository(filepath.Join(configs.DataDir, name+".txt"), codec)
	case BackendPostgres:
		return postgres.NewRepository(gormDB, mapping)
	default:
		return inmem.NewRepository[T]()
	}
}

func (c *CompositionRoot) CreateCustomerService() services.CustomerService {
	return services.NewCustomerService(c.customers, c.orders, c.deliveries, c.packages, c.ids)
}

func (c *CompositionRoot) CreateSellerService() services.SellerService {
	return services.NewSellerService(c.stores, c.deposits, c.packages, c.deliveries, c.orders, c.ids)
}

func (c *CompositionRoot) CreateEmployeeService() services.EmployeeService {
	return services.NewEmployeeService(c.employees, c.deliveries, c.departments, c.orders, c.ids)
}

func (c *CompositionRoot) CreateDeliveryPersonService() services.DeliveryPersonService {
	return services.NewDeliveryPersonService(c.deliveries, c.persons, c.vehicles, c.orders, c.ids)
}

func (c *CompositionRoot) CreateUserService() services.UserService {
	return services.NewUserService(c.customers, c.employees, c.persons, c.departments, c.ids)
}
