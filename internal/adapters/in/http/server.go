package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/domain/model"
	"logistics/internal/core/services"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server exposes the domain services over HTTP. It coordinates between
// echo handlers and the service layer; every handler binds its input,
// delegates and translates the service error into a status code.
type Server struct {
	customers services.CustomerService
	sellers   services.SellerService
	employees services.EmployeeService
	drivers   services.DeliveryPersonService
	users     services.UserService
}

// NewServer creates a new HTTP server over the five domain services.
func NewServer(
	customers services.CustomerService,
	sellers services.SellerService,
	employees services.EmployeeService,
	drivers services.DeliveryPersonService,
	users services.UserService,
) *Server {
	return &Server{
		customers: customers,
		sellers:   sellers,
		employees: employees,
		drivers:   drivers,
		users:     users,
	}
}

// RegisterRoutes mounts every handler under /api/v1 and installs the
// request id middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(requestID)

	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.GetCustomers)
	v1.DELETE("/customers/:customerId", s.DeleteCustomer)
	v1.GET("/customers/:customerId/orders", s.GetCustomerOrders)
	v1.POST("/customers/:customerId/orders", s.PlaceOrder)
	v1.DELETE("/customers/:customerId/orders/:orderId", s.RemoveOrder)

	v1.GET("/orders", s.GetOrders)
	v1.PUT("/orders/:orderId/delivery-date", s.ScheduleDelivery)
	v1.POST("/orders/:orderId/cost", s.RecomputeOrderCost)
	v1.GET("/orders/:orderId/packages", s.GetOrderPackages)

	v1.POST("/stores", s.RegisterStore)
	v1.GET("/stores", s.GetStores)
	v1.DELETE("/stores/:storeId", s.RemoveStore)
	v1.POST("/stores/:storeId/deposits", s.RegisterDeposit)
	v1.DELETE("/stores/:storeId/deposits/:depositId", s.RemoveDeposit)
	v1.GET("/deposits", s.GetDeposits)
	v1.GET("/deposits/:depositId/packages", s.GetDepositPackages)
	v1.PUT("/deposits/:depositId/packages/:packageId", s.StorePackage)

	v1.POST("/packages", s.CreatePackage)
	v1.GET("/packages", s.GetPackages)
	v1.DELETE("/packages/:packageId", s.RemovePackage)

	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/deliveries", s.GetDeliveries)
	v1.GET("/deliveries/pending", s.GetPendingDeliveries)

	v1.POST("/departments", s.CreateDepartment)
	v1.GET("/departments", s.GetDepartments)
	v1.GET("/departments/:departmentId/employees", s.GetDepartmentEmployees)

	v1.POST("/employees", s.CreateEmployee)
	v1.GET("/employees", s.GetEmployees)
	v1.DELETE("/employees/:employeeId", s.UnenrollEmployee)
	v1.GET("/employees/:employeeId/deliveries", s.GetEmployeeDeliveries)
	v1.POST("/employees/:employeeId/deliveries/:deliveryId", s.EmployeePickDelivery)
	v1.DELETE("/employees/:employeeId/deliveries/:deliveryId", s.EmployeeDropDelivery)

	v1.POST("/delivery-persons", s.EnrollDriver)
	v1.GET("/delivery-persons", s.GetDeliveryPersons)
	v1.DELETE("/delivery-persons/:personId", s.UnenrollDeliveryPerson)
	v1.GET("/delivery-persons/:personId/deliveries", s.GetDriverDeliveries)
	v1.POST("/delivery-persons/:personId/deliveries/:deliveryId", s.DriverPickDelivery)
	v1.PUT("/delivery-persons/:personId/vehicle", s.AssignVehicle)

	v1.POST("/vehicles", s.RegisterVehicle)
	v1.GET("/vehicles", s.GetVehicles)

	v1.GET("/transport-kinds", s.GetTransportKinds)
}

// requestID stamps every response with a request identifier so log lines
// and client reports can be correlated.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(echo.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		return next(c)
	}
}

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRule):
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func pathInt(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

type createdResponse struct {
	ID int `json:"id"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.customers.CreateCustomer(c.Request().Context(), body.Name, body.Address, body.Phone, body.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(c echo.Context) error {
	customers, err := s.customers.Customers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

// DeleteCustomer handles DELETE /api/v1/customers/{customerId}.
func (s *Server) DeleteCustomer(c echo.Context) error {
	customerID, err := pathInt(c, "customerId")
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	if err := s.users.DeleteCustomer(c.Request().Context(), customerID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	customerID, err := pathInt(c, "customerId")
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	orders, err := s.customers.OrdersFromCustomer(c.Request().Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// PlaceOrder handles POST /api/v1/customers/{customerId}/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	customerID, err := pathInt(c, "customerId")
	if err != nil {
		return badRequest(c, "invalid customer id")
	}

	var body struct {
		DeliveryAt time.Time `json:"deliveryAt"`
		PackageIDs []int     `json:"packageIds"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.customers.PlaceOrder(c.Request().Context(), customerID, body.DeliveryAt, body.PackageIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// RemoveOrder handles DELETE /api/v1/customers/{customerId}/orders/{orderId}.
func (s *Server) RemoveOrder(c echo.Context) error {
	customerID, err := pathInt(c, "customerId")
	if err != nil {
		return badRequest(c, "invalid customer id")
	}
	orderID, err := pathInt(c, "orderId")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	if err := s.customers.RemoveOrder(c.Request().Context(), customerID, orderID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders. The optional location query
// parameter narrows the listing to one delivery location; sort=cost
// returns the orders by total cost, highest first.
func (s *Server) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		orders []model.Order
		err    error
	)
	if location := c.QueryParam("location"); location != "" {
		orders, err = s.sellers.FilterOrdersByLocation(ctx, location)
	} else {
		orders, err = s.customers.Orders(ctx)
	}
	if err != nil {
		return respondError(c, err)
	}

	if c.QueryParam("sort") == "cost" {
		orders = s.customers.SortOrdersByCostDescending(orders)
	}
	return c.JSON(http.StatusOK, orders)
}

// ScheduleDelivery handles PUT /api/v1/orders/{orderId}/delivery-date.
func (s *Server) ScheduleDelivery(c echo.Context) error {
	orderID, err := pathInt(c, "orderId")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var body struct {
		DeliveryAt time.Time `json:"deliveryAt"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := s.customers.ScheduleDelivery(c.Request().Context(), orderID, body.DeliveryAt); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RecomputeOrderCost handles POST /api/v1/orders/{orderId}/cost.
func (s *Server) RecomputeOrderCost(c echo.Context) error {
	orderID, err := pathInt(c, "orderId")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	total, err := s.customers.RecomputeOrderCost(c.Request().Context(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]float64{"totalCost": total})
}

// GetOrderPackages handles GET /api/v1/orders/{orderId}/packages.
func (s *Server) GetOrderPackages(c echo.Context) error {
	orderID, err := pathInt(c, "orderId")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	packages, err := s.sellers.PackagesFromOrder(c.Request().Context(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, packages)
}

// RegisterStore handles POST /api/v1/stores.
func (s *Server) RegisterStore(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Contact string `json:"contact"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.sellers.RegisterStore(c.Request().Context(), body.Name, body.Address, body.Contact)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetStores handles GET /api/v1/stores.
func (s *Server) GetStores(c echo.Context) error {
	stores, err := s.sellers.Stores(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stores)
}

// RemoveStore handles DELETE /api/v1/stores/{storeId}.
func (s *Server) RemoveStore(c echo.Context) error {
	storeID, err := pathInt(c, "storeId")
	if err != nil {
		return badRequest(c, "invalid store id")
	}

	if err := s.sellers.RemoveStore(c.Request().Context(), storeID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RegisterDeposit handles POST /api/v1/stores/{storeId}/deposits.
func (s *Server) RegisterDeposit(c echo.Context) error {
	storeID, err := pathInt(c, "storeId")
	if err != nil {
		return badRequest(c, "invalid store id")
	}

	var body struct {
		Address string `json:"address"`
		Status  string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.sellers.RegisterDeposit(c.Request().Context(), storeID, body.Address, body.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// RemoveDeposit handles DELETE /api/v1/stores/{storeId}/deposits/{depositId}.
func (s *Server) RemoveDeposit(c echo.Context) error {
	storeID, err := pathInt(c, "storeId")
	if err != nil {
		return badRequest(c, "invalid store id")
	}
	depositID, err := pathInt(c, "depositId")
	if err != nil {
		return badRequest(c, "invalid deposit id")
	}

	if err := s.sellers.RemoveDeposit(c.Request().Context(), storeID, depositID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetDeposits handles GET /api/v1/deposits.
func (s *Server) GetDeposits(c echo.Context) error {
	deposits, err := s.sellers.Deposits(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deposits)
}

// GetDepositPackages handles GET /api/v1/deposits/{depositId}/packages.
func (s *Server) GetDepositPackages(c echo.Context) error {
	depositID, err := pathInt(c, "depositId")
	if err != nil {
		return badRequest(c, "invalid deposit id")
	}

	packages, err := s.sellers.PackagesInDeposit(c.Request().Context(), depositID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, packages)
}

// StorePackage handles PUT /api/v1/deposits/{depositId}/packages/{packageId}.
func (s *Server) StorePackage(c echo.Context) error {
	depositID, err := pathInt(c, "depositId")
	if err != nil {
		return badRequest(c, "invalid deposit id")
	}
	packageID, err := pathInt(c, "packageId")
	if err != nil {
		return badRequest(c, "invalid package id")
	}

	if err := s.sellers.StorePackage(c.Request().Context(), depositID, packageID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(c echo.Context) error {
	var body struct {
		Weight     float64 `json:"weight"`
		Dimensions string  `json:"dimensions"`
		Cost       float64 `json:"cost"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.sellers.CreatePackage(c.Request().Context(), body.Weight, body.Dimensions, body.Cost)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetPackages handles GET /api/v1/packages.
func (s *Server) GetPackages(c echo.Context) error {
	packages, err := s.sellers.Packages(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, packages)
}

// RemovePackage handles DELETE /api/v1/packages/{packageId}.
func (s *Server) RemovePackage(c echo.Context) error {
	packageID, err := pathInt(c, "packageId")
	if err != nil {
		return badRequest(c, "invalid package id")
	}

	if err := s.sellers.RemovePackage(c.Request().Context(), packageID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateDelivery handles POST /api/v1/deliveries. The delivery gathers
// every order of the given location.
func (s *Server) CreateDelivery(c echo.Context) error {
	var body struct {
		Location string `json:"location"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Location == "" {
		return badRequest(c, "location is required")
	}

	id, err := s.sellers.CreateDelivery(c.Request().Context(), body.Location)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetDeliveries(c echo.Context) error {
	deliveries, err := s.customers.Deliveries(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deliveries)
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending.
func (s *Server) GetPendingDeliveries(c echo.Context) error {
	deliveries, err := s.drivers.DeliveriesWithPendingOrders(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deliveries)
}

// CreateDepartment handles POST /api/v1/departments.
func (s *Server) CreateDepartment(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
		Task string `json:"task"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.users.CreateDepartment(c.Request().Context(), body.Name, body.Task)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetDepartments handles GET /api/v1/departments.
func (s *Server) GetDepartments(c echo.Context) error {
	departments, err := s.users.Departments(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, departments)
}

// GetDepartmentEmployees handles GET /api/v1/departments/{departmentId}/employees.
func (s *Server) GetDepartmentEmployees(c echo.Context) error {
	departmentID, err := pathInt(c, "departmentId")
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	staff, err := s.employees.EmployeesOfDepartment(c.Request().Context(), departmentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(c echo.Context) error {
	var body struct {
		DepartmentID int    `json:"departmentId"`
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		License      string `json:"license"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.employees.CreateEmployee(c.Request().Context(), body.DepartmentID, body.Name, body.Phone, body.License)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetEmployees handles GET /api/v1/employees.
func (s *Server) GetEmployees(c echo.Context) error {
	staff, err := s.employees.Employees(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// UnenrollEmployee handles DELETE /api/v1/employees/{employeeId}.
func (s *Server) UnenrollEmployee(c echo.Context) error {
	employeeID, err := pathInt(c, "employeeId")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	if err := s.users.UnenrollEmployee(c.Request().Context(), employeeID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetEmployeeDeliveries handles GET /api/v1/employees/{employeeId}/deliveries.
// With sort=earliest the deliveries come back ordered by the earliest
// delivery date among their orders.
func (s *Server) GetEmployeeDeliveries(c echo.Context) error {
	employeeID, err := pathInt(c, "employeeId")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	ctx := c.Request().Context()
	deliveries, err := s.employees.DeliveriesForEmployee(ctx, employeeID)
	if err != nil {
		return respondError(c, err)
	}

	if c.QueryParam("sort") == "earliest" {
		deliveries, err = s.employees.SortDeliveriesByEarliestOrderDate(ctx, deliveries)
		if err != nil {
			return respondError(c, err)
		}
	}
	return c.JSON(http.StatusOK, deliveries)
}

// EmployeePickDelivery handles POST /api/v1/employees/{employeeId}/deliveries/{deliveryId}.
func (s *Server) EmployeePickDelivery(c echo.Context) error {
	employeeID, err := pathInt(c, "employeeId")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	deliveryID, err := pathInt(c, "deliveryId")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	if err := s.employees.PickDelivery(c.Request().Context(), employeeID, deliveryID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// EmployeeDropDelivery handles DELETE /api/v1/employees/{employeeId}/deliveries/{deliveryId}.
func (s *Server) EmployeeDropDelivery(c echo.Context) error {
	employeeID, err := pathInt(c, "employeeId")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	deliveryID, err := pathInt(c, "deliveryId")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	if err := s.employees.DropDelivery(c.Request().Context(), employeeID, deliveryID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// EnrollDriver handles POST /api/v1/delivery-persons.
func (s *Server) EnrollDriver(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		License string `json:"license"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := s.drivers.EnrollAsDriver(c.Request().Context(), body.Name, body.Phone, body.License)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetDeliveryPersons handles GET /api/v1/delivery-persons.
func (s *Server) GetDeliveryPersons(c echo.Context) error {
	persons, err := s.drivers.DeliveryPersons(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, persons)
}

// UnenrollDeliveryPerson handles DELETE /api/v1/delivery-persons/{personId}.
func (s *Server) UnenrollDeliveryPerson(c echo.Context) error {
	personID, err := pathInt(c, "personId")
	if err != nil {
		return badRequest(c, "invalid delivery person id")
	}

	if err := s.users.UnenrollDeliveryPerson(c.Request().Context(), personID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetDriverDeliveries handles GET /api/v1/delivery-persons/{personId}/deliveries.
func (s *Server) GetDriverDeliveries(c echo.Context) error {
	personID, err := pathInt(c, "personId")
	if err != nil {
		return badRequest(c, "invalid delivery person id")
	}

	deliveries, err := s.drivers.DeliveriesForDeliveryPerson(c.Request().Context(), personID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deliveries)
}

// DriverPickDelivery handles POST /api/v1/delivery-persons/{personId}/deliveries/{deliveryId}.
func (s *Server) DriverPickDelivery(c echo.Context) error {
	personID, err := pathInt(c, "personId")
	if err != nil {
		return badRequest(c, "invalid delivery person id")
	}
	deliveryID, err := pathInt(c, "deliveryId")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	if err := s.drivers.PickDelivery(c.Request().Context(), personID, deliveryID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignVehicle handles PUT /api/v1/delivery-persons/{personId}/vehicle.
func (s *Server) AssignVehicle(c echo.Context) error {
	personID, err := pathInt(c, "personId")
	if err != nil {
		return badRequest(c, "invalid delivery person id")
	}

	var body struct {
		VehicleID int `json:"vehicleId"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := s.drivers.AssignPersonalVehicle(c.Request().Context(), personID, body.VehicleID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(c echo.Context) error {
	var body struct {
		ExtraFee float64 `json:"extraFee"`
		Capacity int     `json:"capacity"`
		Kind     string  `json:"kind"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	kind, err := model.TransportKindFromString(body.Kind)
	if err != nil {
		return badRequest(c, err.Error())
	}

	id, err := s.drivers.RegisterVehicle(c.Request().Context(), body.ExtraFee, body.Capacity, kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(c echo.Context) error {
	vehicles, err := s.drivers.PersonalVehicles(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// GetTransportKinds handles GET /api/v1/transport-kinds.
func (s *Server) GetTransportKinds(c echo.Context) error {
	return c.JSON(http.StatusOK, s.users.TransportKinds())
}
