package postgres

import "logistics/internal/core/domain/model"

// CustomerMapping maps customers onto the customers table.
func CustomerMapping() Mapping[model.Customer] {
	return Mapping[model.Customer]{
		Table:    "customers",
		IDColumn: "id",
		ToRow: func(c model.Customer) map[string]any {
			return map[string]any{
				"id":      c.ID,
				"name":    c.Name,
				"address": c.Address,
				"phone":   c.Phone,
				"email":   c.Email,
			}
		},
		FromRow: func(row Row) (model.Customer, error) {
			return model.Customer{
				ID:      row.Int("id"),
				Name:    row.Str("name"),
				Address: row.Str("address"),
				Phone:   row.Str("phone"),
				Email:   row.Str("email"),
			}, nil
		},
	}
}

// StoreMapping maps stores onto the stores table.
func StoreMapping() Mapping[model.Store] {
	return Mapping[model.Store]{
		Table:    "stores",
		IDColumn: "id",
		ToRow: func(s model.Store) map[string]any {
			return map[string]any{
				"id":      s.ID,
				"name":    s.Name,
				"address": s.Address,
				"contact": s.Contact,
			}
		},
		FromRow: func(row Row) (model.Store, error) {
			return model.Store{
				ID:      row.Int("id"),
				Name:    row.Str("name"),
				Address: row.Str("address"),
				Contact: row.Str("contact"),
			}, nil
		},
	}
}

// DepositMapping maps deposits onto the deposits table.
func DepositMapping() Mapping[model.Deposit] {
	return Mapping[model.Deposit]{
		Table:    "deposits",
		IDColumn: "id",
		ToRow: func(d model.Deposit) map[string]any {
			return map[string]any{
				"id":       d.ID,
				"store_id": d.StoreID,
				"address":  d.Address,
				"status":   d.Status,
			}
		},
		FromRow: func(row Row) (model.Deposit, error) {
			return model.Deposit{
				ID:      row.Int("id"),
				StoreID: row.Int("store_id"),
				Address: row.Str("address"),
				Status:  row.Str("status"),
			}, nil
		},
	}
}

// PackageMapping maps packages onto the packages table.
func PackageMapping() Mapping[model.Package] {
	return Mapping[model.Package]{
		Table:    "packages",
		IDColumn: "id",
		ToRow: func(p model.Package) map[string]any {
			return map[string]any{
				"id":         p.ID,
				"order_id":   p.OrderID,
				"deposit_id": p.DepositID,
				"weight":     p.Weight,
				"dimensions": p.Dimensions,
				"cost":       p.Cost,
			}
		},
		FromRow: func(row Row) (model.Package, error) {
			return model.Package{
				ID:         row.Int("id"),
				OrderID:    row.Int("order_id"),
				DepositID:  row.Int("deposit_id"),
				Weight:     row.Float("weight"),
				Dimensions: row.Str("dimensions"),
				Cost:       row.Float("cost"),
			}, nil
		},
	}
}

// OrderMapping maps orders onto the orders table.
func OrderMapping() Mapping[model.Order] {
	return Mapping[model.Order]{
		Table:    "orders",
		IDColumn: "id",
		ToRow: func(o model.Order) map[string]any {
			return map[string]any{
				"id":          o.ID,
				"customer_id": o.CustomerID,
				"delivery_id": o.DeliveryID,
				"placed_at":   o.PlacedAt,
				"delivery_at": o.DeliveryAt,
				"total_cost":  o.TotalCost,
				"status":      o.Status,
				"location":    o.Location,
			}
		},
		FromRow: func(row Row) (model.Order, error) {
			return model.Order{
				ID:         row.Int("id"),
				CustomerID: row.Int("customer_id"),
				DeliveryID: row.Int("delivery_id"),
				PlacedAt:   row.Time("placed_at"),
				DeliveryAt: row.Time("delivery_at"),
				TotalCost:  row.Float("total_cost"),
				Status:     row.Str("status"),
				Location:   row.Str("location"),
			}, nil
		},
	}
}

// DeliveryMapping maps deliveries onto the deliveries table.
func DeliveryMapping() Mapping[model.Delivery] {
	return Mapping[model.Delivery]{
		Table:    "deliveries",
		IDColumn: "id",
		ToRow: func(d model.Delivery) map[string]any {
			return map[string]any{
				"id":                 d.ID,
				"location":           d.Location,
				"employee_id":        d.EmployeeID,
				"delivery_person_id": d.DeliveryPersonID,
			}
		},
		FromRow: func(row Row) (model.Delivery, error) {
			return model.Delivery{
				ID:               row.Int("id"),
				Location:         row.Str("location"),
				EmployeeID:       row.Int("employee_id"),
				DeliveryPersonID: row.Int("delivery_person_id"),
			}, nil
		},
	}
}

// DepartmentMapping maps departments onto the departments table.
func DepartmentMapping() Mapping[model.Department] {
	return Mapping[model.Department]{
		Table:    "departments",
		IDColumn: "id",
		ToRow: func(d model.Department) map[string]any {
			return map[string]any{
				"id":   d.ID,
				"name": d.Name,
				"task": d.Task,
			}
		},
		FromRow: func(row Row) (model.Department, error) {
			return model.Department{
				ID:   row.Int("id"),
				Name: row.Str("name"),
				Task: row.Str("task"),
			}, nil
		},
	}
}

// EmployeeMapping maps employees onto the employees table.
func EmployeeMapping() Mapping[model.Employee] {
	return Mapping[model.Employee]{
		Table:    "employees",
		IDColumn: "id",
		ToRow: func(e model.Employee) map[string]any {
			return map[string]any{
				"id":            e.ID,
				"department_id": e.DepartmentID,
				"name":          e.Name,
				"phone":         e.Phone,
				"license":       e.License,
			}
		},
		FromRow: func(row Row) (model.Employee, error) {
			return model.Employee{
				ID:           row.Int("id"),
				DepartmentID: row.Int("department_id"),
				Name:         row.Str("name"),
				Phone:        row.Str("phone"),
				License:      row.Str("license"),
			}, nil
		},
	}
}

// DeliveryPersonMapping maps delivery persons onto the delivery_persons table.
func DeliveryPersonMapping() Mapping[model.DeliveryPerson] {
	return Mapping[model.DeliveryPerson]{
		Table:    "delivery_persons",
		IDColumn: "id",
		ToRow: func(p model.DeliveryPerson) map[string]any {
			return map[string]any{
				"id":         p.ID,
				"name":       p.Name,
				"phone":      p.Phone,
				"verified":   p.Verified,
				"license":    p.License,
				"vehicle_id": p.VehicleID,
			}
		},
		FromRow: func(row Row) (model.DeliveryPerson, error) {
			return model.DeliveryPerson{
				ID:        row.Int("id"),
				Name:      row.Str("name"),
				Phone:     row.Str("phone"),
				Verified:  row.Bool("verified"),
				License:   row.Str("license"),
				VehicleID: row.Int("vehicle_id"),
			}, nil
		},
	}
}

// PersonalVehicleMapping maps vehicles onto the personal_vehicles table.
// The transport kind is stored by name.
func PersonalVehicleMapping() Mapping[model.PersonalVehicle] {
	return Mapping[model.PersonalVehicle]{
		Table:    "personal_vehicles",
		IDColumn: "id",
		ToRow: func(v model.PersonalVehicle) map[string]any {
			return map[string]any{
				"id":                 v.ID,
				"delivery_person_id": v.DeliveryPersonID,
				"extra_fee":          v.ExtraFee,
				"capacity":           v.Capacity,
				"kind":               v.Kind.String(),
			}
		},
		FromRow: func(row Row) (model.PersonalVehicle, error) {
			kind, err := model.TransportKindFromString(row.Str("kind"))
			if err != nil {
				return model.PersonalVehicle{}, err
			}
			return model.PersonalVehicle{
				ID:               row.Int("id"),
				DeliveryPersonID: row.Int("delivery_person_id"),
				ExtraFee:         row.Float("extra_fee"),
				Capacity:         row.Int("capacity"),
				Kind:             kind,
			}, nil
		},
	}
}
