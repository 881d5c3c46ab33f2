package flatfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/model"
)

// timeLayout is the fixed timestamp format of the flat-file records.
const timeLayout = "2006-01-02 15:04:05"

// record joins field values into one line. Values must not contain the
// delimiter; the format provides no escaping.
func record(values ...string) string {
	return strings.Join(values, ",")
}

// fields is a cursor over the split parts of one line. Parse errors stick
// to the cursor and are reported once through Err, keeping the per-entity
// decoders flat.
type fields struct {
	parts []string
	err   error
}

func splitRecord(line string, want int) (*fields, error) {
	parts := strings.Split(line, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(parts))
	}
	return &fields{parts: parts}, nil
}

func (f *fields) Str(i int) string { return f.parts[i] }

func (f *fields) Int(i int) int {
	v, err := strconv.Atoi(f.parts[i])
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func (f *fields) Float(i int) float64 {
	v, err := strconv.ParseFloat(f.parts[i], 64)
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func (f *fields) Bool(i int) bool {
	v, err := strconv.ParseBool(f.parts[i])
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func (f *fields) Time(i int) time.Time {
	v, err := time.Parse(timeLayout, f.parts[i])
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("field %d: %w", i, err)
	}
	return v
}

func (f *fields) Err() error { return f.err }

func itoa(v int) string       { return strconv.Itoa(v) }
func ftoa(v float64) string   { return strconv.FormatFloat(v, 'f', -1, 64) }
func btoa(v bool) string      { return strconv.FormatBool(v) }
func ttoa(v time.Time) string { return v.Format(timeLayout) }

// CustomerCodec maps customers to "id,name,address,phone,email".
func CustomerCodec() Codec[model.Customer] {
	return Codec[model.Customer]{
		Encode: func(c model.Customer) string {
			return record(itoa(c.ID), c.Name, c.Address, c.Phone, c.Email)
		},
		Decode: func(line string) (model.Customer, error) {
			f, err := splitRecord(line, 5)
			if err != nil {
				return model.Customer{}, err
			}
			c := model.Customer{
				ID:      f.Int(0),
				Name:    f.Str(1),
				Address: f.Str(2),
				Phone:   f.Str(3),
				Email:   f.Str(4),
			}
			return c, f.Err()
		},
	}
}

// StoreCodec maps stores to "id,name,address,contact".
func StoreCodec() Codec[model.Store] {
	return Codec[model.Store]{
		Encode: func(s model.Store) string {
			return record(itoa(s.ID), s.Name, s.Address, s.Contact)
		},
		Decode: func(line string) (model.Store, error) {
			f, err := splitRecord(line, 4)
			if err != nil {
				return model.Store{}, err
			}
			s := model.Store{
				ID:      f.Int(0),
				Name:    f.Str(1),
				Address: f.Str(2),
				Contact: f.Str(3),
			}
			return s, f.Err()
		},
	}
}

// DepositCodec maps deposits to "id,storeID,address,status".
func DepositCodec() Codec[model.Deposit] {
	return Codec[model.Deposit]{
		Encode: func(d model.Deposit) string {
			return record(itoa(d.ID), itoa(d.StoreID), d.Address, d.Status)
		},
		Decode: func(line string) (model.Deposit, error) {
			f, err := splitRecord(line, 4)
			if err != nil {
				return model.Deposit{}, err
			}
			d := model.Deposit{
				ID:      f.Int(0),
				StoreID: f.Int(1),
				Address: f.Str(2),
				Status:  f.Str(3),
			}
			return d, f.Err()
		},
	}
}

// PackageCodec maps packages to "id,orderID,depositID,weight,dimensions,cost".
func PackageCodec() Codec[model.Package] {
	return Codec[model.Package]{
		Encode: func(p model.Package) string {
			return record(itoa(p.ID), itoa(p.OrderID), itoa(p.DepositID),
				ftoa(p.Weight), p.Dimensions, ftoa(p.Cost))
		},
		Decode: func(line string) (model.Package, error) {
			f, err := splitRecord(line, 6)
			if err != nil {
				return model.Package{}, err
			}
			p := model.Package{
				ID:         f.Int(0),
				OrderID:    f.Int(1),
				DepositID:  f.Int(2),
				Weight:     f.Float(3),
				Dimensions: f.Str(4),
				Cost:       f.Float(5),
			}
			return p, f.Err()
		},
	}
}

// OrderCodec maps orders to
// "id,customerID,deliveryID,placedAt,deliveryAt,totalCost,status,location".
func OrderCodec() Codec[model.Order] {
	return Codec[model.Order]{
		Encode: func(o model.Order) string {
			return record(itoa(o.ID), itoa(o.CustomerID), itoa(o.DeliveryID),
				ttoa(o.PlacedAt), ttoa(o.DeliveryAt), ftoa(o.TotalCost),
				o.Status, o.Location)
		},
		Decode: func(line string) (model.Order, error) {
			f, err := splitRecord(line, 8)
			if err != nil {
				return model.Order{}, err
			}
			o := model.Order{
				ID:         f.Int(0),
				CustomerID: f.Int(1),
				DeliveryID: f.Int(2),
				PlacedAt:   f.Time(3),
				DeliveryAt: f.Time(4),
				TotalCost:  f.Float(5),
				Status:     f.Str(6),
				Location:   f.Str(7),
			}
			return o, f.Err()
		},
	}
}

// DeliveryCodec maps deliveries to "id,location,employeeID,deliveryPersonID".
func DeliveryCodec() Codec[model.Delivery] {
	return Codec[model.Delivery]{
		Encode: func(d model.Delivery) string {
			return record(itoa(d.ID), d.Location, itoa(d.EmployeeID), itoa(d.DeliveryPersonID))
		},
		Decode: func(line string) (model.Delivery, error) {
			f, err := splitRecord(line, 4)
			if err != nil {
				return model.Delivery{}, err
			}
			d := model.Delivery{
				ID:               f.Int(0),
				Location:         f.Str(1),
				EmployeeID:       f.Int(2),
				DeliveryPersonID: f.Int(3),
			}
			return d, f.Err()
		},
	}
}

// DepartmentCodec maps departments to "id,name,task".
func DepartmentCodec() Codec[model.Department] {
	return Codec[model.Department]{
		Encode: func(d model.Department) string {
			return record(itoa(d.ID), d.Name, d.Task)
		},
		Decode: func(line string) (model.Department, error) {
			f, err := splitRecord(line, 3)
			if err != nil {
				return model.Department{}, err
			}
			d := model.Department{
				ID:   f.Int(0),
				Name: f.Str(1),
				Task: f.Str(2),
			}
			return d, f.Err()
		},
	}
}

// EmployeeCodec maps employees to "id,departmentID,name,phone,license".
func EmployeeCodec() Codec[model.Employee] {
	return Codec[model.Employee]{
		Encode: func(e model.Employee) string {
			return record(itoa(e.ID), itoa(e.DepartmentID), e.Name, e.Phone, e.License)
		},
		Decode: func(line string) (model.Employee, error) {
			f, err := splitRecord(line, 5)
			if err != nil {
				return model.Employee{}, err
			}
			e := model.Employee{
				ID:           f.Int(0),
				DepartmentID: f.Int(1),
				Name:         f.Str(2),
				Phone:        f.Str(3),
				License:      f.Str(4),
			}
			return e, f.Err()
		},
	}
}

// DeliveryPersonCodec maps delivery persons to
// "id,name,phone,verified,license,vehicleID".
func DeliveryPersonCodec() Codec[model.DeliveryPerson] {
	return Codec[model.DeliveryPerson]{
		Encode: func(p model.DeliveryPerson) string {
			return record(itoa(p.ID), p.Name, p.Phone, btoa(p.Verified), p.License, itoa(p.VehicleID))
		},
		Decode: func(line string) (model.DeliveryPerson, error) {
			f, err := splitRecord(line, 6)
			if err != nil {
				return model.DeliveryPerson{}, err
			}
			p := model.DeliveryPerson{
				ID:        f.Int(0),
				Name:      f.Str(1),
				Phone:     f.Str(2),
				Verified:  f.Bool(3),
				License:   f.Str(4),
				VehicleID: f.Int(5),
			}
			return p, f.Err()
		},
	}
}

// PersonalVehicleCodec maps vehicles to
// "id,deliveryPersonID,extraFee,capacity,kind".
func PersonalVehicleCodec() Codec[model.PersonalVehicle] {
	return Codec[model.PersonalVehicle]{
		Encode: func(v model.PersonalVehicle) string {
			return record(itoa(v.ID), itoa(v.DeliveryPersonID), ftoa(v.ExtraFee),
				itoa(v.Capacity), v.Kind.String())
		},
		Decode: func(line string) (model.PersonalVehicle, error) {
			f, err := splitRecord(line, 5)
			if err != nil {
				return model.PersonalVehicle{}, err
			}
			v := model.PersonalVehicle{
				ID:               f.Int(0),
				DeliveryPersonID: f.Int(1),
				ExtraFee:         f.Float(2),
				Capacity:         f.Int(3),
			}
			kind, kindErr := model.TransportKindFromString(f.Str(4))
			if kindErr != nil {
				return model.PersonalVehicle{}, kindErr
			}
			v.Kind = kind
			return v, f.Err()
		},
	}
}
