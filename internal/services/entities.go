package services

import (
	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/forms"
	"chauffeur-admin/internal/repositories"
	"chauffeur-admin/internal/seed"
)

type (
	BookingService     = EntityService[models.Booking]
	CustomerService    = EntityService[models.Customer]
	DriverService      = EntityService[models.Driver]
	VehicleService     = EntityService[models.Vehicle]
	RouteService       = EntityService[models.SavedRoute]
	TransactionService = EntityService[models.Transaction]
	InvoiceService     = EntityService[models.Invoice]
)

// NewBookingService stores bookings submitted without explicit legs with the
// default leg following the booking's own pickup and destination. Submitted
// legs are renumbered densely and missing leg identifiers are assigned.
func NewBookingService(repo repositories.BookingRepo) BookingService {
	return BookingService{
		Resource:  "booking",
		Store:     repo.EntityStore,
		Predicate: repositories.BookingPredicate,
		NewForm:   func() *forms.Controller[models.Booking] { return forms.NewBookingForm().Controller },
		Prepare: func(c *forms.Controller[models.Booking]) error {
			f := &forms.BookingForm{Controller: c}
			if err := f.FillDefaultLeg(); err != nil {
				return err
			}
			return f.NormalizeLegs()
		},
	}
}

func NewCustomerService(repo repositories.CustomerRepo) CustomerService {
	return CustomerService{
		Resource:  "customer",
		Store:     repo.EntityStore,
		Predicate: repositories.CustomerPredicate,
		NewForm:   func() *forms.Controller[models.Customer] { return forms.NewCustomerForm().Controller },
	}
}

func NewDriverService(repo repositories.DriverRepo) DriverService {
	return DriverService{
		Resource:  "driver",
		Store:     repo.EntityStore,
		Predicate: repositories.DriverPredicate,
		NewForm:   forms.NewDriverForm,
	}
}

func NewVehicleService(repo repositories.VehicleRepo) VehicleService {
	return VehicleService{
		Resource:  "vehicle",
		Store:     repo.EntityStore,
		Predicate: repositories.VehiclePredicate,
		NewForm:   forms.NewVehicleForm,
	}
}

func NewRouteService(repo repositories.RouteRepo) RouteService {
	return RouteService{
		Resource:  "route",
		Store:     repo.EntityStore,
		Predicate: repositories.RoutePredicate,
		NewForm:   forms.NewRouteForm,
	}
}

func NewTransactionService(repo repositories.TransactionRepo) TransactionService {
	return TransactionService{
		Resource:  "transaction",
		Store:     repo.EntityStore,
		Predicate: repositories.TransactionPredicate,
		NewForm:   forms.NewTransactionForm,
	}
}

func NewInvoiceService(repo repositories.InvoiceRepo) InvoiceService {
	return InvoiceService{
		Resource:  "invoice",
		Store:     repo.EntityStore,
		Predicate: repositories.InvoicePredicate,
		NewForm:   forms.NewInvoiceForm,
	}
}

// Services bundles every service the HTTP layer needs.
type Services struct {
	Bookings     BookingService
	Customers    CustomerService
	Drivers      DriverService
	Vehicles     VehicleService
	Routes       RouteService
	Transactions TransactionService
	Invoices     InvoiceService
}

// Repos bundles one repository per entity type.
type Repos struct {
	Bookings     repositories.BookingRepo
	Customers    repositories.CustomerRepo
	Drivers      repositories.DriverRepo
	Vehicles     repositories.VehicleRepo
	Routes       repositories.RouteRepo
	Transactions repositories.TransactionRepo
	Invoices     repositories.InvoiceRepo
}

// NewRepos builds one repository per entity type seeded from data.
func NewRepos(cfg repositories.Config, data seed.Dataset) Repos {
	return Repos{
		Bookings:     repositories.NewBookingRepo(cfg, data.Bookings),
		Customers:    repositories.NewCustomerRepo(cfg, data.Customers),
		Drivers:      repositories.NewDriverRepo(cfg, data.Drivers),
		Vehicles:     repositories.NewVehicleRepo(cfg, data.Vehicles),
		Routes:       repositories.NewRouteRepo(cfg, data.Routes),
		Transactions: repositories.NewTransactionRepo(cfg, data.Transactions),
		Invoices:     repositories.NewInvoiceRepo(cfg, data.Invoices),
	}
}

// Len reports the record count of each store keyed by entity.
func (r Repos) Len() map[string]int {
	return map[string]int{
		r.Bookings.Entity():     r.Bookings.Len(),
		r.Customers.Entity():    r.Customers.Len(),
		r.Drivers.Entity():      r.Drivers.Len(),
		r.Vehicles.Entity():     r.Vehicles.Len(),
		r.Routes.Entity():       r.Routes.Len(),
		r.Transactions.Entity(): r.Transactions.Len(),
		r.Invoices.Entity():     r.Invoices.Len(),
	}
}

func New(r Repos) Services {
	return Services{
		Bookings:     NewBookingService(r.Bookings),
		Customers:    NewCustomerService(r.Customers),
		Drivers:      NewDriverService(r.Drivers),
		Vehicles:     NewVehicleService(r.Vehicles),
		Routes:       NewRouteService(r.Routes),
		Transactions: NewTransactionService(r.Transactions),
		Invoices:     NewInvoiceService(r.Invoices),
	}
}

// Stats returns the screen summaries derived from the current collections.
func (s Services) Stats() Stats {
	return Stats{
		Drivers:      s.Drivers,
		Vehicles:     s.Vehicles,
		Routes:       s.Routes,
		Transactions: s.Transactions,
		Invoices:     s.Invoices,
		Bookings:     s.Bookings,
		Customers:    s.Customers,
	}
}
