package handlers

import (
	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/notify"
	"chauffeur-admin/internal/services"
)

// Handlers holds what the route handlers need. Each collection is served
// by the one store instance injected here.
type Handlers struct {
	Services services.Services
	Recorder *notify.Recorder
	Hub      *notify.Hub
}

func (h *Handlers) Bookings() Resource[models.Booking] {
	return Resource[models.Booking]{Label: "Booking", Svc: h.Services.Bookings}
}

func (h *Handlers) Customers() Resource[models.Customer] {
	return Resource[models.Customer]{Label: "Customer", Svc: h.Services.Customers}
}

func (h *Handlers) Drivers() Resource[models.Driver] {
	return Resource[models.Driver]{Label: "Driver", Svc: h.Services.Drivers}
}

func (h *Handlers) Vehicles() Resource[models.Vehicle] {
	return Resource[models.Vehicle]{Label: "Vehicle", Svc: h.Services.Vehicles}
}

func (h *Handlers) Routes() Resource[models.SavedRoute] {
	return Resource[models.SavedRoute]{Label: "Route", Svc: h.Services.Routes}
}

func (h *Handlers) Transactions() Resource[models.Transaction] {
	return Resource[models.Transaction]{Label: "Transaction", Svc: h.Services.Transactions}
}

func (h *Handlers) Invoices() Resource[models.Invoice] {
	return Resource[models.Invoice]{Label: "Invoice", Svc: h.Services.Invoices}
}
