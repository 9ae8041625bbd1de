package forms

import (
	"chauffeur-admin/internal/domain/models"
)

func NewDriverForm() *Controller[models.Driver] {
	return NewController(BlankDriver, ValidateDriver)
}

func BlankDriver() models.Driver {
	return models.Driver{
		Status:       models.DriverActive,
		Availability: models.DriverAvailable,
		Languages:    []string{},
	}
}

func ValidateDriver(d models.Driver) error {
	return firstError(
		required("name", d.Name),
		required("email", d.Email),
		required("phone", d.Phone),
		required("license", d.License),
		oneOf("status", string(d.Status),
			string(models.DriverActive), string(models.DriverInactive),
			string(models.DriverOnBreak), string(models.DriverOffDuty)),
		oneOf("availability", string(d.Availability),
			string(models.DriverAvailable), string(models.DriverBusy), string(models.DriverUnavailable)),
	)
}

func NewVehicleForm() *Controller[models.Vehicle] {
	return NewController(BlankVehicle, ValidateVehicle)
}

func BlankVehicle() models.Vehicle {
	return models.Vehicle{Status: models.VehicleAvailable, Type: models.VehicleSedan}
}

func ValidateVehicle(v models.Vehicle) error {
	return firstError(
		required("make", v.Make),
		required("model", v.Model),
		required("license", v.License),
		oneOf("status", string(v.Status),
			string(models.VehicleAvailable), string(models.VehicleInUse),
			string(models.VehicleMaintenance), string(models.VehicleRetired)),
		oneOf("type", string(v.Type),
			string(models.VehicleSedan), string(models.VehicleSUV), string(models.VehicleLuxury),
			string(models.VehicleVan), string(models.VehicleLimousine)),
	)
}

func NewRouteForm() *Controller[models.SavedRoute] {
	return NewController(BlankRoute, ValidateRoute)
}

// BlankRoute starts with a single pickup stop.
func BlankRoute() models.SavedRoute {
	return models.SavedRoute{
		Category: models.RouteCustom,
		Status:   models.RouteActive,
		Stops: []models.RouteStop{
			{ID: "S001", EstimatedTime: "0 min", Type: models.StopPickup},
		},
	}
}

func ValidateRoute(r models.SavedRoute) error {
	if err := firstError(
		required("name", r.Name),
		oneOf("category", string(r.Category),
			string(models.RouteAirport), string(models.RouteHotel),
			string(models.RouteBusiness), string(models.RouteCustom)),
		oneOf("status", string(r.Status), string(models.RouteActive), string(models.RouteArchived)),
	); err != nil {
		return err
	}
	if len(r.Stops) == 0 {
		return required("stops", "")
	}
	for _, s := range r.Stops {
		if err := required("stops.name", s.Name); err != nil {
			return err
		}
	}
	return nil
}

func NewTransactionForm() *Controller[models.Transaction] {
	return NewController(BlankTransaction, ValidateTransaction)
}

func BlankTransaction() models.Transaction {
	return models.Transaction{Type: models.TransactionRevenue, Status: models.TransactionPending}
}

func ValidateTransaction(t models.Transaction) error {
	return firstError(
		required("description", t.Description),
		required("date", t.Date),
		oneOf("type", string(t.Type), string(models.TransactionRevenue), string(models.TransactionExpense)),
		oneOf("status", string(t.Status), string(models.TransactionCompleted), string(models.TransactionPending)),
	)
}

func NewInvoiceForm() *Controller[models.Invoice] {
	return NewController(BlankInvoice, ValidateInvoice)
}

func BlankInvoice() models.Invoice {
	return models.Invoice{Status: models.InvoicePending}
}

func ValidateInvoice(i models.Invoice) error {
	return firstError(
		required("customer", i.Customer),
		required("dueDate", i.DueDate),
		oneOf("status", string(i.Status),
			string(models.InvoicePending), string(models.InvoiceOverdue), string(models.InvoicePaid)),
	)
}
