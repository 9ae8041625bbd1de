// Package seed holds the sample dataset every collection starts from.
package seed

import (
	_ "embed"
	"fmt"

	"chauffeur-admin/internal/domain/models"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var sampleData []byte

type Dataset struct {
	Bookings     []models.Booking     `yaml:"bookings"`
	Customers    []models.Customer    `yaml:"customers"`
	Drivers      []models.Driver      `yaml:"drivers"`
	Vehicles     []models.Vehicle     `yaml:"vehicles"`
	Routes       []models.SavedRoute  `yaml:"routes"`
	Transactions []models.Transaction `yaml:"transactions"`
	Invoices     []models.Invoice     `yaml:"invoices"`
}

// Load decodes the embedded sample dataset.
func Load() (Dataset, error) {
	return Parse(sampleData)
}

func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse seed dataset: %w", err)
	}
	return ds, nil
}
