package storage

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"assettracker/internal/data/embedded"
	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

type seedFile struct {
	Offices []seedOffice `yaml:"offices"`
	Assets  []seedAsset  `yaml:"assets"`
}

type seedOffice struct {
	Location string `yaml:"location"`
	Culture  string `yaml:"culture"`
}

type seedAsset struct {
	Type               string  `yaml:"type"`
	Office             string  `yaml:"office"`
	Model              string  `yaml:"model"`
	Price              float64 `yaml:"price"`
	PurchasedMonthsAgo int     `yaml:"purchased_months_ago"`
	OS                 string  `yaml:"os"`
	RAM                string  `yaml:"ram"`
	Processor          string  `yaml:"processor"`
	Operator           string  `yaml:"operator"`
	Number             string  `yaml:"number"`
}

// Seed loads the embedded mock offices and assets when the database has no
// offices yet. It returns the number of assets added.
func (s *Store) Seed(now time.Time) (int, error) {
	return s.SeedFrom(embedded.SeedData, now)
}

// SeedFrom loads mock data from YAML. Purchase dates are computed relative to now.
func (s *Store) SeedFrom(data []byte, now time.Time) (int, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed data: %w", err)
	}

	offices := s.Offices()
	existing, err := offices.GetAll()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		logger.Info("Database already populated, skipping seed", "offices", len(existing))
		return 0, nil
	}

	ids := make(map[string]int, len(file.Offices))
	for _, o := range file.Offices {
		id, err := offices.Add(&assettypes.Office{Location: o.Location, Culture: o.Culture})
		if err != nil {
			return 0, err
		}
		ids[strings.ToLower(o.Location)] = id
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assets := s.Assets()
	for i, a := range file.Assets {
		officeID, ok := ids[strings.ToLower(a.Office)]
		if !ok {
			return i, fmt.Errorf("seed asset %q: office %q: %w", a.Model, a.Office, assettypes.ErrNotFound)
		}

		purchase := today.AddDate(0, -a.PurchasedMonthsAgo, 0)
		_, err := assets.AddFromParams(map[string]string{
			"Type":          a.Type,
			"PurchaseDate":  assettypes.FormatDate(purchase),
			"ExpiryDate":    assettypes.FormatDate(purchase.AddDate(3, 0, 0)),
			"Price":         fmt.Sprint(a.Price),
			"ModelName":     a.Model,
			"OfficeID":      fmt.Sprint(officeID),
			"OS":            a.OS,
			"RAM":           a.RAM,
			"Processor":     a.Processor,
			"PhoneOperator": a.Operator,
			"PhoneNumber":   a.Number,
		})
		if err != nil {
			return i, fmt.Errorf("seed asset %q: %w", a.Model, err)
		}
	}

	logger.Info("Seeded database", "offices", len(file.Offices), "assets", len(file.Assets))
	return len(file.Assets), nil
}
