// Package assettypes defines the core data structures shared by AssetTracker components.
// It holds the asset record model, the office model, the per-variant field descriptor tables
// and the collaborator interfaces consumed by the command engine.
package assettypes

import (
	"fmt"
	"strings"
	"time"
)

// Kind tags which variant payload an Asset carries.
type Kind string

const (
	// KindComputer marks an asset carrying a Computer payload.
	KindComputer Kind = "Computer"
	// KindCellphone marks an asset carrying a Cellphone payload.
	KindCellphone Kind = "Cellphone"
)

// ParseKind resolves a user supplied kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "computer":
		return KindComputer, nil
	case "cellphone":
		return KindCellphone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Computer holds the fields specific to computer assets.
type Computer struct {
	OperatingSystem string
	RAM             string
	Processor       string
}

// Cellphone holds the fields specific to cellphone assets.
type Cellphone struct {
	PhoneOperator string
	PhoneNumber   string
}

// Asset is a tracked record. The common header is shared by all variants and exactly
// one of Computer or Cellphone is set, as indicated by Kind.
type Asset struct {
	ID           int
	Kind         Kind
	PurchaseDate time.Time
	ExpiryDate   time.Time
	// Price is stored in USD.
	Price     float64
	ModelName string
	OfficeID  int

	Computer  *Computer
	Cellphone *Cellphone
}

// NewComputer creates a computer asset with an unassigned id.
func NewComputer(purchase, expiry time.Time, price float64, model string, officeID int, c Computer) *Asset {
	return &Asset{
		Kind:         KindComputer,
		PurchaseDate: purchase,
		ExpiryDate:   expiry,
		Price:        price,
		ModelName:    model,
		OfficeID:     officeID,
		Computer:     &c,
	}
}

// NewCellphone creates a cellphone asset with an unassigned id.
func NewCellphone(purchase, expiry time.Time, price float64, model string, officeID int, c Cellphone) *Asset {
	return &Asset{
		Kind:         KindCellphone,
		PurchaseDate: purchase,
		ExpiryDate:   expiry,
		Price:        price,
		ModelName:    model,
		OfficeID:     officeID,
		Cellphone:    &c,
	}
}

// Clone returns a deep copy that shares no mutable state with a.
func (a *Asset) Clone() *Asset {
	c := *a
	if a.Computer != nil {
		payload := *a.Computer
		c.Computer = &payload
	}
	if a.Cellphone != nil {
		payload := *a.Cellphone
		c.Cellphone = &payload
	}
	return &c
}

// Validate checks that the payload matches the kind tag.
func (a *Asset) Validate() error {
	switch a.Kind {
	case KindComputer:
		if a.Computer == nil || a.Cellphone != nil {
			return fmt.Errorf("computer asset %d has a mismatched payload", a.ID)
		}
	case KindCellphone:
		if a.Cellphone == nil || a.Computer != nil {
			return fmt.Errorf("cellphone asset %d has a mismatched payload", a.ID)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, a.Kind)
	}
	return nil
}

// Extras returns the variant specific values in display order.
func (a *Asset) Extras() []string {
	switch a.Kind {
	case KindComputer:
		return []string{a.Computer.OperatingSystem, a.Computer.RAM, a.Computer.Processor}
	case KindCellphone:
		return []string{a.Cellphone.PhoneOperator, a.Cellphone.PhoneNumber}
	}
	return nil
}

// Office is a location assets are assigned to.
type Office struct {
	ID int
	// Location is the country the office is in.
	Location string
	// Culture is the BCP 47 tag used to format prices, e.g. "sv-SE".
	Culture string
}

// String returns the office city when known, otherwise the country.
func (o *Office) String() string {
	switch strings.ToLower(o.Location) {
	case "japan":
		return "Tokyo"
	case "sweden":
		return "Stockholm"
	case "france":
		return "Paris"
	default:
		return o.Location
	}
}
