package testutils

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"assettracker/pkg/assettypes"
)

// MemoryAssets is an in-memory assettypes.AssetRepository. Stored assets are
// cloned on the way in and out so callers never alias repository state.
type MemoryAssets struct {
	assets map[int]*assettypes.Asset
	nextID int

	// UpdateCalls counts calls to Update.
	UpdateCalls int
	// UpdateErr, when set, is returned by Update.
	UpdateErr   error
	// AddErr, when set, is returned by Add and AddFromParams.
	AddErr      error
	// LastParams is the parameter map of the last AddFromParams call.
	LastParams  map[string]string
}

var _ assettypes.AssetRepository = (*MemoryAssets)(nil)

// NewMemoryAssets creates a repository holding assets; ids are assigned in order.
func NewMemoryAssets(assets ...*assettypes.Asset) *MemoryAssets {
	m := &MemoryAssets{assets: make(map[int]*assettypes.Asset), nextID: 1}
	for _, a := range assets {
		_, _ = m.Add(a)
	}
	return m
}

// Count implements assettypes.AssetRepository.
func (m *MemoryAssets) Count() (int, error) {
	return len(m.assets), nil
}

// Add implements assettypes.AssetRepository.
func (m *MemoryAssets) Add(a *assettypes.Asset) (int, error) {
	if m.AddErr != nil {
		return 0, m.AddErr
	}
	a.ID = m.nextID
	m.nextID++
	m.assets[a.ID] = a.Clone()
	return a.ID, nil
}

// AddFromParams implements assettypes.AssetRepository.
func (m *MemoryAssets) AddFromParams(params map[string]string) (int, error) {
	m.LastParams = params
	if m.AddErr != nil {
		return 0, m.AddErr
	}

	kind, err := assettypes.ParseKind(params["Type"])
	if err != nil {
		return 0, err
	}
	purchase, err := assettypes.ParseDate(params["PurchaseDate"])
	if err != nil {
		return 0, err
	}
	expiry, err := assettypes.ParseDate(params["ExpiryDate"])
	if err != nil {
		return 0, err
	}
	var price float64
	if _, err := fmt.Sscan(params["Price"], &price); err != nil {
		return 0, err
	}
	var officeID int
	if _, err := fmt.Sscan(params["OfficeID"], &officeID); err != nil {
		return 0, err
	}

	var a *assettypes.Asset
	switch kind {
	case assettypes.KindComputer:
		a = assettypes.NewComputer(purchase, expiry, price, params["ModelName"], officeID,
			assettypes.Computer{OperatingSystem: params["OS"], RAM: params["RAM"], Processor: params["Processor"]})
	case assettypes.KindCellphone:
		a = assettypes.NewCellphone(purchase, expiry, price, params["ModelName"], officeID,
			assettypes.Cellphone{PhoneOperator: params["PhoneOperator"], PhoneNumber: params["PhoneNumber"]})
	}
	return m.Add(a)
}

// Get implements assettypes.AssetRepository.
func (m *MemoryAssets) Get(id int) (*assettypes.Asset, error) {
	a, ok := m.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset %d: %w", id, assettypes.ErrNotFound)
	}
	return a.Clone(), nil
}

// GetAll implements assettypes.AssetRepository.
func (m *MemoryAssets) GetAll() ([]*assettypes.Asset, error) {
	return m.GetAllFiltered(assettypes.All)
}

// GetAllFiltered implements assettypes.AssetRepository.
func (m *MemoryAssets) GetAllFiltered(pred assettypes.Predicate) ([]*assettypes.Asset, error) {
	ids := make([]int, 0, len(m.assets))
	for id := range m.assets {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var out []*assettypes.Asset
	for _, id := range ids {
		a := m.assets[id]
		if pred == nil || pred(a) {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

// GetPaged implements assettypes.AssetRepository.
func (m *MemoryAssets) GetPaged(pageSize, pageIndex int) ([]*assettypes.Asset, error) {
	all, _ := m.GetAll()
	start := pageSize * pageIndex
	if start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

// Update implements assettypes.AssetRepository.
func (m *MemoryAssets) Update(a *assettypes.Asset) error {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.assets[a.ID]; !ok {
		return fmt.Errorf("asset %d: %w", a.ID, assettypes.ErrNotFound)
	}
	m.assets[a.ID] = a.Clone()
	return nil
}

// Delete implements assettypes.AssetRepository.
func (m *MemoryAssets) Delete(id int) error {
	delete(m.assets, id)
	return nil
}

// MemoryOffices is an in-memory assettypes.OfficeRepository.
type MemoryOffices struct {
	offices []*assettypes.Office

	// Err, when set, is returned by every lookup.
	Err error
}

var _ assettypes.OfficeRepository = (*MemoryOffices)(nil)

// NewMemoryOffices creates a repository holding offices; ids are assigned in order.
func NewMemoryOffices(offices ...*assettypes.Office) *MemoryOffices {
	m := &MemoryOffices{}
	for _, o := range offices {
		_, _ = m.Add(o)
	}
	return m
}

// StandardOffices returns Sweden (1), Japan (2) and France (3).
func StandardOffices() *MemoryOffices {
	return NewMemoryOffices(
		&assettypes.Office{Location: "Sweden", Culture: "sv-SE"},
		&assettypes.Office{Location: "Japan", Culture: "ja-JP"},
		&assettypes.Office{Location: "France", Culture: "fr-FR"},
	)
}

// Add implements assettypes.OfficeRepository.
func (m *MemoryOffices) Add(o *assettypes.Office) (int, error) {
	o.ID = len(m.offices) + 1
	office := *o
	m.offices = append(m.offices, &office)
	return o.ID, nil
}

// Get implements assettypes.OfficeRepository.
func (m *MemoryOffices) Get(id int) (*assettypes.Office, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, o := range m.offices {
		if o.ID == id {
			office := *o
			return &office, nil
		}
	}
	return nil, fmt.Errorf("office %d: %w", id, assettypes.ErrNotFound)
}

// GetByName implements assettypes.OfficeRepository.
func (m *MemoryOffices) GetByName(name string) (*assettypes.Office, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, o := range m.offices {
		if strings.EqualFold(o.Location, strings.TrimSpace(name)) {
			office := *o
			return &office, nil
		}
	}
	return nil, fmt.Errorf("office %q: %w", name, assettypes.ErrNotFound)
}

// GetAll implements assettypes.OfficeRepository.
func (m *MemoryOffices) GetAll() ([]*assettypes.Office, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*assettypes.Office, 0, len(m.offices))
	for _, o := range m.offices {
		office := *o
		out = append(out, &office)
	}
	return out, nil
}

// Computer builds a computer asset with an expiry three years after purchase.
func Computer(model string, officeID int, purchase time.Time, price float64) *assettypes.Asset {
	return assettypes.NewComputer(purchase, purchase.AddDate(3, 0, 0), price, model, officeID,
		assettypes.Computer{OperatingSystem: "Linux", RAM: "16GB", Processor: "x86"})
}

// Cellphone builds a cellphone asset with an expiry three years after purchase.
func Cellphone(model string, officeID int, purchase time.Time, price float64) *assettypes.Asset {
	return assettypes.NewCellphone(purchase, purchase.AddDate(3, 0, 0), price, model, officeID,
		assettypes.Cellphone{PhoneOperator: "Telia", PhoneNumber: "+46700000000"})
}
