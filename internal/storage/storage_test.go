package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assettracker/pkg/assettypes"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func addOffice(t *testing.T, store *Store, location, culture string) int {
	t.Helper()
	id, err := store.Offices().Add(&assettypes.Office{Location: location, Culture: culture})
	require.NoError(t, err)
	return id
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// populate mirrors the three-asset fixture used by the repository tests.
func populate(t *testing.T, store *Store) {
	t.Helper()
	assets := store.Assets()
	officeID := addOffice(t, store, "Japan", "ja-JP")

	for _, params := range []map[string]string{
		{
			"Type": "Computer", "PurchaseDate": "2017 - 08 - 15", "ExpiryDate": "2020 - 08 - 15",
			"Price": "1500", "ModelName": "MacBook", "OfficeID": "1",
			"OS": "macOS", "RAM": "8GB", "Processor": "PowerPC",
		},
		{
			"Type": "Computer", "PurchaseDate": "1990-01-01", "ExpiryDate": "1990-01-01",
			"Price": "145", "ModelName": "XXX", "OfficeID": "1",
			"OS": "win", "RAM": "128TB", "Processor": "MIPS",
		},
		{
			"Type": "Cellphone", "PurchaseDate": "2019 - 07 - 18", "ExpiryDate": "2022 - 07 - 18",
			"Price": "400", "ModelName": "iPhone", "OfficeID": "1",
			"PhoneOperator": "Au", "PhoneNumber": "+817655308287",
		},
	} {
		_, err := assets.AddFromParams(params)
		require.NoError(t, err)
	}
	require.Equal(t, 1, officeID)
}

func TestAddFromParams(t *testing.T) {
	store := openTestStore(t)
	populate(t, store)

	count, err := store.Assets().Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	macbook, err := store.Assets().Get(1)
	require.NoError(t, err)
	assert.Equal(t, assettypes.KindComputer, macbook.Kind)
	assert.True(t, macbook.PurchaseDate.Equal(date(2017, time.August, 15)))
	assert.True(t, macbook.ExpiryDate.Equal(date(2020, time.August, 15)))
	assert.Equal(t, 1500.0, macbook.Price)
	assert.Equal(t, "MacBook", macbook.ModelName)
	assert.Equal(t, &assettypes.Computer{OperatingSystem: "macOS", RAM: "8GB", Processor: "PowerPC"}, macbook.Computer)
	assert.Nil(t, macbook.Cellphone)

	phone, err := store.Assets().Get(3)
	require.NoError(t, err)
	assert.Equal(t, assettypes.KindCellphone, phone.Kind)
	assert.Equal(t, &assettypes.Cellphone{PhoneOperator: "Au", PhoneNumber: "+817655308287"}, phone.Cellphone)
}

func TestAddFromParamsErrors(t *testing.T) {
	store := openTestStore(t)
	addOffice(t, store, "Sweden", "sv-SE")
	assets := store.Assets()

	_, err := assets.AddFromParams(map[string]string{"Type": "Tablet", "PurchaseDate": "2020-01-01", "Price": "1", "ModelName": "x", "OfficeID": "1"})
	assert.ErrorIs(t, err, assettypes.ErrUnknownKind)

	_, err = assets.AddFromParams(map[string]string{"Type": "Computer", "PurchaseDate": "yesterday", "Price": "1", "ModelName": "x", "OfficeID": "1"})
	assert.Error(t, err)

	_, err = assets.AddFromParams(map[string]string{"Type": "Computer", "PurchaseDate": "2020-01-01", "Price": "cheap", "ModelName": "x", "OfficeID": "1"})
	assert.Error(t, err)

	_, err = assets.AddFromParams(map[string]string{"Type": "Computer", "PurchaseDate": "2020-01-01", "Price": "-1", "ModelName": "x", "OfficeID": "1"})
	assert.Error(t, err)

	count, err := assets.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddFromParamsDefaultsExpiry(t *testing.T) {
	store := openTestStore(t)
	addOffice(t, store, "Sweden", "sv-SE")

	id, err := store.Assets().AddFromParams(map[string]string{
		"Type": "Cellphone", "PurchaseDate": "2021-03-01", "Price": "300", "ModelName": "Nokia", "OfficeID": "1",
		"PhoneOperator": "Telia", "PhoneNumber": "123",
	})
	require.NoError(t, err)

	a, err := store.Assets().Get(id)
	require.NoError(t, err)
	assert.True(t, a.ExpiryDate.Equal(date(2024, time.March, 1)))
}

func TestGetMissingAsset(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Assets().Get(42)
	assert.ErrorIs(t, err, assettypes.ErrNotFound)
}

func TestGetAllFilteredAndPaged(t *testing.T) {
	store := openTestStore(t)
	populate(t, store)
	assets := store.Assets()

	computers, err := assets.GetAllFiltered(func(a *assettypes.Asset) bool { return a.Kind == assettypes.KindComputer })
	require.NoError(t, err)
	assert.Len(t, computers, 2)

	all, err := assets.GetAllFiltered(assettypes.All)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := assets.GetPaged(2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 1, page[0].ID)
	assert.Equal(t, 2, page[1].ID)

	page, err = assets.GetPaged(2, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, 3, page[0].ID)

	page, err = assets.GetPaged(2, 5)
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = assets.GetPaged(0, 0)
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	store := openTestStore(t)
	populate(t, store)
	assets := store.Assets()

	a, err := assets.Get(2)
	require.NoError(t, err)
	a.Price = 99.5
	a.ModelName = "Renamed"
	a.Computer.RAM = "64GB"
	require.NoError(t, assets.Update(a))

	updated, err := assets.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 99.5, updated.Price)
	assert.Equal(t, "Renamed", updated.ModelName)
	assert.Equal(t, "64GB", updated.Computer.RAM)

	a.ID = 77
	assert.ErrorIs(t, assets.Update(a), assettypes.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	populate(t, store)
	assets := store.Assets()

	for remaining, id := range []int{1, 2, 3} {
		require.NoError(t, assets.Delete(id))
		count, err := assets.Count()
		require.NoError(t, err)
		assert.Equal(t, 2-remaining, count)
	}

	assert.NoError(t, assets.Delete(1))
}

func TestOfficeRepository(t *testing.T) {
	store := openTestStore(t)
	offices := store.Offices()

	swedenID := addOffice(t, store, "Sweden", "sv-SE")
	addOffice(t, store, "France", "fr-FR")

	office, err := offices.GetByName("sWeDeN")
	require.NoError(t, err)
	assert.Equal(t, swedenID, office.ID)
	assert.Equal(t, "Stockholm", office.String())

	_, err = offices.GetByName("Norway")
	assert.ErrorIs(t, err, assettypes.ErrNotFound)

	_, err = offices.Get(99)
	assert.ErrorIs(t, err, assettypes.ErrNotFound)

	all, err := offices.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "France", all[1].Location)
}

func TestSeed(t *testing.T) {
	store := openTestStore(t)
	now := time.Date(2026, time.October, 19, 10, 30, 0, 0, time.Local)

	added, err := store.Seed(now)
	require.NoError(t, err)
	assert.Equal(t, 10, added)

	offices, err := store.Offices().GetAll()
	require.NoError(t, err)
	assert.Len(t, offices, 3)

	assets, err := store.Assets().GetAll()
	require.NoError(t, err)
	require.Len(t, assets, added)
	for _, a := range assets {
		assert.True(t, a.ExpiryDate.Equal(a.PurchaseDate.AddDate(3, 0, 0)), "asset %d", a.ID)
		assert.False(t, a.PurchaseDate.After(now), "asset %d", a.ID)
	}

	again, err := store.Seed(now)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestSeedUnknownOffice(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SeedFrom([]byte(`
offices:
  - location: Sweden
    culture: sv-SE
assets:
  - type: Computer
    office: Atlantis
    model: Ghost
    price: 1
    purchased_months_ago: 1
`), time.Now())
	assert.ErrorIs(t, err, assettypes.ErrNotFound)
}
