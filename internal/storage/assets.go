package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

// AssetRepository implements assettypes.AssetRepository.
type AssetRepository struct {
	db *sql.DB
}

var _ assettypes.AssetRepository = (*AssetRepository)(nil)

const assetColumns = `id, kind, purchase_date, expiry_date, price, model_name, office_id,
	operating_system, ram, processor, phone_operator, phone_number`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// Count returns the number of stored assets.
func (r *AssetRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM assets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return n, nil
}

// Add stores a new asset and assigns its id.
func (r *AssetRepository) Add(a *assettypes.Asset) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("asset is nil")
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}

	c, p := variantColumns(a)
	result, err := r.db.Exec(`
		INSERT INTO assets (kind, purchase_date, expiry_date, price, model_name, office_id,
			operating_system, ram, processor, phone_operator, phone_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(a.Kind), encodeTime(a.PurchaseDate), encodeTime(a.ExpiryDate), a.Price, a.ModelName, a.OfficeID,
		c[0], c[1], c[2], p[0], p[1])
	if err != nil {
		return 0, fmt.Errorf("failed to create asset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get asset ID: %w", err)
	}

	a.ID = int(id)
	logger.RepositoryOperation("assets", "add", "id", a.ID, "kind", a.Kind)
	return a.ID, nil
}

// AddFromParams builds an asset from string parameters and stores it.
func (r *AssetRepository) AddFromParams(params map[string]string) (int, error) {
	a, err := assetFromParams(params)
	if err != nil {
		return 0, err
	}
	return r.Add(a)
}

// Get retrieves an asset by id.
func (r *AssetRepository) Get(id int) (*assettypes.Asset, error) {
	row := r.db.QueryRow(`SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("asset %d: %w", id, assettypes.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return a, nil
}

// GetAll retrieves every asset ordered by id.
func (r *AssetRepository) GetAll() ([]*assettypes.Asset, error) {
	return r.query(`SELECT ` + assetColumns + ` FROM assets ORDER BY id`)
}

// GetAllFiltered retrieves the assets matching pred, ordered by id.
func (r *AssetRepository) GetAllFiltered(pred assettypes.Predicate) ([]*assettypes.Asset, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	if pred == nil {
		return all, nil
	}

	filtered := make([]*assettypes.Asset, 0, len(all))
	for _, a := range all {
		if pred(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// GetPaged returns at most pageSize assets ordered by id, skipping pageIndex pages.
func (r *AssetRepository) GetPaged(pageSize, pageIndex int) ([]*assettypes.Asset, error) {
	if pageSize <= 0 || pageIndex < 0 {
		return nil, fmt.Errorf("invalid page request: size %d, index %d", pageSize, pageIndex)
	}
	return r.query(`SELECT `+assetColumns+` FROM assets ORDER BY id LIMIT ? OFFSET ?`, pageSize, pageSize*pageIndex)
}

// Update overwrites the stored asset with the same id.
func (r *AssetRepository) Update(a *assettypes.Asset) error {
	if a == nil {
		return fmt.Errorf("asset is nil")
	}
	if err := a.Validate(); err != nil {
		return err
	}

	c, p := variantColumns(a)
	result, err := r.db.Exec(`
		UPDATE assets SET kind = ?, purchase_date = ?, expiry_date = ?, price = ?, model_name = ?, office_id = ?,
			operating_system = ?, ram = ?, processor = ?, phone_operator = ?, phone_number = ?
		WHERE id = ?`,
		string(a.Kind), encodeTime(a.PurchaseDate), encodeTime(a.ExpiryDate), a.Price, a.ModelName, a.OfficeID,
		c[0], c[1], c[2], p[0], p[1], a.ID)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("asset %d: %w", a.ID, assettypes.ErrNotFound)
	}

	logger.RepositoryOperation("assets", "update", "id", a.ID)
	return nil
}

// Delete removes the asset. Deleting a missing id is not an error.
func (r *AssetRepository) Delete(id int) error {
	if _, err := r.db.Exec(`DELETE FROM assets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	logger.RepositoryOperation("assets", "delete", "id", id)
	return nil
}

func (r *AssetRepository) query(query string, args ...interface{}) ([]*assettypes.Asset, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []*assettypes.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

// variantColumns returns the computer and cellphone column values for a.
func variantColumns(a *assettypes.Asset) ([3]sql.NullString, [2]sql.NullString) {
	var c [3]sql.NullString
	var p [2]sql.NullString
	switch a.Kind {
	case assettypes.KindComputer:
		c = [3]sql.NullString{
			nullString(a.Computer.OperatingSystem),
			nullString(a.Computer.RAM),
			nullString(a.Computer.Processor),
		}
	case assettypes.KindCellphone:
		p = [2]sql.NullString{
			nullString(a.Cellphone.PhoneOperator),
			nullString(a.Cellphone.PhoneNumber),
		}
	}
	return c, p
}

func scanAsset(row scanner) (*assettypes.Asset, error) {
	var (
		a                     assettypes.Asset
		kind                  string
		purchase, expiry      string
		os, ram, processor    sql.NullString
		operator, phoneNumber sql.NullString
	)

	if err := row.Scan(&a.ID, &kind, &purchase, &expiry, &a.Price, &a.ModelName, &a.OfficeID,
		&os, &ram, &processor, &operator, &phoneNumber); err != nil {
		return nil, err
	}

	var err error
	if a.PurchaseDate, err = decodeTime(purchase); err != nil {
		return nil, err
	}
	if a.ExpiryDate, err = decodeTime(expiry); err != nil {
		return nil, err
	}

	a.Kind = assettypes.Kind(kind)
	switch a.Kind {
	case assettypes.KindComputer:
		a.Computer = &assettypes.Computer{
			OperatingSystem: os.String,
			RAM:             ram.String,
			Processor:       processor.String,
		}
	case assettypes.KindCellphone:
		a.Cellphone = &assettypes.Cellphone{
			PhoneOperator: operator.String,
			PhoneNumber:   phoneNumber.String,
		}
	default:
		return nil, fmt.Errorf("asset %d: %w: %q", a.ID, assettypes.ErrUnknownKind, kind)
	}

	return &a, nil
}
