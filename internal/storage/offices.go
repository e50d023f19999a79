package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"assettracker/internal/logger"
	"assettracker/pkg/assettypes"
)

// OfficeRepository implements assettypes.OfficeRepository.
type OfficeRepository struct {
	db *sql.DB
}

var _ assettypes.OfficeRepository = (*OfficeRepository)(nil)

// Add stores a new office and assigns its id.
func (r *OfficeRepository) Add(o *assettypes.Office) (int, error) {
	if o == nil {
		return 0, fmt.Errorf("office is nil")
	}

	result, err := r.db.Exec(`INSERT INTO offices (location, culture) VALUES (?, ?)`, o.Location, o.Culture)
	if err != nil {
		return 0, fmt.Errorf("failed to create office: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get office ID: %w", err)
	}

	o.ID = int(id)
	logger.RepositoryOperation("offices", "add", "id", o.ID, "location", o.Location)
	return o.ID, nil
}

// Get retrieves an office by id.
func (r *OfficeRepository) Get(id int) (*assettypes.Office, error) {
	return r.queryOne(`SELECT id, location, culture FROM offices WHERE id = ?`, id)
}

// GetByName retrieves an office by country, ignoring case.
func (r *OfficeRepository) GetByName(name string) (*assettypes.Office, error) {
	return r.queryOne(`SELECT id, location, culture FROM offices WHERE LOWER(location) = LOWER(?) ORDER BY id LIMIT 1`, name)
}

// GetAll retrieves every office ordered by id.
func (r *OfficeRepository) GetAll() ([]*assettypes.Office, error) {
	rows, err := r.db.Query(`SELECT id, location, culture FROM offices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query offices: %w", err)
	}
	defer rows.Close()

	var offices []*assettypes.Office
	for rows.Next() {
		var o assettypes.Office
		if err := rows.Scan(&o.ID, &o.Location, &o.Culture); err != nil {
			return nil, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, &o)
	}

	return offices, rows.Err()
}

func (r *OfficeRepository) queryOne(query string, arg interface{}) (*assettypes.Office, error) {
	var o assettypes.Office
	err := r.db.QueryRow(query, arg).Scan(&o.ID, &o.Location, &o.Culture)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("office %v: %w", arg, assettypes.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get office: %w", err)
	}
	return &o, nil
}
