package lister

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"assettracker/pkg/assettypes"
)

// ErrUnknownFilter is returned for a list argument that names no filter.
var ErrUnknownFilter = errors.New("unknown filter")

// FilterUsage describes the accepted list arguments.
const FilterUsage = "Usage: 'list', 'list expired', 'list expiring', 'list computers', 'list cellphones' or 'list office <country>'."

// ParseFilter builds a predicate from the arguments of the list command.
// No arguments select every asset.
func ParseFilter(args []string, offices assettypes.OfficeRepository, now time.Time) (assettypes.Predicate, error) {
	if len(args) == 0 {
		return assettypes.All, nil
	}

	switch strings.ToLower(args[0]) {
	case "expired":
		return func(a *assettypes.Asset) bool {
			return a.ExpiryDate.Before(now)
		}, nil
	case "expiring":
		limit := now.AddDate(0, 6, 0)
		return func(a *assettypes.Asset) bool {
			return !a.ExpiryDate.Before(now) && a.ExpiryDate.Before(limit)
		}, nil
	case "computers":
		return OfKind(assettypes.KindComputer), nil
	case "cellphones":
		return OfKind(assettypes.KindCellphone), nil
	case "office":
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: office needs a country", ErrUnknownFilter)
		}
		office, err := offices.GetByName(strings.Join(args[1:], " "))
		if err != nil {
			return nil, err
		}
		return func(a *assettypes.Asset) bool {
			return a.OfficeID == office.ID
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, args[0])
}

// OfKind selects assets of one variant.
func OfKind(kind assettypes.Kind) assettypes.Predicate {
	return func(a *assettypes.Asset) bool {
		return a.Kind == kind
	}
}
