// Package lister shows assets page by page with rows highlighted by how soon
// they expire.
package lister

import (
	"sort"
	"time"

	"assettracker/pkg/assettypes"
)

// View is a filtered, ordered selection of assets split into fixed-size pages.
type View struct {
	assets   []*assettypes.Asset
	pageSize int
}

// NewView orders a copy of assets by office, then variant (computers first),
// then purchase date.
func NewView(assets []*assettypes.Asset, pageSize int) *View {
	if pageSize <= 0 {
		pageSize = 1
	}
	sorted := make([]*assettypes.Asset, len(assets))
	copy(sorted, assets)
	Sort(sorted)
	return &View{assets: sorted, pageSize: pageSize}
}

// Sort orders assets in listing order. The sort is stable so equal keys keep
// repository order.
func Sort(assets []*assettypes.Asset) {
	sort.SliceStable(assets, func(i, j int) bool {
		a, b := assets[i], assets[j]
		if a.OfficeID != b.OfficeID {
			return a.OfficeID < b.OfficeID
		}
		if ka, kb := kindRank(a.Kind), kindRank(b.Kind); ka != kb {
			return ka < kb
		}
		return a.PurchaseDate.Before(b.PurchaseDate)
	})
}

func kindRank(k assettypes.Kind) int {
	switch k {
	case assettypes.KindComputer:
		return 0
	case assettypes.KindCellphone:
		return 1
	default:
		return 2
	}
}

// Len returns the number of assets in the view.
func (v *View) Len() int {
	return len(v.assets)
}

// PageSize returns the number of rows per page.
func (v *View) PageSize() int {
	return v.pageSize
}

// TotalPages returns the number of full pages. Trailing assets that do not
// fill a page are not counted.
func (v *View) TotalPages() int {
	return len(v.assets) / v.pageSize
}

// Page returns the assets on the zero-based page index. Out of range pages are empty.
func (v *View) Page(index int) []*assettypes.Asset {
	start := index * v.pageSize
	if index < 0 || start >= len(v.assets) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.assets) {
		end = len(v.assets)
	}
	return v.assets[start:end]
}

// RowSeverity highlights assets expiring within three months (or already
// expired) as Danger and within six months as Warning.
func RowSeverity(a *assettypes.Asset, now time.Time) assettypes.Severity {
	switch {
	case a.ExpiryDate.Before(now.AddDate(0, 3, 0)):
		return assettypes.Danger
	case a.ExpiryDate.Before(now.AddDate(0, 6, 0)):
		return assettypes.Warning
	default:
		return assettypes.Neutral
	}
}
