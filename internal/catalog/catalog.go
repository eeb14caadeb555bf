package catalog

import (
	"context"
	"sort"
)

// Item is one carriage from the catalog. Nil capacity means the catalog has
// no rating for that load kind.
type Item struct {
	Name   string   `json:"name" yaml:"name"`
	Radial *float64 `json:"radial,omitempty" yaml:"radial,omitempty"`
	Axial  *float64 `json:"axial,omitempty" yaml:"axial,omitempty"`
	Mx     *float64 `json:"mx,omitempty" yaml:"mx,omitempty"`
	My     *float64 `json:"my,omitempty" yaml:"my,omitempty"`
	Mzs    *float64 `json:"mzs,omitempty" yaml:"mzs,omitempty"`
	Mzd    *float64 `json:"mzd,omitempty" yaml:"mzd,omitempty"`
}

// Provider returns the catalog listing.
type Provider interface {
	Items(ctx context.Context) ([]Item, error)
}

// Static serves a fixed listing.
type Static []Item

func (s Static) Items(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(s))
	copy(out, s)
	return out, nil
}

// Value returns a pointer to v, for building items in code.
func Value(v float64) *float64 { return &v }

// SortByName orders items the way the catalog table is queried.
func SortByName(items []Item) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}
