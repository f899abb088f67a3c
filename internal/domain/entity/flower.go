package entity

import "time"

// Flower is a sellable catalog item. Count is the number of units in
// stock and never goes negative; Cost is the unit price.
type Flower struct {
	ID        int64
	Name      string
	Count     int
	Cost      float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FlowerPatch describes a partial update to a catalog item. Nil fields are
// left unchanged, so an explicit zero (e.g. Count=0 when sold out) is
// distinguishable from "not provided".
type FlowerPatch struct {
	Name  *string
	Count *int
	Cost  *float64
}

// IsEmpty reports whether the patch carries no changes at all.
func (p *FlowerPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Count == nil && p.Cost == nil)
}
