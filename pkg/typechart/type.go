package typechart

import "sort"

type Type struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TypeSet holds types keyed by ID. Order of insertion is not kept.
type TypeSet map[int]Type

func NewTypeSet(types ...Type) TypeSet {
	set := make(TypeSet, len(types))
	for _, typ := range types {
		set[typ.ID] = typ
	}

	return set
}

func (set TypeSet) Contains(typ Type) bool {
	_, ok := set[typ.ID]
	return ok
}

func (set TypeSet) Intersects(other TypeSet) bool {
	small, large := set, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if _, ok := large[id]; ok {
			return true
		}
	}

	return false
}

func (set TypeSet) Clone() TypeSet {
	clone := make(TypeSet, len(set))
	for id, typ := range set {
		clone[id] = typ
	}

	return clone
}

// Slice returns the members ordered by ID.
func (set TypeSet) Slice() []Type {
	types := make([]Type, 0, len(set))
	for _, typ := range set {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].ID < types[j].ID
	})

	return types
}

func (set TypeSet) Names() []string {
	types := set.Slice()
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = typ.Name
	}

	return names
}
