package model

import "github.com/notjagan/movedex/pkg/typechart"

type Type struct {
	model *Model

	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (typ *Type) LocalizedName() string {
	return typ.model.localizedName(typ.Name)
}

func (typ *Type) Value() typechart.Type {
	return typechart.Type{ID: typ.ID, Name: typ.Name}
}
