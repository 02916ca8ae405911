package model

import "github.com/notjagan/movedex/pkg/typechart"

type TypeEffectiveness struct {
	model *Model

	FromTypeID      int    `db:"from_type_id"`
	ToTypeID        int    `db:"to_type_id"`
	EffectivenessID int    `db:"effectiveness_id"`
	FromTypeName    string `db:"from_type_name"`
	ToTypeName      string `db:"to_type_name"`
}

func (te *TypeEffectiveness) Effectiveness() typechart.Effectiveness {
	return typechart.Effectiveness(te.EffectivenessID)
}

func (te *TypeEffectiveness) Edge() typechart.Edge {
	return typechart.Edge{
		From:          typechart.Type{ID: te.FromTypeID, Name: te.FromTypeName},
		To:            typechart.Type{ID: te.ToTypeID, Name: te.ToTypeName},
		Effectiveness: te.Effectiveness(),
	}
}
