package model

// Egg is the hatching distance group a pokemon can be found in.
type Egg struct {
	model *Model

	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (egg *Egg) LocalizedName() string {
	return egg.model.localizedName(egg.Name)
}
