package model

type Item struct {
	model *Model

	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (item *Item) LocalizedName() string {
	return item.model.localizedName(item.Name)
}
