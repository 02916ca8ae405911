package model

type Category struct {
	model *Model

	ID          int    `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

func (category *Category) LocalizedName() string {
	return category.model.localizedName(category.Name)
}
