package model

type Localizer interface {
	LocalizedName() string
}

func (m *Model) localizedName(slug string) string {
	if m.Language == nil {
		return slug
	}

	return m.Language.Title(slug)
}
