package domain

// Category описывает категорию каталога. Ссылка на родителя образует
// самоссылающуюся иерархию; корневые категории имеют ParentID == nil.
type Category struct {
	ID       int64
	Name     string
	Slug     string
	ImageKey *string
	About    *string
	ParentID *int64
}

func NewCategory(name string, about *string, parentID *int64) *Category {
	return &Category{
		Name:     name,
		About:    about,
		ParentID: parentID,
	}
}

// IsRoot сообщает, является ли категория корневой.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
