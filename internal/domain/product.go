package domain

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Slug        string
	ImageKey    string
	ExternalURL *string
	CategoryID  int64
	Description string
}

func NewProduct(name string, categoryID int64, description string, externalURL *string) *Product {
	return &Product{
		Name:        name,
		CategoryID:  categoryID,
		Description: description,
		ExternalURL: externalURL,
	}
}
