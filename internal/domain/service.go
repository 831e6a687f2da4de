package domain

// Service описывает услугу. Услуги не связаны с категориями и товарами.
type Service struct {
	ID          int64
	Name        string
	Slug        string
	ImageKey    string
	Description string
}

func NewService(name string, description string) *Service {
	return &Service{
		Name:        name,
		Description: description,
	}
}
