package converter

// ProductCardRedisModel — сериализуемая карточка товара в кэше листингов.
type ProductCardRedisModel struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ImageKey     string `json:"image_key"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}
