package value

// Suggestion одна идея подарка от модели.
type Suggestion struct {
	Name          string
	Description   string
	Reason        string
	ShoppingLinks []ShoppingLink
}

// ShoppingLink хранится внутри Suggestion и отдельно не сохраняется.
type ShoppingLink struct {
	Platform   string
	URL        string
	PriceRange string
}

// SuggestionBatchSize сколько идей возвращает одна генерация или уточнение.
const SuggestionBatchSize = 3
