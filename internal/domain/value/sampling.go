package value

// Sampling параметры генерации для вызова модели.
type Sampling struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}
