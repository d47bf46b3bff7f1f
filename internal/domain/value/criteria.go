package value

// Criteria описывает получателя подарка.
type Criteria struct {
	Occasion    string
	Age         int
	Gender      string
	Personality string
	Budget      float64
	Geography   string
}
