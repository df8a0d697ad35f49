package order

// LineItem is one cart entry as submitted by the checkout form.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Payload carries the creator-supplied order details. The core performs no
// schema validation on it and passes it through to every snapshot unchanged;
// the field set mirrors what the checkout form sends today. A partially
// populated payload is accepted as-is.
type Payload struct {
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	CarModel      string     `json:"carModel"`
	CarColor      string     `json:"carColor"`
	Branch        string     `json:"branch"`
	Items         []LineItem `json:"items"`
	TotalPrice    float64    `json:"totalPrice"`
}
