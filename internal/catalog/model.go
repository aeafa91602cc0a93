package catalog

// Product is the backend's product representation. Cart line items embed a
// snapshot of it taken at add time; later backend edits do not flow back
// into carts.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int     `json:"categoryId"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	// Category name is only embedded by GET /products/{id}
	Category string `json:"category,omitempty"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
