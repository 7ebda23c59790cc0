package catalog

// Category groups products for display. Sort controls ordering in the
// storefront, lower values first.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Sort int    `json:"sort" db:"sort"`
}

// Product is a single catalog entry. CategoryID is a weak reference: it must
// point at an existing category when written, but becomes nil once that
// category is deleted. Price is in the smallest currency unit.
type Product struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Price        int64  `json:"price" db:"price"`
	Description  string `json:"description" db:"description"`
	PhotoURL     string `json:"photo" db:"photo_url"`
	CategoryID   *int64 `json:"categoryId" db:"category_id"`
	CategoryName string `json:"category" db:"category_name"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	Sort         int    `json:"sort" db:"sort"`
}
