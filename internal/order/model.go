package order

import "time"

// Conventional status values. Status is free-form text by design: admins may
// set anything, there is no enforced transition graph.
const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusDone       = "done"
)

// LineItem is one position in a cart. Price is the unit price in the
// smallest currency unit.
type LineItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// Order is immutable once created except for Status. Items are stored as a
// single JSONB blob, not normalized into rows. Total is the client-declared
// amount stored verbatim.
type Order struct {
	ID           int64      `json:"id" db:"id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	Customer     string     `json:"customer" db:"customer"`
	Metro        string     `json:"metro" db:"metro"`
	DeliveryTime string     `json:"delivery_time" db:"delivery_time"`
	Comment      string     `json:"comment" db:"comment"`
	Items        []LineItem `json:"items" db:"items"`
	Total        int64      `json:"total" db:"total"`
	Status       string     `json:"status" db:"status"`
}
