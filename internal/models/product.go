package models

import "time"

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductPatch carries the fields of a partial update. Nil fields keep the
// stored value; there is no schema enforcement beyond the column set.
type ProductPatch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}
