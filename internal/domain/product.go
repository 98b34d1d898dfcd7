package domain

// Product keeps the catalog price as text ("25.000") the way the store
// persists it; ParsePrice converts it for arithmetic.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Img        string `json:"img"`
	CategoryID int64  `json:"categoryId"`
}
