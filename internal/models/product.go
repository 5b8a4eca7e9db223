package models

// Product is a financial product from the catalog API. The revision
// date is derived: it always trails the release date by exactly one
// year and is never edited directly.
type Product struct {
	ID           string `json:"id" validate:"required,min=3,max=10"`
	Name         string `json:"name" validate:"required,min=5,max=100"`
	Description  string `json:"description" validate:"required,min=10,max=200"`
	Logo         string `json:"logo" validate:"required,logo_url"`
	DateRelease  Date   `json:"date_release" validate:"required"`
	DateRevision Date   `json:"date_revision" validate:"required"`
}

// ProductList is the list endpoint payload; the API wraps the
// collection in a data field.
type ProductList struct {
	Data []Product `json:"data"`
}
