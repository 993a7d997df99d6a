package types

// ProductTag classifies a product for storefront shelves.
type ProductTag string

// Canonical tag set. Earlier revisions of the storefront also shipped
// NEW_ARRIVALS; it was folded into NEW and is rejected on input.
const (
	TagLatest   ProductTag = "LATEST"
	TagNew      ProductTag = "NEW"
	TagMostView ProductTag = "MOST_VIEW"
)

// Valid reports whether the tag is one of the canonical values.
func (t ProductTag) Valid() bool {
	switch t {
	case TagLatest, TagNew, TagMostView:
		return true
	}
	return false
}

// Product represents a catalog item shown on the storefront.
type Product struct {
	// ID is the unique identifier of the product.
	ID int `json:"id" db:"id"`

	// ProductName is the display name of the product.
	ProductName string `json:"product_name" db:"product_name"`

	// ImageHref is the link target of the product image.
	ImageHref string `json:"image_href" db:"image_href"`

	// ProductPrice is the display price. It is a free-form string
	// because the storefront renders it verbatim (currency included).
	ProductPrice string `json:"product_price" db:"product_price"`

	// ProductDescription is the long-form description.
	ProductDescription string `json:"product_description" db:"product_description"`

	// ProductOptions is a free-form options blob rendered by the
	// storefront (sizes, fitments, and the like).
	ProductOptions string `json:"product_options" db:"product_options"`

	// ImageURL is the location of the product image.
	ImageURL string `json:"image_url" db:"image_url"`

	// ImageAlt is the alt text for the product image.
	ImageAlt string `json:"imageAlt" db:"image_alt"`

	// Tags places the product on a storefront shelf.
	Tags ProductTag `json:"tags" db:"tags"`
}

// Category is a named product grouping.
type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Brand is a vehicle manufacturer.
type Brand struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CarModel is a vehicle model belonging to a brand. BrandID is a plain
// reference column, not an enforced foreign key.
type CarModel struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	BrandID int    `json:"brand_id" db:"brand_id"`
}

// Engine is an engine variant belonging to a car model. ModelID is a
// plain reference column, not an enforced foreign key.
type Engine struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	ModelID int    `json:"model_id" db:"model_id"`
}
