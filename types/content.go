package types

import "time"

// ActiveStatus marks content as visible or hidden on the storefront.
type ActiveStatus string

const (
	StatusActive  ActiveStatus = "ACTIVE"
	StatusPassive ActiveStatus = "PASSIVE"
)

// Valid reports whether the status is one of the canonical values.
func (s ActiveStatus) Valid() bool {
	return s == StatusActive || s == StatusPassive
}

// Slider is an entry in the main storefront image carousel.
type Slider struct {
	ID        int    `json:"id" db:"id"`
	ImageName string `json:"image_name" db:"image_name"`
	ImageURL  string `json:"image_url" db:"image_url"`
	ShopURL   string `json:"shop_url" db:"shop_url"`
}

// PromoSlider is an entry in the secondary promotional carousel.
// It is stored separately from Slider so the storefront can manage
// the two carousels independently.
type PromoSlider struct {
	ID        int    `json:"id" db:"id"`
	ImageName string `json:"image_name" db:"image_name"`
	ImageURL  string `json:"image_url" db:"image_url"`
	ShopURL   string `json:"shop_url" db:"shop_url"`
}

// FooterEntry is a named block of footer content. Names are unique.
type FooterEntry struct {
	ID           int          `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	FooterBody   string       `json:"footer_body" db:"footer_body"`
	ActiveStatus ActiveStatus `json:"active_status" db:"active_status"`
}

// DiscountCode is a redeemable discount with a validity window.
type DiscountCode struct {
	ID           int          `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	DiscountCode string       `json:"discount_code" db:"discount_code"`
	ActiveStatus ActiveStatus `json:"active_status" db:"active_status"`
	StartDate    time.Time    `json:"start_date" db:"start_date"`
	EndDate      time.Time    `json:"end_date" db:"end_date"`
}
