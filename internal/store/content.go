package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/partshub/apiserver/types"
)

// ContentRepository handles persistence for storefront content:
// carousels, footer entries, and discount codes.
type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) CreateSlider(ctx context.Context, slider types.Slider) (types.Slider, error) {
	const query = `
		INSERT INTO sliders (image_name, image_url, shop_url)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, slider.ImageName, slider.ImageURL, slider.ShopURL).Scan(&slider.ID); err != nil {
		return types.Slider{}, err
	}
	return slider, nil
}

func (r *ContentRepository) ListSliders(ctx context.Context) ([]types.Slider, error) {
	const query = `SELECT id, image_name, image_url, shop_url FROM sliders ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sliders := make([]types.Slider, 0)
	for rows.Next() {
		var slider types.Slider
		if err := rows.Scan(&slider.ID, &slider.ImageName, &slider.ImageURL, &slider.ShopURL); err != nil {
			return nil, err
		}
		sliders = append(sliders, slider)
	}
	return sliders, rows.Err()
}

func (r *ContentRepository) CreatePromoSlider(ctx context.Context, slider types.PromoSlider) (types.PromoSlider, error) {
	const query = `
		INSERT INTO promo_sliders (image_name, image_url, shop_url)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, slider.ImageName, slider.ImageURL, slider.ShopURL).Scan(&slider.ID); err != nil {
		return types.PromoSlider{}, err
	}
	return slider, nil
}

func (r *ContentRepository) ListPromoSliders(ctx context.Context) ([]types.PromoSlider, error) {
	const query = `SELECT id, image_name, image_url, shop_url FROM promo_sliders ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sliders := make([]types.PromoSlider, 0)
	for rows.Next() {
		var slider types.PromoSlider
		if err := rows.Scan(&slider.ID, &slider.ImageName, &slider.ImageURL, &slider.ShopURL); err != nil {
			return nil, err
		}
		sliders = append(sliders, slider)
	}
	return sliders, rows.Err()
}

// GetFooterByName returns the footer entry with the given name, used to
// reject duplicate footer names before insert.
func (r *ContentRepository) GetFooterByName(ctx context.Context, name string) (types.FooterEntry, error) {
	const query = `
		SELECT id, name, footer_body, active_status
		FROM footer_entries
		WHERE name = $1`
	var footer types.FooterEntry
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&footer.ID,
		&footer.Name,
		&footer.FooterBody,
		&footer.ActiveStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.FooterEntry{}, ErrNotFound
		}
		return types.FooterEntry{}, err
	}
	return footer, nil
}

func (r *ContentRepository) CreateFooter(ctx context.Context, footer types.FooterEntry) (types.FooterEntry, error) {
	const query = `
		INSERT INTO footer_entries (name, footer_body, active_status)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		footer.Name,
		footer.FooterBody,
		string(footer.ActiveStatus),
	).Scan(&footer.ID); err != nil {
		if isUniqueViolation(err) {
			return types.FooterEntry{}, ErrConflict
		}
		return types.FooterEntry{}, err
	}
	return footer, nil
}

func (r *ContentRepository) ListFooters(ctx context.Context) ([]types.FooterEntry, error) {
	const query = `SELECT id, name, footer_body, active_status FROM footer_entries ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	footers := make([]types.FooterEntry, 0)
	for rows.Next() {
		var footer types.FooterEntry
		if err := rows.Scan(&footer.ID, &footer.Name, &footer.FooterBody, &footer.ActiveStatus); err != nil {
			return nil, err
		}
		footers = append(footers, footer)
	}
	return footers, rows.Err()
}

func (r *ContentRepository) CreateDiscountCode(ctx context.Context, discount types.DiscountCode) (types.DiscountCode, error) {
	const query = `
		INSERT INTO discount_codes (name, discount_code, active_status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		discount.Name,
		discount.DiscountCode,
		string(discount.ActiveStatus),
		discount.StartDate,
		discount.EndDate,
	).Scan(&discount.ID); err != nil {
		return types.DiscountCode{}, err
	}
	return discount, nil
}

func (r *ContentRepository) ListDiscountCodes(ctx context.Context) ([]types.DiscountCode, error) {
	const query = `
		SELECT id, name, discount_code, active_status, start_date, end_date
		FROM discount_codes
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	discounts := make([]types.DiscountCode, 0)
	for rows.Next() {
		var discount types.DiscountCode
		if err := rows.Scan(
			&discount.ID,
			&discount.Name,
			&discount.DiscountCode,
			&discount.ActiveStatus,
			&discount.StartDate,
			&discount.EndDate,
		); err != nil {
			return nil, err
		}
		discounts = append(discounts, discount)
	}
	return discounts, rows.Err()
}
