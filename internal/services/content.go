package services

import (
	"context"

	"github.com/partshub/apiserver/internal/events"
	"github.com/partshub/apiserver/types"
)

// ContentRepository defines persistence operations for storefront
// content: carousels, footer entries, and discount codes.
type ContentRepository interface {
	CreateSlider(ctx context.Context, slider types.Slider) (types.Slider, error)
	ListSliders(ctx context.Context) ([]types.Slider, error)
	CreatePromoSlider(ctx context.Context, slider types.PromoSlider) (types.PromoSlider, error)
	ListPromoSliders(ctx context.Context) ([]types.PromoSlider, error)
	GetFooterByName(ctx context.Context, name string) (types.FooterEntry, error)
	CreateFooter(ctx context.Context, footer types.FooterEntry) (types.FooterEntry, error)
	ListFooters(ctx context.Context) ([]types.FooterEntry, error)
	CreateDiscountCode(ctx context.Context, discount types.DiscountCode) (types.DiscountCode, error)
	ListDiscountCodes(ctx context.Context) ([]types.DiscountCode, error)
}

// ContentService encapsulates storefront content use-cases.
type ContentService struct {
	repo      ContentRepository
	publisher *events.Publisher
}

func NewContentService(repo ContentRepository, publisher *events.Publisher) *ContentService {
	return &ContentService{repo: repo, publisher: publisher}
}

func (s *ContentService) CreateSlider(ctx context.Context, slider types.Slider) (types.Slider, error) {
	created, err := s.repo.CreateSlider(ctx, slider)
	if err != nil {
		return types.Slider{}, err
	}
	s.publisher.Created(ctx, "slider", created.ID)
	return created, nil
}

func (s *ContentService) ListSliders(ctx context.Context) ([]types.Slider, error) {
	return s.repo.ListSliders(ctx)
}

func (s *ContentService) CreatePromoSlider(ctx context.Context, slider types.PromoSlider) (types.PromoSlider, error) {
	created, err := s.repo.CreatePromoSlider(ctx, slider)
	if err != nil {
		return types.PromoSlider{}, err
	}
	s.publisher.Created(ctx, "promo_slider", created.ID)
	return created, nil
}

func (s *ContentService) ListPromoSliders(ctx context.Context) ([]types.PromoSlider, error) {
	return s.repo.ListPromoSliders(ctx)
}

func (s *ContentService) GetFooterByName(ctx context.Context, name string) (types.FooterEntry, error) {
	return s.repo.GetFooterByName(ctx, name)
}

func (s *ContentService) CreateFooter(ctx context.Context, footer types.FooterEntry) (types.FooterEntry, error) {
	created, err := s.repo.CreateFooter(ctx, footer)
	if err != nil {
		return types.FooterEntry{}, err
	}
	s.publisher.Created(ctx, "footer", created.ID)
	return created, nil
}

func (s *ContentService) ListFooters(ctx context.Context) ([]types.FooterEntry, error) {
	return s.repo.ListFooters(ctx)
}

func (s *ContentService) CreateDiscountCode(ctx context.Context, discount types.DiscountCode) (types.DiscountCode, error) {
	created, err := s.repo.CreateDiscountCode(ctx, discount)
	if err != nil {
		return types.DiscountCode{}, err
	}
	s.publisher.Created(ctx, "discount_code", created.ID)
	return created, nil
}

func (s *ContentService) ListDiscountCodes(ctx context.Context) ([]types.DiscountCode, error) {
	return s.repo.ListDiscountCodes(ctx)
}
