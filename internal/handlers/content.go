package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/partshub/apiserver/internal/services"
	"github.com/partshub/apiserver/internal/store"
	"github.com/partshub/apiserver/types"
)

// ContentHandler provides HTTP handlers for storefront content:
// carousels, footer entries, and discount codes.
type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// ContentRouter registers content routes. The discount endpoints keep
// their historical asymmetry: save under /discountcode/, list under
// /discount/.
func ContentRouter(r chi.Router, contentService *services.ContentService) {
	handler := NewContentHandler(contentService)

	r.Post("/slider/", handler.CreateSlider)
	r.Get("/slider/list/", handler.ListSliders)

	r.Post("/add/slider/", handler.CreatePromoSlider)
	r.Get("/add/slider/list/", handler.ListPromoSliders)

	r.Post("/footer/save/", handler.CreateFooter)
	r.Get("/footer/list/", handler.ListFooters)

	r.Post("/discountcode/save/", handler.CreateDiscountCode)
	r.Get("/discount/list/", handler.ListDiscountCodes)
}

type SliderRequest struct {
	ImageName string `json:"image_name"`
	ImageURL  string `json:"image_url"`
	ShopURL   string `json:"shop_url"`
}

func (req *SliderRequest) validate() error {
	req.ImageName = strings.TrimSpace(req.ImageName)
	if req.ImageName == "" {
		return errors.New("image_name is required")
	}
	return nil
}

func (h *ContentHandler) CreateSlider(w http.ResponseWriter, r *http.Request) {
	var req SliderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.contentService.CreateSlider(r.Context(), types.Slider{
		ImageName: req.ImageName,
		ImageURL:  req.ImageURL,
		ShopURL:   req.ShopURL,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create slider")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContentHandler) ListSliders(w http.ResponseWriter, r *http.Request) {
	sliders, err := h.contentService.ListSliders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sliders")
		return
	}
	if len(sliders) == 0 {
		writeError(w, http.StatusNotFound, "Slider is not found")
		return
	}
	writeJSON(w, http.StatusOK, sliders)
}

func (h *ContentHandler) CreatePromoSlider(w http.ResponseWriter, r *http.Request) {
	var req SliderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.contentService.CreatePromoSlider(r.Context(), types.PromoSlider{
		ImageName: req.ImageName,
		ImageURL:  req.ImageURL,
		ShopURL:   req.ShopURL,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create slider")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContentHandler) ListPromoSliders(w http.ResponseWriter, r *http.Request) {
	sliders, err := h.contentService.ListPromoSliders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sliders")
		return
	}
	if len(sliders) == 0 {
		writeError(w, http.StatusNotFound, "Slider is not found")
		return
	}
	writeJSON(w, http.StatusOK, sliders)
}

type FooterRequest struct {
	Name         string             `json:"name"`
	FooterBody   string             `json:"footer_body"`
	ActiveStatus types.ActiveStatus `json:"active_status"`
}

func (h *ContentHandler) CreateFooter(w http.ResponseWriter, r *http.Request) {
	var req FooterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !req.ActiveStatus.Valid() {
		writeError(w, http.StatusBadRequest, "active_status must be ACTIVE or PASSIVE")
		return
	}

	if _, err := h.contentService.GetFooterByName(r.Context(), req.Name); err == nil {
		writeError(w, http.StatusConflict, "Same Footer Name Already Exist")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "failed to check footer")
		return
	}

	created, err := h.contentService.CreateFooter(r.Context(), types.FooterEntry{
		Name:         req.Name,
		FooterBody:   req.FooterBody,
		ActiveStatus: req.ActiveStatus,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "Same Footer Name Already Exist")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create footer")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContentHandler) ListFooters(w http.ResponseWriter, r *http.Request) {
	footers, err := h.contentService.ListFooters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list footers")
		return
	}
	if len(footers) == 0 {
		writeError(w, http.StatusNotFound, "Active Footer is not found")
		return
	}
	writeJSON(w, http.StatusOK, footers)
}

type DiscountCodeRequest struct {
	Name         string             `json:"name"`
	DiscountCode string             `json:"discount_code"`
	ActiveStatus types.ActiveStatus `json:"active_status"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
}

func (h *ContentHandler) CreateDiscountCode(w http.ResponseWriter, r *http.Request) {
	var req DiscountCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.DiscountCode = strings.TrimSpace(req.DiscountCode)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.DiscountCode == "" {
		writeError(w, http.StatusBadRequest, "discount_code is required")
		return
	}
	if !req.ActiveStatus.Valid() {
		writeError(w, http.StatusBadRequest, "active_status must be ACTIVE or PASSIVE")
		return
	}

	created, err := h.contentService.CreateDiscountCode(r.Context(), types.DiscountCode{
		Name:         req.Name,
		DiscountCode: req.DiscountCode,
		ActiveStatus: req.ActiveStatus,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create discount code")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContentHandler) ListDiscountCodes(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.contentService.ListDiscountCodes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list discount codes")
		return
	}
	if len(discounts) == 0 {
		writeError(w, http.StatusNotFound, "Active Discount is not found")
		return
	}
	writeJSON(w, http.StatusOK, discounts)
}
