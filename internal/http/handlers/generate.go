package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"copydesk/internal/content"
	"copydesk/internal/domain"
)

type generateContentRequest struct {
	ProductID    string                 `json:"product_id"`
	ProductData  *domain.Product        `json:"product_data"`
	ContentTypes []domain.ContentType   `json:"content_types"`
	Style        domain.StyleConfig     `json:"style"`
	SocialMedia  *domain.PlatformConfig `json:"social_media"`
}

func (a *App) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req generateContentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	res, err := a.Content.Generate(r.Context(), content.Request{
		ProductID:    req.ProductID,
		Product:      req.ProductData,
		ContentTypes: req.ContentTypes,
		Style:        req.Style.WithDefaults(),
		Platforms:    req.SocialMedia,
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, res)
}

type generateImageRequest struct {
	ProductData *domain.Product   `json:"product_data"`
	Style       domain.ImageStyle `json:"style"`
}

type generateImageResponse struct {
	Product     domain.Product       `json:"product"`
	ImageResult *domain.ImageContent `json:"image_result"`
}

func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	if req.ProductData == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "product_data must be provided")
		return
	}
	img, err := a.Content.GenerateImage(r.Context(), *req.ProductData, req.Style)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, generateImageResponse{Product: *req.ProductData, ImageResult: img})
}

type completeProductRequest struct {
	ProductID   string          `json:"product_id"`
	ProductData *domain.Product `json:"product_data"`
}

type completeProductResponse struct {
	Product   domain.Product `json:"product"`
	Persisted bool           `json:"persisted"`
}

// CompleteProduct returns the record with every absent field generated.
// With ?persist=true a record carrying an id is written back to the catalog.
func (a *App) CompleteProduct(w http.ResponseWriter, r *http.Request) {
	var req completeProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	persist, _ := strconv.ParseBool(r.URL.Query().Get("persist"))

	var source domain.Product
	switch {
	case req.ProductID != "":
		p, err := a.Products.GetByID(r.Context(), req.ProductID)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		source = *p
	case req.ProductData != nil:
		source = *req.ProductData
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "either product_id or product_data must be provided")
		return
	}

	completed, err := a.Completer.Complete(r.Context(), source)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	resp := completeProductResponse{Product: completed}
	if persist && completed.ID != "" {
		saved, err := a.Products.Update(r.Context(), completed.ID, completed)
		if errors.Is(err, domain.ErrNotFound) {
			saved, err = a.Products.Create(r.Context(), completed)
		}
		if err != nil {
			a.fail(w, r, err)
			return
		}
		resp.Product = *saved
		resp.Persisted = true
	}
	a.json(w, http.StatusOK, resp)
}
