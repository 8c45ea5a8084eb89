package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"copydesk/internal/domain"
)

func (a *App) ProductsList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Products.List(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Product{}
	}
	a.json(w, http.StatusOK, items)
}

func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Category: strings.TrimSpace(q.Get("category")),
		Brand:    strings.TrimSpace(q.Get("brand")),
	}
	for key, dst := range map[string]**float64{"min_price": &filter.MinPrice, "max_price": &filter.MaxPrice} {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, domain.InvalidRequestf("%s must be a number", key)
		}
		*dst = domain.Float(v)
	}
	return filter, nil
}

func (a *App) ProductGet(w http.ResponseWriter, r *http.Request) {
	p, err := a.Products.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, p)
}

func (a *App) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := decodeJSON(w, r, &p); err != nil {
		a.fail(w, r, err)
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	created, err := a.Products.Create(r.Context(), p)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, created)
}

// ProductUpdate overwrites the keys present in the body and keeps the rest
// of the stored record.
func (a *App) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch map[string]json.RawMessage
	if err := decodeJSON(w, r, &patch); err != nil {
		a.fail(w, r, err)
		return
	}
	current, err := a.Products.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	merged, err := mergeProduct(*current, patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	updated, err := a.Products.Update(r.Context(), id, merged)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, updated)
}

func mergeProduct(current domain.Product, patch map[string]json.RawMessage) (domain.Product, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return current, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return current, err
	}
	for k, v := range patch {
		fields[k] = v
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return current, err
	}
	var out domain.Product
	if err := json.Unmarshal(raw, &out); err != nil {
		return current, domain.InvalidRequestf("invalid product fields: %v", err)
	}
	return out, nil
}

func (a *App) ProductDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.Products.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, deleted)
}
