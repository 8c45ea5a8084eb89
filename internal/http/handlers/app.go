package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"copydesk/internal/content"
	"copydesk/internal/domain"
)

// ContentService is the generation surface the handlers need.
type ContentService interface {
	Generate(ctx context.Context, req content.Request) (*content.Result, error)
	GenerateImage(ctx context.Context, p domain.Product, style domain.ImageStyle) (*domain.ImageContent, error)
	ContentTypes() []domain.ContentType
}

// ProductCompleter fills the absent fields of a product record.
type ProductCompleter interface {
	Complete(ctx context.Context, p domain.Product) (domain.Product, error)
}

type App struct {
	Content   ContentService
	Completer ProductCompleter
	Products  domain.ProductRepository
	Log       zerolog.Logger
}

func NewApp(svc ContentService, completer ProductCompleter, products domain.ProductRepository, log zerolog.Logger) *App {
	return &App{Content: svc, Completer: completer, Products: products, Log: log}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, errorBody{Error: errCode, Message: msg})
}

// fail maps domain errors onto status codes. Unknown errors are logged and
// reported as 500 without their text.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrGeneration):
		a.logger(r).Error().Err(err).Msg("generation failed")
		a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
	default:
		a.logger(r).Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// logger prefers the request-scoped logger installed by the access-log
// middleware.
func (a *App) logger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Log
}

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return domain.InvalidRequestf("invalid payload: %v", err)
	}
	return nil
}
