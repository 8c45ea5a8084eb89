package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) ContentTypes(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"content_types": a.Content.ContentTypes()})
}
