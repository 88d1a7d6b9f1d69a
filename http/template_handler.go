package http

import (
	"net/http"

	"loan-advisor/domain"
	"loan-advisor/repository"
)

type TemplateHandler struct {
	catalog *repository.Catalog
}

func NewTemplateHandler(catalog *repository.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: catalog}
}

type templateListResponse struct {
	Templates []domain.ProductTemplate `json:"templates"`
	Count     int                      `json:"count"`
}

// ListTemplates serves the merged catalog, optionally narrowed by the
// category query parameter.
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot := h.catalog.Snapshot(r.Context())
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := snapshot[:0:0]
		for _, tpl := range snapshot {
			if tpl.Category == domain.Category(category) {
				filtered = append(filtered, tpl)
			}
		}
		snapshot = filtered
	}

	writeJSON(w, http.StatusOK, templateListResponse{
		Templates: snapshot,
		Count:     len(snapshot),
	})
}
