package api

import (
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
)

// Version is reported by the health endpoint.
var Version = "2.0.0"

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.catalog.Questions, len(h.catalog.Questions))
}

func (h *CatalogHandler) Descriptions(w http.ResponseWriter, r *http.Request) {
	writeData(w, h.catalog.Descriptions)
}

func (h *CatalogHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	subjects := h.catalog.SubjectsByGroup(r.URL.Query().Get("group"))
	writeList(w, subjects, len(subjects))
}

// CareerPackages returns the packages keyed by package key.
func (h *CatalogHandler) CareerPackages(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]catalog.CareerPackage, len(h.catalog.CareerPackages))
	for _, p := range h.catalog.CareerPackages {
		out[p.Key] = p
	}
	writeData(w, out)
}
