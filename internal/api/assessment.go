package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Peminatan/internal/catalog"
	"github.com/MikeSquared-Agency/Peminatan/internal/hermes"
	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
	"github.com/MikeSquared-Agency/Peminatan/internal/scoring"
)

type AssessmentHandler struct {
	catalog *catalog.Catalog
	hermes  hermes.Client
	logger  *slog.Logger
}

func NewAssessmentHandler(c *catalog.Catalog, h hermes.Client, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{catalog: c, hermes: h, logger: logger}
}

type CalculateRIASECRequest struct {
	Answers []float64 `json:"answers"`
}

type AssessmentResponse struct {
	riasec.Profile
	AssessmentID      string                      `json:"assessment_id"`
	TopDescription    catalog.Description         `json:"top_description"`
	SuggestedPackages []scoring.PackageSuggestion `json:"suggested_packages"`
}

func (h *AssessmentHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRIASECRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := riasec.Score(h.catalog.Questions, req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	assessmentsTotal.Inc()

	resp := AssessmentResponse{
		Profile:           profile,
		AssessmentID:      uuid.NewString(),
		TopDescription:    h.catalog.Descriptions[profile.TopType],
		SuggestedPackages: scoring.SuggestPackages(h.catalog, profile),
	}

	scores := make(map[string]float64, len(profile.Scores))
	for d, s := range profile.Scores {
		scores[string(d)] = s
	}
	publish(r, h.hermes, h.logger, hermes.SubjectAssessmentComputed(resp.AssessmentID), hermes.AssessmentComputedEvent{
		AssessmentID: resp.AssessmentID,
		HollandCode:  profile.HollandCode,
		TopType:      string(profile.TopType),
		Scores:       scores,
		GeneratedAt:  time.Now().UTC(),
	})

	writeData(w, resp)
}
