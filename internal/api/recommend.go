package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Peminatan/internal/hermes"
	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
	"github.com/MikeSquared-Agency/Peminatan/internal/scoring"
)

const defaultStudentName = "Siswa"

type RecommendHandler struct {
	scorer *scoring.Scorer
	hermes hermes.Client
	logger *slog.Logger
}

func NewRecommendHandler(s *scoring.Scorer, h hermes.Client, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{scorer: s, hermes: h, logger: logger}
}

type RecommendRequest struct {
	StudentName   string                       `json:"student_name"`
	StudentClass  string                       `json:"student_class"`
	Grades        map[string]float64           `json:"grades"`
	RIASECScores  map[riasec.Dimension]float64 `json:"riasec_scores"`
	Aspiration    string                       `json:"aspiration"`
	CustomWeights scoring.CustomWeights        `json:"custom_weights,omitempty"`
}

type RecommendResponse struct {
	RecommendationID string                   `json:"recommendation_id"`
	StudentName      string                   `json:"student_name"`
	StudentClass     string                   `json:"student_class"`
	Aspiration       string                   `json:"aspiration"`
	Recommendations  []scoring.Recommendation `json:"recommendations"`
	Summary          scoring.Summary          `json:"saw_summary"`
	CareerMatch      any                      `json:"career_match"`
	GeneratedAt      time.Time                `json:"generated_at"`
}

func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StudentName == "" {
		req.StudentName = defaultStudentName
	}

	student := scoring.Student{
		Name:       req.StudentName,
		Class:      req.StudentClass,
		Grades:     req.Grades,
		RIASEC:     req.RIASECScores,
		Aspiration: req.Aspiration,
	}
	out, err := h.scorer.Recommend(r.Context(), student, nil, req.CustomWeights)
	if err != nil {
		if errorStatus(err) == http.StatusInternalServerError {
			h.logger.Error("recommendation failed", "error", err)
		}
		writeError(w, err)
		return
	}

	resp := RecommendResponse{
		RecommendationID: uuid.NewString(),
		StudentName:      req.StudentName,
		StudentClass:     req.StudentClass,
		Aspiration:       req.Aspiration,
		Recommendations:  out.Recommendations,
		Summary:          out.Summary,
		CareerMatch:      struct{}{},
		GeneratedAt:      time.Now().UTC(),
	}
	careerKey := ""
	if out.CareerMatch != nil {
		resp.CareerMatch = out.CareerMatch
		careerKey = out.CareerMatch.Key
	}

	recommendationsTotal.Inc()
	topScore.Observe(out.Recommendations[0].Score)

	publish(r, h.hermes, h.logger, hermes.SubjectRecommendationComputed(resp.RecommendationID), hermes.RecommendationComputedEvent{
		RecommendationID: resp.RecommendationID,
		StudentName:      resp.StudentName,
		StudentClass:     resp.StudentClass,
		Aspiration:       resp.Aspiration,
		TopSubjects:      out.Summary.Top5,
		TopScore:         out.Recommendations[0].Score,
		CareerPackage:    careerKey,
		Weights: map[string]float64{
			scoring.KeyAcademic:     out.Weights.Academic,
			scoring.KeyRIASEC:       out.Weights.RIASEC,
			scoring.KeyAspiration:   out.Weights.Aspiration,
			scoring.KeyAvailability: out.Weights.Availability,
		},
		GeneratedAt: resp.GeneratedAt,
	})

	writeData(w, resp)
}

type CalculateSAWRequest struct {
	Matrix  [][]float64 `json:"matrix"`
	Weights []float64   `json:"weights"`
	Types   []saw.Type  `json:"types"`
	Names   []string    `json:"names,omitempty"`
}

type CalculateSAWResponse struct {
	Criteria []saw.Criterion `json:"criteria"`
	*saw.Result
}

// CalculateSAW runs the bare SAW method on a caller-supplied decision matrix.
func (h *RecommendHandler) CalculateSAW(w http.ResponseWriter, r *http.Request) {
	var req CalculateSAWRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	criteria, err := saw.NewCriteria(req.Weights, req.Types, req.Names)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := saw.Calculate(req.Matrix, criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, CalculateSAWResponse{Criteria: criteria.List(), Result: res})
}

type AdviceRequest struct {
	HollandCode        string   `json:"holland_code"`
	TopRecommendations []string `json:"top_recommendations"`
	Aspiration         string   `json:"aspiration"`
	MeetsMinimum       *bool    `json:"meets_minimum"`
}

func (h *RecommendHandler) Advice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	meets := true
	if req.MeetsMinimum != nil {
		meets = *req.MeetsMinimum
	}
	writeData(w, scoring.Counsel(scoring.AdviceRequest{
		HollandCode:        req.HollandCode,
		TopRecommendations: req.TopRecommendations,
		Aspiration:         req.Aspiration,
		MeetsMinimum:       meets,
	}))
}
