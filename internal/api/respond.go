package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Peminatan/internal/riasec"
	"github.com/MikeSquared-Agency/Peminatan/internal/saw"
	"github.com/MikeSquared-Agency/Peminatan/internal/scoring"
)

// envelope is the body shape shared by every /api/v1 endpoint except /health.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Total: &total})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Message: msg})
}

// writeError maps err onto a status code: input problems are 400, unusable
// criteria 422, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	writeMessage(w, errorStatus(err), err.Error())
}

func errorStatus(err error) int {
	var (
		scoringErr *scoring.ValidationError
		sawErr     *saw.ValidationError
		riasecErr  *riasec.ValidationError
		configErr  *saw.ConfigurationError
	)
	switch {
	case errors.As(err, &scoringErr), errors.As(err, &sawErr), errors.As(err, &riasecErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
