package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/datetimecheck/pkg/logger"
	"github.com/dmitrymomot/datetimecheck/pkg/validator"
)

const maxBodyBytes = 1 << 20

type handler struct {
	log      *slog.Logger
	maxBatch int
}

type validateRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type batchRequest struct {
	Field  string `json:"field"`
	Values []any  `json:"values"`
}

// Violation is the JSON form of validator.ValidationError.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	UUID    string `json:"uuid"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// Result is the outcome of validating one value.
type Result struct {
	Field      string      `json:"field"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// BatchItem is one entry of a batch response. Error is set instead of
// Violations when the value had an unsupported JSON type.
type BatchItem struct {
	Index      int         `json:"index"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
	Error      string      `json:"error,omitempty"`
}

type BatchResult struct {
	Field   string      `json:"field"`
	Valid   bool        `json:"valid"`
	Results []BatchItem `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, decodeStatus(err), err)
		return
	}

	verrs, err := validator.ValidateDateTime(req.Field, req.Value)
	if err != nil {
		h.log.DebugContext(r.Context(), "unsupported value type", logger.Field(req.Field), logger.Error(err))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	h.logResult(r, req.Field, verrs)
	writeJSON(w, http.StatusOK, Result{
		Field:      req.Field,
		Valid:      verrs.IsEmpty(),
		Violations: toViolations(verrs),
	})
}

func (h *handler) validateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, decodeStatus(err), err)
		return
	}
	switch {
	case len(req.Values) == 0:
		writeError(w, http.StatusBadRequest, errEmptyBatch)
		return
	case len(req.Values) > h.maxBatch:
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d > %d", errBatchTooLarge, len(req.Values), h.maxBatch))
		return
	}

	res := BatchResult{Field: req.Field, Valid: true, Results: make([]BatchItem, 0, len(req.Values))}
	for i, v := range req.Values {
		item := BatchItem{Index: i, Violations: []Violation{}}
		verrs, err := validator.ValidateDateTime(req.Field, v)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Valid = verrs.IsEmpty()
			item.Violations = toViolations(verrs)
		}
		res.Valid = res.Valid && item.Valid
		res.Results = append(res.Results, item)
	}

	h.log.DebugContext(r.Context(), "batch validated",
		logger.Field(req.Field),
		slog.Int("count", len(req.Values)),
		slog.Bool("valid", res.Valid),
	)
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) logResult(r *http.Request, field string, verrs validator.ValidationErrors) {
	if verrs.IsEmpty() {
		return
	}
	h.log.DebugContext(r.Context(), "value rejected",
		logger.Field(field),
		logger.Value(verrs[0].Value),
		logger.ViolationCodes(verrs.Codes()),
	)
}

func toViolations(verrs validator.ValidationErrors) []Violation {
	out := make([]Violation, 0, len(verrs))
	for _, v := range verrs {
		out = append(out, Violation{
			Field:   v.Field,
			Code:    v.Code.String(),
			UUID:    v.Code.UUID().String(),
			Message: v.Message,
			Value:   v.Value,
		})
	}
	return out
}

// decodeJSON keeps numbers as json.Number so they are validated in their
// original text form.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON object", errMalformedBody)
	}
	return nil
}

// decodeStatus maps a decodeJSON error to 413 for oversized bodies and 400 otherwise.
func decodeStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
