package concentration

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, maxSamples int) {
	r.Post("/concentration/evaluate", evaluateHandler(maxSamples))
}

type evaluateRequest struct {
	Dose            float64 `json:"dose"`
	EliminationRate float64 `json:"elimination_rate"`
	TimeStart       float64 `json:"time_start"`
	TimeEnd         float64 `json:"time_end"`
	SampleCount     int     `json:"sample_count"`
	Integration     string  `json:"integration" enums:"closed_form,quadrature"` // default closed_form
}

type pointResponse struct {
	Time          float64 `json:"t"`
	Concentration float64 `json:"c"`
}

type parametersResponse struct {
	Dose            float64 `json:"dose"`
	EliminationRate float64 `json:"elimination_rate"`
	TimeStart       float64 `json:"time_start"`
	TimeEnd         float64 `json:"time_end"`
	SampleCount     int     `json:"sample_count"`
}

// PlotResponse es compartido con el handler de formularios.
type PlotResponse struct {
	Params           parametersResponse `json:"params"`
	Curve            []pointResponse    `json:"curve"`
	TotalEffect      float64            `json:"total_effect"`
	TotalEffectLabel string             `json:"total_effect_label"`
}

// ToPlotResponse convierte un Plot al payload JSON.
func ToPlotResponse(p Plot) PlotResponse {
	curve := make([]pointResponse, 0, len(p.Curve))
	for _, pt := range p.Curve {
		curve = append(curve, pointResponse{Time: pt.Time, Concentration: pt.Concentration})
	}
	return PlotResponse{
		Params: parametersResponse{
			Dose:            p.Params.Dose,
			EliminationRate: p.Params.EliminationRate,
			TimeStart:       p.Params.TimeStart,
			TimeEnd:         p.Params.TimeEnd,
			SampleCount:     p.Params.SampleCount,
		},
		Curve:            curve,
		TotalEffect:      p.TotalEffect,
		TotalEffectLabel: p.TotalEffectLabel(),
	}
}

// evaluateHandler godoc
// @Summary  Evaluate a concentration curve
// @Tags     concentration
// @Accept   json
// @Produce  json
// @Param    body body evaluateRequest true "dose parameters"
// @Success  200 {object} PlotResponse
// @Failure  400 {string} string
// @Failure  422 {string} string
// @Router   /concentration/evaluate [post]
func evaluateHandler(maxSamples int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		method, err := ParseMethod(req.Integration)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if maxSamples > 0 && req.SampleCount > maxSamples {
			http.Error(w, fmt.Sprintf("sample_count must be at most %d", maxSamples), http.StatusUnprocessableEntity)
			return
		}

		plot, err := Evaluate(DoseParameters{
			Dose:            req.Dose,
			EliminationRate: req.EliminationRate,
			TimeStart:       req.TimeStart,
			TimeEnd:         req.TimeEnd,
			SampleCount:     req.SampleCount,
		}, method)
		if err != nil {
			if errors.Is(err, ErrInvalidRange) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !plot.Finite() {
			http.Error(w, "result is not finite", http.StatusUnprocessableEntity)
			return
		}

		writeJSON(w, http.StatusOK, ToPlotResponse(plot))
	}
}

// writeJSON duplicado a propósito en cada módulo (igual que en forms).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
