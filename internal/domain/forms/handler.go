package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"drug-concentration/internal/domain/concentration"
	"drug-concentration/internal/platform/logger"
	"drug-concentration/internal/ports/chart"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, renderer chart.Renderer, log logger.Logger) {
	r.Route("/forms", func(fr chi.Router) {
		fr.Post("/", openFormHandler(svc))

		fr.Get("/{formID}", getFormHandler(svc))
		fr.Patch("/{formID}", editFormHandler(svc))

		// Botones del formulario
		fr.Post("/{formID}/plot", plotHandler(svc, log))
		fr.Get("/{formID}/chart", chartHandler(svc, renderer, log))
		fr.Post("/{formID}/reset", resetHandler(svc))
	})
}

type fieldsPayload struct {
	Dose            string `json:"dose"`
	EliminationRate string `json:"elimination_rate"`
	TimeStart       string `json:"time_start"`
	TimeEnd         string `json:"time_end"`
	Intervals       string `json:"intervals"`
}

type formResponse struct {
	ID        string        `json:"id"`
	Fields    fieldsPayload `json:"fields"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type editFormRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Dose            *string `json:"dose"`
	EliminationRate *string `json:"elimination_rate"`
	TimeStart       *string `json:"time_start"`
	TimeEnd         *string `json:"time_end"`
	Intervals       *string `json:"intervals"`
}

type dialogResponse struct {
	Kind    DialogKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

type dialogErrorResponse struct {
	Dialog dialogResponse `json:"dialog"`
}

type plotResponse struct {
	concentration.PlotResponse
	ChartURL string `json:"chart_url"`
}

type resetResponse struct {
	Form   formResponse   `json:"form"`
	Dialog dialogResponse `json:"dialog"`
}

// openFormHandler godoc
// @Summary  Open a form with default fields
// @Tags     forms
// @Produce  json
// @Success  201 {object} formResponse
// @Router   /forms [post]
func openFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Open(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toFormResponse(f))
	}
}

// getFormHandler godoc
// @Summary  Read the current field values
// @Tags     forms
// @Produce  json
// @Param    formID path string true "form id"
// @Success  200 {object} formResponse
// @Failure  404 {string} string
// @Router   /forms/{formID} [get]
func getFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Get(r.Context(), chi.URLParam(r, "formID"))
		if err != nil {
			http.Error(w, "form not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toFormResponse(f))
	}
}

// editFormHandler godoc
// @Summary  Type into one or more fields
// @Tags     forms
// @Accept   json
// @Produce  json
// @Param    formID path string true "form id"
// @Param    body body editFormRequest true "free-text field values"
// @Success  200 {object} formResponse
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Router   /forms/{formID} [patch]
func editFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req editFormRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.Edit(r.Context(), chi.URLParam(r, "formID"), EditInput{
			Dose:            req.Dose,
			EliminationRate: req.EliminationRate,
			TimeStart:       req.TimeStart,
			TimeEnd:         req.TimeEnd,
			Intervals:       req.Intervals,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "form not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toFormResponse(f))
	}
}

// plotHandler godoc
// @Summary  Generate Plot: sampled curve and total effect
// @Tags     forms
// @Produce  json
// @Param    formID path string true "form id"
// @Param    integration query string false "closed_form (default) or quadrature" Enums(closed_form, quadrature)
// @Success  200 {object} plotResponse
// @Failure  400 {object} dialogErrorResponse
// @Failure  404 {string} string
// @Failure  422 {object} dialogErrorResponse
// @Router   /forms/{formID}/plot [post]
func plotHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "formID")

		method, err := concentration.ParseMethod(r.URL.Query().Get("integration"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		plot, err := svc.Generate(r.Context(), formID, method)
		if err != nil {
			writeGenerateError(w, err, log)
			return
		}
		if !plot.Finite() {
			writeGenerateError(w, chart.ErrUnrenderable, log)
			return
		}

		writeJSON(w, http.StatusOK, plotResponse{
			PlotResponse: concentration.ToPlotResponse(plot),
			ChartURL:     "/forms/" + formID + "/chart",
		})
	}
}

// chartHandler godoc
// @Summary  Generate Plot rendered as an image
// @Tags     forms
// @Produce  png
// @Produce  image/svg+xml
// @Param    formID path string true "form id"
// @Param    format query string false "png (default) or svg" Enums(png, svg)
// @Param    integration query string false "closed_form (default) or quadrature" Enums(closed_form, quadrature)
// @Success  200 {file} file
// @Failure  400 {object} dialogErrorResponse
// @Failure  404 {string} string
// @Failure  422 {object} dialogErrorResponse
// @Router   /forms/{formID}/chart [get]
func chartHandler(svc *Service, renderer chart.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := chart.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		method, err := concentration.ParseMethod(r.URL.Query().Get("integration"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		plot, err := svc.Generate(r.Context(), chi.URLParam(r, "formID"), method)
		if err != nil {
			writeGenerateError(w, err, log)
			return
		}

		// Render a buffer: si falla, todavía podemos responder con el diálogo.
		var buf bytes.Buffer
		if err := renderer.Render(r.Context(), &buf, plot, format); err != nil {
			writeGenerateError(w, err, log)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// resetHandler godoc
// @Summary  Reset all fields to their defaults
// @Tags     forms
// @Produce  json
// @Param    formID path string true "form id"
// @Success  200 {object} resetResponse
// @Failure  404 {string} string
// @Router   /forms/{formID}/reset [post]
func resetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.Reset(r.Context(), chi.URLParam(r, "formID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "form not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, resetResponse{
			Form:   toFormResponse(f),
			Dialog: toDialogResponse(ResetDialog()),
		})
	}
}

func writeGenerateError(w http.ResponseWriter, err error, log logger.Logger) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
		http.Error(w, "form not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidNumber):
		writeJSON(w, http.StatusBadRequest, dialogErrorResponse{Dialog: toDialogResponse(DialogFor(err))})
	case errors.Is(err, concentration.ErrInvalidRange),
		errors.Is(err, ErrTooManySamples),
		errors.Is(err, chart.ErrUnrenderable):
		writeJSON(w, http.StatusUnprocessableEntity, dialogErrorResponse{Dialog: toDialogResponse(DialogFor(err))})
	default:
		log.Error("generate plot failed", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toFormResponse(f Form) formResponse {
	return formResponse{
		ID: f.ID,
		Fields: fieldsPayload{
			Dose:            f.Fields.Dose,
			EliminationRate: f.Fields.EliminationRate,
			TimeStart:       f.Fields.TimeStart,
			TimeEnd:         f.Fields.TimeEnd,
			Intervals:       f.Fields.Intervals,
		},
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toDialogResponse(d Dialog) dialogResponse {
	return dialogResponse{Kind: d.Kind, Title: d.Title, Message: d.Message}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (forms/concentration) para no crear un paquete de helpers tan pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
