// Package server serves the calculator web form and its JSON API.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/living-cost/internal/metrics"
	"github.com/iwvelando/living-cost/pkg/calculator"
	"github.com/iwvelando/living-cost/pkg/constants"
	"github.com/iwvelando/living-cost/pkg/livingcost"
	"github.com/iwvelando/living-cost/pkg/output"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Request sources for the calculations metric.
const (
	sourceForm = "form"
	sourceAPI  = "api"
)

type handler struct {
	logger         *zap.Logger
	calc           *calculator.Calculator
	maxRequestSize int64
	version        string
	page           *template.Template
	metrics        *metrics.Recorder
}

// NewHandler constructs the HTTP handler that serves the web UI and calculation API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	page := template.Must(template.ParseFS(assets, "templates/index.html"))

	h := &handler{
		logger:         logger,
		calc:           calculator.New(livingcost.Default(), cfg.Calculator.Options()...),
		maxRequestSize: cfg.RequestSizeBytes(),
		version:        trimmedVersion,
		page:           page,
		metrics:        metrics.NewRecorder(),
	}

	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.Middleware)
	r.Use(h.logRequest)

	// Web form
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleFormCalculate)

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Get("/regions", h.handleRegions)
		r.Get("/version", h.handleVersion)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", h.metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	return r
}

// pageData feeds templates/index.html.
type pageData struct {
	Groups             []output.GroupView
	Region             string
	HouseholdSize      string
	MaxHouseholdSize   int
	Result             *output.ResultView
	Headline           string
	RegionError        string
	HouseholdSizeError string
	Source             string
	Updated            string
	Version            string
}

func (h *handler) newPageData() pageData {
	view := output.NewRegionsView(h.calc.Table())
	return pageData{
		Groups:           view.Groups,
		MaxHouseholdSize: h.calc.MaxHouseholdSize(),
		Source:           view.Source,
		Updated:          view.Updated,
		Version:          h.version,
	}
}

func (h *handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	h.renderPage(w, http.StatusOK, h.newPageData(), "server.handleIndex")
}

func (h *handler) handleFormCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleFormCalculate"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, fmt.Sprintf("failed to parse form: %v", err), http.StatusBadRequest)
		return
	}

	data := h.newPageData()
	data.Region = strings.TrimSpace(r.PostFormValue("region"))
	data.HouseholdSize = strings.TrimSpace(r.PostFormValue("householdSize"))

	result, err := h.calculate(data.Region, data.HouseholdSize, sourceForm, op)
	if err != nil {
		var vErr *calculator.ValidationError
		if !errors.As(err, &vErr) {
			h.renderInternalError(w, err, op)
			return
		}
		switch vErr.Field {
		case calculator.FieldRegion:
			data.RegionError = regionMessage()
		case calculator.FieldHouseholdSize:
			data.HouseholdSizeError = householdSizeMessage(h.calc.MaxHouseholdSize())
		}
		h.renderPage(w, http.StatusUnprocessableEntity, data, op)
		return
	}

	view := output.NewResultView(result)
	data.Result = &view
	data.Headline = output.Headline(result)
	h.renderPage(w, http.StatusOK, data, op)
}

type calculateRequest struct {
	Region        string          `json:"region"`
	HouseholdSize json.RawMessage `json:"householdSize"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	result, err := h.calculate(req.Region, rawHouseholdSize(req.HouseholdSize), sourceAPI, op)
	if err != nil {
		var vErr *calculator.ValidationError
		if errors.As(err, &vErr) {
			h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": vErr.Error(),
				"field": vErr.Field,
			})
			return
		}
		h.respondErrorWithOp(w, http.StatusInternalServerError, "calculation failed", op)
		return
	}

	h.writeJSON(w, http.StatusOK, output.NewResultView(result))
}

func (h *handler) handleRegions(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, output.NewRegionsView(h.calc.Table()))
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// calculate runs the calculator and records the outcome. Errors other than
// validation failures mean the table is inconsistent and are logged loudly.
func (h *handler) calculate(region, householdSize, source, op string) (calculator.Result, error) {
	result, err := h.calc.Calculate(region, householdSize)
	outcome := calculator.Outcome(err)
	h.metrics.ObserveCalculation(source, outcome)

	var vErr *calculator.ValidationError
	switch {
	case err == nil:
		h.logger.Debug("calculation completed",
			zap.String("op", op),
			zap.String("region", result.Region.String()),
			zap.Int("householdSize", result.HouseholdSize),
			zap.Int64("totalCost", result.TotalCost),
		)
	case errors.As(err, &vErr):
		h.logger.Debug("calculation rejected",
			zap.String("op", op),
			zap.String("field", vErr.Field),
			zap.String("outcome", outcome),
		)
	default:
		h.logger.Error("calculation failed",
			zap.String("op", op),
			zap.String("region", region),
			zap.Error(err),
		)
	}
	return result, err
}

// rawHouseholdSize accepts either a JSON string or a JSON number and
// returns its text for the calculator to parse.
func rawHouseholdSize(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	}
	return string(trimmed)
}

func regionMessage() string {
	return "請選擇您的居住縣市"
}

func householdSizeMessage(ceiling int) string {
	return fmt.Sprintf("請輸入 %d 至 %d 之間的整數", constants.MinHouseholdSize, ceiling)
}

func (h *handler) renderPage(w http.ResponseWriter, status int, data pageData, op string) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.renderInternalError(w, err, op)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

func (h *handler) renderInternalError(w http.ResponseWriter, err error, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request served",
			zap.String("op", "server.request"),
			zap.String("requestId", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
