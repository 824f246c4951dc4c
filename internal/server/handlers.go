package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvbasket/compare"
	"github.com/katalvlaran/lvbasket/internal/config"
	"github.com/katalvlaran/lvbasket/internal/engine"
	"github.com/katalvlaran/lvbasket/internal/logging"
	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/preprocess"
	"github.com/katalvlaran/lvbasket/recommend"
	"github.com/katalvlaran/lvbasket/rules"
	"github.com/katalvlaran/lvbasket/store"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 8 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := preprocess.RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// ErrItemsetTooLong is returned when a request asks for longer itemsets
// than server.max_itemset_length allows.
var ErrItemsetTooLong = errors.New("server: max_length above the server limit")

// Handler serves the API routes.
type Handler struct {
	defaults    config.MiningConfig
	catalog     *preprocess.Catalog
	maxLength   int
	mineTimeout time.Duration
	log         zerolog.Logger
}

// NewHandler returns a Handler that falls back to cfg.Mining for omitted
// thresholds and bounds every run by the server limits.
func NewHandler(cfg *config.Config, catalog *preprocess.Catalog) *Handler {
	return &Handler{
		defaults:    cfg.Mining,
		catalog:     catalog,
		maxLength:   cfg.Server.MaxItemsetLength,
		mineTimeout: cfg.Server.MineTimeout,
		log:         logging.Component("server"),
	}
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/stats", h.Stats)
		r.Post("/mine", h.Mine)
		r.Post("/rules", h.Rules)
		r.Post("/recommend", h.Recommend)
		r.Post("/compare", h.Compare)
	})
}

// MineRequest carries transactions inline.
type MineRequest struct {
	Transactions []preprocess.Record `json:"transactions" validate:"required,max=100000,dive"`
	MinSupport   *float64            `json:"min_support,omitempty" validate:"omitempty,gt=0,lte=1"`
	Algorithm    string              `json:"algorithm,omitempty" validate:"omitempty,oneof=apriori eclat"`
	MaxLength    *int                `json:"max_length,omitempty" validate:"omitempty,gte=1"`
	// Clean runs the records through the catalog filter first.
	Clean bool `json:"clean,omitempty"`
}

// RulesRequest adds a confidence threshold.
type RulesRequest struct {
	MineRequest
	MinConfidence *float64 `json:"min_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// RecommendRequest asks for suggestions for one product.
type RecommendRequest struct {
	RulesRequest
	Product string `json:"product" validate:"required,max=128"`
	Limit   int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=100"`
}

// StatsRequest asks for item frequencies of inline transactions.
type StatsRequest struct {
	Transactions []preprocess.Record `json:"transactions" validate:"required,max=100000,dive"`
	Clean        bool                `json:"clean,omitempty"`
	Top          int                 `json:"top,omitempty" validate:"omitempty,gte=1"`
}

// StatsResponse summarizes the transactions.
type StatsResponse struct {
	itemset.Summary
	Items []itemset.ItemCount `json:"items"`
	Stats *preprocess.Stats   `json:"stats,omitempty"`
}

// CompareRequest runs both miners.
type CompareRequest struct {
	RulesRequest
	Parallel bool `json:"parallel,omitempty"`
}

// MineResponse lists the frequent itemsets.
type MineResponse struct {
	Algorithm    string             `json:"algorithm"`
	MinSupport   float64            `json:"min_support"`
	Transactions int                `json:"transactions"`
	Count        int                `json:"count"`
	DurationMS   float64            `json:"duration_ms"`
	Itemsets     []store.LevelEntry `json:"itemsets"`
	Stats        *preprocess.Stats  `json:"stats,omitempty"`
}

// RulesResponse lists the generated rules.
type RulesResponse struct {
	MinConfidence float64      `json:"min_confidence"`
	Count         int          `json:"count"`
	Rules         []rules.Rule `json:"rules"`
}

// CompareResponse wraps a comparison report.
type CompareResponse struct {
	Report   *compare.Report `json:"report"`
	Table    []compare.Row   `json:"table"`
	Summary  compare.Summary `json:"summary"`
	Mismatch string          `json:"mismatch,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats handles POST /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if !h.decode(w, r, &req) {
		return
	}
	txs, stats, err := h.transactions(MineRequest{Transactions: req.Transactions, Clean: req.Clean})
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	items := itemset.ItemFrequencies(txs)
	if req.Top > 0 && req.Top < len(items) {
		items = items[:req.Top]
	}
	writeJSON(w, http.StatusOK, StatsResponse{Summary: itemset.Summarize(txs), Items: items, Stats: stats})
}

// Mine handles POST /api/mine.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	var req MineRequest
	if !h.decode(w, r, &req) {
		return
	}
	txs, stats, err := h.transactions(req)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	p, err := h.params(req, nil)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}
	ctx, cancel := h.mineContext(r)
	defer cancel()
	levels, elapsed, err := engine.Mine(ctx, txs, p)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}

	resp := MineResponse{
		Algorithm:    p.Algorithm,
		MinSupport:   p.MinSupport,
		Transactions: len(txs),
		Count:        levels.Count(),
		DurationMS:   float64(elapsed) / float64(time.Millisecond),
		Itemsets:     make([]store.LevelEntry, 0, levels.Count()),
		Stats:        stats,
	}
	if resp.Algorithm == "" {
		resp.Algorithm = config.AlgorithmApriori
	}
	for _, e := range levels.Entries() {
		resp.Itemsets = append(resp.Itemsets, store.LevelEntry{Size: e.Set.Len(), Itemset: e.Set, Support: e.Support})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Rules handles POST /api/rules.
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	var req RulesRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, rs, ok := h.rules(w, r, req)
	if !ok {
		return
	}
	rules.SortByConfidence(rs)
	writeJSON(w, http.StatusOK, RulesResponse{MinConfidence: p.MinConfidence, Count: len(rs), Rules: rs})
}

// Recommend handles POST /api/recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if !h.decode(w, r, &req) {
		return
	}
	_, rs, ok := h.rules(w, r, req.RulesRequest)
	if !ok {
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = 10
	}
	writeJSON(w, http.StatusOK, recommend.For(rs, req.Product, limit))
}

// Compare handles POST /api/compare.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !h.decode(w, r, &req) {
		return
	}
	txs, _, err := h.transactions(req.MineRequest)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	p, err := h.params(req.MineRequest, req.MinConfidence)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}
	ctx, cancel := h.mineContext(r)
	defer cancel()
	rep, err := engine.Compare(ctx, txs, p, req.Parallel)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}
	resp := CompareResponse{Report: rep, Table: rep.Rows(), Summary: rep.Winner()}
	if derr := rep.Err(); derr != nil {
		resp.Mismatch = derr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) rules(w http.ResponseWriter, r *http.Request, req RulesRequest) (engine.Params, []rules.Rule, bool) {
	txs, _, err := h.transactions(req.MineRequest)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return engine.Params{}, nil, false
	}
	p, err := h.params(req.MineRequest, req.MinConfidence)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return engine.Params{}, nil, false
	}
	ctx, cancel := h.mineContext(r)
	defer cancel()
	_, rs, err := engine.Rules(ctx, txs, p)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return engine.Params{}, nil, false
	}

	return p, rs, true
}

// params overlays request fields on the configured defaults and applies the
// server's itemset length cap.
func (h *Handler) params(req MineRequest, minConfidence *float64) (engine.Params, error) {
	p := engine.FromConfig(h.defaults)
	if req.MaxLength != nil {
		if h.maxLength > 0 && *req.MaxLength > h.maxLength {
			return engine.Params{}, fmt.Errorf("%w: %d > %d", ErrItemsetTooLong, *req.MaxLength, h.maxLength)
		}
		p.MaxLength = *req.MaxLength
	}
	if h.maxLength > 0 && (p.MaxLength == 0 || p.MaxLength > h.maxLength) {
		p.MaxLength = h.maxLength
	}
	if req.Algorithm != "" {
		p.Algorithm = req.Algorithm
	}
	if req.MinSupport != nil {
		p.MinSupport = *req.MinSupport
	}
	if minConfidence != nil {
		p.MinConfidence = *minConfidence
	}

	return p, nil
}

// mineContext derives the context a mining run is bound to.
func (h *Handler) mineContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.mineTimeout > 0 {
		return context.WithTimeout(r.Context(), h.mineTimeout)
	}
	return context.WithCancel(r.Context())
}

// transactions converts request records. Without Clean, labels are only
// normalized and blank IDs replaced.
func (h *Handler) transactions(req MineRequest) ([]itemset.Transaction, *preprocess.Stats, error) {
	if req.Clean {
		txs, stats, err := preprocess.Clean(req.Transactions, h.catalog)
		if err != nil {
			return nil, nil, err
		}
		return txs, &stats, nil
	}

	out := make([]itemset.Transaction, len(req.Transactions))
	for i, rec := range req.Transactions {
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			id = uuid.NewString()
		}
		out[i] = itemset.Transaction{ID: id, Items: itemset.FromStrings(rec.Items...)}
	}

	return out, nil, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.fail(w, r, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
		return false
	}
	if err := validate.Struct(dst); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return false
	}

	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := requestIDFrom(r.Context())
	var ev *zerolog.Event
	if status >= http.StatusInternalServerError {
		ev = h.log.Error()
	} else {
		ev = h.log.Warn()
	}
	ev.Err(err).Str("request_id", id).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: id})
}

// statusFor maps mining errors to HTTP codes: bad thresholds or options are
// the caller's fault, a run cut off by its deadline is unavailable.
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrItemsetTooLong):
		return http.StatusUnprocessableEntity
	case errors.As(err, &verrs),
		errors.Is(err, preprocess.ErrInvalidRecord),
		isThresholdError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encode response")
	}
}
