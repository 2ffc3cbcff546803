package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ludaxis/levelforge-sub003/internal/domain"
	"github.com/Ludaxis/levelforge-sub003/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/score", h.handleScore)
	mux.HandleFunc("/api/check", h.handleCheck)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/estimate", h.handleEstimate)
	mux.HandleFunc("/api/recommend", h.handleRecommend)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// parseTier maps a tier name onto its enum value; unknown names default
// to medium.
func parseTier(s string) domain.DifficultyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trivial":
		return domain.TierTrivial
	case "easy":
		return domain.TierEasy
	case "hard":
		return domain.TierHard
	case "expert":
		return domain.TierExpert
	case "nightmare":
		return domain.TierNightmare
	default:
		return domain.TierMedium
	}
}

// ---- Score ----

type scoreReq struct {
	Pattern        domain.Pattern `json:"pattern"`
	Supply         domain.Supply  `json:"supply"`
	BufferCapacity int            `json:"bufferCapacity"`
}

type scoreResp struct {
	Metrics *domain.DifficultyMetrics `json:"metrics,omitempty"`
	Tier    string                    `json:"tier,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req scoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(scoreResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	lvl := &domain.Level{Pattern: req.Pattern, Supply: req.Supply, BufferCapacity: req.BufferCapacity}
	m, err := h.UC.Score(r.Context(), lvl)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(scoreResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(scoreResp{Metrics: m, Tier: m.Tier.String()})
}

// ---- Check ----

type checkReq struct {
	Pattern        domain.Pattern `json:"pattern"`
	Supply         domain.Supply  `json:"supply"`
	BufferCapacity int            `json:"bufferCapacity"`
}

type checkResp struct {
	IsSolvable bool     `json:"isSolvable"`
	Issues     []string `json:"issues,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(checkResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	report, err := h.UC.Check(r.Context(), req.Pattern, req.Supply, req.BufferCapacity)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(checkResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(checkResp{IsSolvable: report.IsSolvable, Issues: report.Issues})
}

// ---- Generate ----

type generateReq struct {
	Pattern     domain.Pattern `json:"pattern"`
	ColumnCount int            `json:"columnCount"`
	MinDepth    int            `json:"minDepth,omitempty"`
	MaxDepth    int            `json:"maxDepth,omitempty"`
	Seed        int64          `json:"seed,omitempty"`
	// BufferCapacity only feeds the advisory part of the re-check.
	BufferCapacity int `json:"bufferCapacity,omitempty"`
}

type generateResp struct {
	Supply     *domain.Supply `json:"supply,omitempty"`
	IsSolvable bool           `json:"isSolvable"`
	Issues     []string       `json:"issues,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	Tiles      int            `json:"tiles,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	shape := domain.SupplyShape{ColumnCount: req.ColumnCount, MinDepth: req.MinDepth, MaxDepth: req.MaxDepth}
	supply, st, err := h.UC.GenerateSupply(r.Context(), req.Pattern, seed, shape)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	// Re-validate so the editor sees the same report a manual check would give.
	report, err := h.UC.Check(r.Context(), req.Pattern, supply, req.BufferCapacity)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Supply:     &supply,
		IsSolvable: report.IsSolvable,
		Issues:     report.Issues,
		Seed:       seed,
		Tiles:      st.Tiles,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Estimate ----

type estimateReq struct {
	Metrics domain.DifficultyMetrics `json:"metrics"`
}

type estimateResp struct {
	Estimate domain.TimeEstimate `json:"estimate"`
	Error    string              `json:"error,omitempty"`
}

func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req estimateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(estimateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(estimateResp{Estimate: h.UC.Estimate(&req.Metrics)})
}

// ---- Recommend ----

type recommendResp struct {
	Tier     string              `json:"tier"`
	Settings domain.TierSettings `json:"settings"`
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	tier := parseTier(r.URL.Query().Get("tier"))
	_ = json.NewEncoder(w).Encode(recommendResp{Tier: tier.String(), Settings: h.UC.Recommend(tier)})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Tier  string `json:"tier,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var lvl domain.Level
	if err := json.NewDecoder(r.Body).Decode(&lvl); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if lvl.ID == "" {
		lvl.ID = uuid.New().String()
	}
	if lvl.CreatedAt == 0 {
		lvl.CreatedAt = time.Now().UnixNano()
	}
	// Stamp the tier from a fresh scoring pass so the stored bucket
	// always reflects the level as saved.
	m, err := h.UC.Score(r.Context(), &lvl)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	lvl.Tier = m.Tier
	if err := h.UC.Save(r.Context(), &lvl); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: lvl.ID, Tier: lvl.Tier.String()})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Level *domain.Level `json:"level,omitempty"`
	Error string        `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	lvl, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Level: lvl})
}

type listResp struct {
	Levels []domain.LevelMeta `json:"levels"`
	Error  string             `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ls, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Levels: ls})
}
