package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	metricsx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/pkg/metrics"
)

const defaultMaxRounds = 3

type negotiateRequest struct {
	Query     string `json:"query"`
	MaxRounds int    `json:"max_rounds"`
}

type negotiateResponse struct {
	RankedOffers   []contractx.Offer          `json:"ranked_offers"`
	NegotiationLog []contractx.ExchangeRecord `json:"negotiation_log"`
	AIUsed         string                     `json:"ai_used"`
	BestDeal       any                        `json:"best_deal"`
}

type chatMessage struct {
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type chatRequest struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Response chatMessage `json:"response"`
	Status   string      `json:"status"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "US AI Marketplace",
		"endpoints": map[string]string{
			"POST /ai_negotiate": "AI negotiation tournament",
			"POST /chat":         "Legacy routing",
			"GET /stores":        "List stores",
			"GET /services":      "List services",
			"GET /agents":        "List all agents",
		},
	})
}

// handleNegotiate runs the negotiation pipeline. Domain-level misses (no
// matching agents, extraction misses, failed exchanges) come back as a
// normal payload; only unexpected failures surface as a server error.
func (s *Server) handleNegotiate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req negotiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metricsx.RecordNegotiation("error", time.Since(start))
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.MaxRounds <= 0 {
		req.MaxRounds = defaultMaxRounds
	}

	result, err := s.negotiator.Negotiate(r.Context(), req.Query, req.MaxRounds)
	if err != nil {
		metricsx.RecordNegotiation("error", time.Since(start))
		writeError(w, err)
		return
	}

	outcome := "ok"
	if len(result.RankedOffers) == 0 {
		outcome = "no_offers"
	}
	metricsx.RecordNegotiation(outcome, time.Since(start))

	resp := negotiateResponse{
		RankedOffers:   result.RankedOffers,
		NegotiationLog: result.NegotiationLog,
		AIUsed:         result.AIUsed,
		BestDeal:       struct{}{},
	}
	if resp.RankedOffers == nil {
		resp.RankedOffers = []contractx.Offer{}
	}
	if resp.NegotiationLog == nil {
		resp.NegotiationLog = []contractx.ExchangeRecord{}
	}
	if result.BestDeal != nil {
		resp.BestDeal = *result.BestDeal
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("decode request: %w", err))
		return
	}

	reply, ok := s.hub.Route(req.Message.Receiver, req.Message.Content)
	if !ok {
		reply = "Unknown receiver"
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response: chatMessage{
			Sender:    req.Message.Receiver,
			Receiver:  req.Message.Sender,
			Content:   reply,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Status: "delivered",
	})
}

func (s *Server) handleStores(w http.ResponseWriter, _ *http.Request) {
	stores := s.catalog.Stores()
	out := make([]map[string]string, 0, len(stores))
	for _, store := range stores {
		out = append(out, map[string]string{
			"id":       store.ID,
			"name":     store.Name,
			"location": store.Location,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"stores": out})
}

func (s *Server) handleServices(w http.ResponseWriter, _ *http.Request) {
	providers := s.catalog.Providers()
	out := make([]map[string]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, map[string]string{
			"id":   p.ID,
			"name": p.Name,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": out})
}

func (s *Server) handleAgents(w http.ResponseWriter, _ *http.Request) {
	aiAgents := map[string]string{
		s.catalog.Requester().Name: "Customer (AI)",
	}
	for _, name := range s.catalog.SellerNames() {
		d, ok := s.catalog.Seller(name)
		if !ok {
			continue
		}
		aiAgents[name] = fmt.Sprintf("%s (AI)", d.Location)
	}

	legacy := map[string]string{}
	for id, store := range s.hub.Stores() {
		legacy[id] = fmt.Sprintf("%s (rule-based)", store.Name())
	}
	for id, desk := range s.hub.Services() {
		legacy[id] = fmt.Sprintf("%s (rule-based)", desk.Name())
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ai_agents":     aiAgents,
		"legacy_agents": legacy,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// writeError reports any boundary failure as a generic server error with
// the underlying message attached as an opaque diagnostic.
func writeError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("negotiation request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": fmt.Sprintf("negotiation error: %v", err),
	})
}
