package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foodbridge/foodbridge/internal/engine"
)

func (s *Server) handlePostFood(w http.ResponseWriter, r *http.Request) {
	var input engine.NewFoodPost
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := s.service.PostFood(r.Context(), input)
	if err != nil {
		respondEngineError(w, "post_food", err)
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

func (s *Server) handleAvailableFood(w http.ResponseWriter, r *http.Request) {
	posts, err := s.service.AvailableFood(r.Context())
	if err != nil {
		respondEngineError(w, "available_food", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  posts,
		"count": len(posts),
	})
}

func (s *Server) handleGetFoodPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := s.service.GetFoodPost(r.Context(), id)
	if err != nil {
		respondEngineError(w, "get_food_post", err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (s *Server) handleFoodPostHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entries, err := s.service.FoodPostHistory(r.Context(), id)
	if err != nil {
		respondEngineError(w, "food_post_history", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  entries,
		"count": len(entries),
	})
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var matchRequest struct {
		FoodPostID string `json:"food_post_id"`
		OrgID      string `json:"org_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&matchRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	match, err := s.service.CreateMatch(r.Context(), matchRequest.FoodPostID, matchRequest.OrgID)
	if err != nil {
		respondEngineError(w, "create_match", err)
		return
	}

	respondJSON(w, http.StatusCreated, match)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	match, err := s.service.GetMatch(r.Context(), id)
	if err != nil {
		respondEngineError(w, "get_match", err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

func (s *Server) handleUpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var statusRequest struct {
		Status        string `json:"status"`
		VolunteerID   string `json:"volunteer_id"`
		DeliveryProof string `json:"delivery_proof"`
	}

	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !engine.ValidStatus(engine.Status(statusRequest.Status)) {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	match, err := s.service.Transition(r.Context(), id, engine.Status(statusRequest.Status), engine.TransitionContext{
		VolunteerID:   statusRequest.VolunteerID,
		DeliveryProof: statusRequest.DeliveryProof,
	})
	if err != nil {
		respondEngineError(w, "update_match_status", err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

func (s *Server) handleRecommendedMatches(w http.ResponseWriter, r *http.Request) {
	foodPostID := mux.Vars(r)["foodPostID"]

	topN := 5
	if top := r.URL.Query().Get("top"); top != "" {
		if n, err := strconv.Atoi(top); err == nil && n > 0 {
			topN = n
		}
	}
	if topN > 20 {
		topN = 20
	}

	candidates, err := s.service.RecommendMatches(r.Context(), foodPostID, topN)
	if err != nil {
		respondEngineError(w, "recommend_matches", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":         candidates,
		"food_post_id": foodPostID,
	})
}

func listParams(r *http.Request) (status string, limit, offset int) {
	q := r.URL.Query()
	status = q.Get("status")
	limit, _ = strconv.Atoi(q.Get("limit"))
	offset, _ = strconv.Atoi(q.Get("offset"))
	return status, limit, offset
}

func (s *Server) handleOrgMatches(w http.ResponseWriter, r *http.Request) {
	orgID := mux.Vars(r)["id"]
	status, limit, offset := listParams(r)

	matches, err := s.service.ListMatchesByOrg(r.Context(), orgID, status, limit, offset)
	if err != nil {
		respondEngineError(w, "list_org_matches", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  matches,
		"count": len(matches),
	})
}

func (s *Server) handleDonorMatches(w http.ResponseWriter, r *http.Request) {
	donorID := mux.Vars(r)["id"]
	status, limit, offset := listParams(r)

	matches, err := s.service.ListMatchesByDonor(r.Context(), donorID, status, limit, offset)
	if err != nil {
		respondEngineError(w, "list_donor_matches", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"data":  matches,
		"count": len(matches),
	})
}

func (s *Server) handleOrgCapacity(w http.ResponseWriter, r *http.Request) {
	orgID := mux.Vars(r)["id"]

	report, err := s.service.OrgCapacity(r.Context(), orgID)
	if err != nil {
		respondEngineError(w, "org_capacity", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleOrgImpact(w http.ResponseWriter, r *http.Request) {
	orgID := mux.Vars(r)["id"]

	report, err := s.service.OrgImpact(r.Context(), orgID, r.URL.Query().Get("period"))
	if err != nil {
		respondEngineError(w, "org_impact", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleDonorImpact(w http.ResponseWriter, r *http.Request) {
	donorID := mux.Vars(r)["id"]

	report, err := s.service.DonorImpact(r.Context(), donorID, r.URL.Query().Get("period"))
	if err != nil {
		respondEngineError(w, "donor_impact", err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
