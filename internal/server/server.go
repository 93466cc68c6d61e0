//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foodbridge/foodbridge/internal/engine"
	"github.com/foodbridge/foodbridge/internal/metrics"
)

type Service interface {
	PostFood(ctx context.Context, input engine.NewFoodPost) (*engine.FoodPost, error)
	AvailableFood(ctx context.Context) ([]engine.FoodPost, error)
	GetFoodPost(ctx context.Context, id string) (*engine.FoodPost, error)
	FoodPostHistory(ctx context.Context, id string) ([]engine.HistoryEntry, error)
	CreateMatch(ctx context.Context, foodPostID, orgID string) (*engine.Match, error)
	GetMatch(ctx context.Context, id string) (*engine.Match, error)
	Transition(ctx context.Context, matchID string, target engine.Status, tc engine.TransitionContext) (*engine.Match, error)
	ListMatchesByOrg(ctx context.Context, orgID, status string, limit, offset int) ([]engine.Match, error)
	ListMatchesByDonor(ctx context.Context, donorID, status string, limit, offset int) ([]engine.Match, error)
	RecommendMatches(ctx context.Context, foodPostID string, topN int) ([]engine.Candidate, error)
	OrgCapacity(ctx context.Context, orgID string) (*engine.CapacityReport, error)
	OrgImpact(ctx context.Context, orgID, period string) (*engine.ImpactReport, error)
	DonorImpact(ctx context.Context, donorID, period string) (*engine.ImpactReport, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	service      Service
	userRepo     UserRepo
	server       *http.Server
	AuditManager *AuditManager
}

func New(service Service, userRepo UserRepo) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		service:      service,
		userRepo:     userRepo,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go s.handleShutdown()

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Printf("Received signal %v, initiating graceful shutdown...", sig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server shutdown failed: %v", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler())

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/food", s.handlePostFood).Methods(http.MethodPost)
	api.HandleFunc("/food/available", s.handleAvailableFood).Methods(http.MethodGet)
	api.HandleFunc("/food/{id}", s.handleGetFoodPost).Methods(http.MethodGet)
	api.HandleFunc("/food/{id}/history", s.handleFoodPostHistory).Methods(http.MethodGet)

	api.HandleFunc("/matches", s.handleCreateMatch).Methods(http.MethodPost)
	api.HandleFunc("/matches/recommended/{foodPostID}", s.handleRecommendedMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}", s.handleGetMatch).Methods(http.MethodGet)
	api.HandleFunc("/matches/{id}/status", s.handleUpdateMatchStatus).Methods(http.MethodPut)

	api.HandleFunc("/orgs/{id}/matches", s.handleOrgMatches).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{id}/capacity", s.handleOrgCapacity).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{id}/impact", s.handleOrgImpact).Methods(http.MethodGet)

	api.HandleFunc("/donors/{id}/matches", s.handleDonorMatches).Methods(http.MethodGet)
	api.HandleFunc("/donors/{id}/impact", s.handleDonorImpact).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondEngineError translates the engine's closed error set into transport
// codes. Anything outside the set is a server fault.
func respondEngineError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrMissingField), errors.Is(err, engine.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
