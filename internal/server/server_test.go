package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foodbridge/foodbridge/internal/engine"
	mock_server "github.com/foodbridge/foodbridge/internal/server/mocks"
)

func TestHandlePostFood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func()
		expectedStatus int
		bodyContains   string
	}{
		{
			name: "successful post",
			requestBody: map[string]interface{}{
				"donor_id":              "donor-1",
				"name":                  "Surplus curry",
				"category":              "meals",
				"quantity_servings":     40,
				"safety_window_minutes": 120,
			},
			setupMocks: func() {
				mockService.EXPECT().
					PostFood(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input engine.NewFoodPost) (*engine.FoodPost, error) {
						assert.Equal(t, "donor-1", input.DonorID)
						assert.Equal(t, 40, input.QuantityServings)
						return &engine.FoodPost{ID: "post-1", DonorID: input.DonorID, Status: engine.StatusPosted}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			bodyContains:   `"id":"post-1"`,
		},
		{
			name: "validation error maps to 400",
			requestBody: map[string]interface{}{
				"donor_id":              "donor-1",
				"category":              "sushi",
				"quantity_servings":     40,
				"safety_window_minutes": 120,
			},
			setupMocks: func() {
				mockService.EXPECT().
					PostFood(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: unknown category", engine.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   `"error"`,
		},
		{
			name:           "malformed body",
			requestBody:    "not json",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "Invalid request body",
		},
		{
			name: "unexpected error maps to 500",
			requestBody: map[string]interface{}{
				"donor_id":              "donor-1",
				"category":              "meals",
				"quantity_servings":     40,
				"safety_window_minutes": 120,
			},
			setupMocks: func() {
				mockService.EXPECT().
					PostFood(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   "internal error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			var body []byte
			switch v := tc.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/food", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			server.handlePostFood(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}

func TestHandleCreateMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		bodyContains   string
	}{
		{
			name: "successful match",
			requestBody: map[string]interface{}{
				"food_post_id": "post-1",
				"org_id":       "org-1",
			},
			setupMocks: func() {
				mockService.EXPECT().
					CreateMatch(gomock.Any(), "post-1", "org-1").
					Return(&engine.Match{ID: "match-1", FoodPostID: "post-1", OrgID: "org-1", Status: engine.StatusMatched, Score: 0.95}, nil)
			},
			expectedStatus: http.StatusCreated,
			bodyContains:   `"id":"match-1"`,
		},
		{
			name: "post already matched maps to 409",
			requestBody: map[string]interface{}{
				"food_post_id": "post-1",
				"org_id":       "org-1",
			},
			setupMocks: func() {
				mockService.EXPECT().
					CreateMatch(gomock.Any(), "post-1", "org-1").
					Return(nil, fmt.Errorf("%w: food post post-1 is MATCHED, not POSTED", engine.ErrInvalidState))
			},
			expectedStatus: http.StatusConflict,
			bodyContains:   `"error"`,
		},
		{
			name: "post not found maps to 404",
			requestBody: map[string]interface{}{
				"food_post_id": "missing",
				"org_id":       "org-1",
			},
			setupMocks: func() {
				mockService.EXPECT().
					CreateMatch(gomock.Any(), "missing", "org-1").
					Return(nil, fmt.Errorf("%w: food post missing", engine.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			bodyContains:   `"error"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/matches", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			server.handleCreateMatch(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}

func TestHandleUpdateMatchStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	tests := []struct {
		name           string
		matchID        string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		bodyContains   string
	}{
		{
			name:    "accept",
			matchID: "match-1",
			requestBody: map[string]interface{}{
				"status": "ACCEPTED",
			},
			setupMocks: func() {
				mockService.EXPECT().
					Transition(gomock.Any(), "match-1", engine.StatusAccepted, engine.TransitionContext{}).
					Return(&engine.Match{ID: "match-1", Status: engine.StatusAccepted}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"status":"ACCEPTED"`,
		},
		{
			name:    "picked up carries volunteer and proof",
			matchID: "match-1",
			requestBody: map[string]interface{}{
				"status":       "PICKED_UP",
				"volunteer_id": "vol-7",
			},
			setupMocks: func() {
				mockService.EXPECT().
					Transition(gomock.Any(), "match-1", engine.StatusPickedUp, engine.TransitionContext{VolunteerID: "vol-7"}).
					Return(&engine.Match{ID: "match-1", Status: engine.StatusPickedUp, VolunteerID: "vol-7"}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"volunteer_id":"vol-7"`,
		},
		{
			name:    "unknown status rejected before the engine sees it",
			matchID: "match-1",
			requestBody: map[string]interface{}{
				"status": "TELEPORTED",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   "Invalid status",
		},
		{
			name:    "backward transition maps to 409",
			matchID: "match-1",
			requestBody: map[string]interface{}{
				"status": "MATCHED",
			},
			setupMocks: func() {
				mockService.EXPECT().
					Transition(gomock.Any(), "match-1", engine.StatusMatched, engine.TransitionContext{}).
					Return(nil, fmt.Errorf("%w: cannot move from ACCEPTED to MATCHED", engine.ErrInvalidState))
			},
			expectedStatus: http.StatusConflict,
			bodyContains:   `"error"`,
		},
		{
			name:    "missing volunteer maps to 400",
			matchID: "match-1",
			requestBody: map[string]interface{}{
				"status": "PICKED_UP",
			},
			setupMocks: func() {
				mockService.EXPECT().
					Transition(gomock.Any(), "match-1", engine.StatusPickedUp, engine.TransitionContext{}).
					Return(nil, fmt.Errorf("%w: volunteer_id is required", engine.ErrMissingField))
			},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   `"error"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/matches/"+tc.matchID+"/status", bytes.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"id": tc.matchID})
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			server.handleUpdateMatchStatus(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}

func TestHandleGetMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().
			GetMatch(gomock.Any(), "match-1").
			Return(&engine.Match{ID: "match-1", Status: engine.StatusMatched}, nil)

		req := httptest.NewRequest(http.MethodGet, "/matches/match-1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "match-1"})
		rr := httptest.NewRecorder()

		server.handleGetMatch(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"match-1"`)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().
			GetMatch(gomock.Any(), "missing").
			Return(nil, fmt.Errorf("%w: match missing", engine.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/matches/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		server.handleGetMatch(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleRecommendedMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	t.Run("defaults to top 5", func(t *testing.T) {
		mockService.EXPECT().
			RecommendMatches(gomock.Any(), "post-1", 5).
			Return([]engine.Candidate{{OrgID: "org-1", Score: 0.9}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/matches/recommended/post-1", nil)
		req = mux.SetURLVars(req, map[string]string{"foodPostID": "post-1"})
		rr := httptest.NewRecorder()

		server.handleRecommendedMatches(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"org_id":"org-1"`)
	})

	t.Run("top is capped at 20", func(t *testing.T) {
		mockService.EXPECT().
			RecommendMatches(gomock.Any(), "post-1", 20).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/matches/recommended/post-1?top=100", nil)
		req = mux.SetURLVars(req, map[string]string{"foodPostID": "post-1"})
		rr := httptest.NewRecorder()

		server.handleRecommendedMatches(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-posted post maps to 409", func(t *testing.T) {
		mockService.EXPECT().
			RecommendMatches(gomock.Any(), "post-1", 5).
			Return(nil, fmt.Errorf("%w: food post post-1 is DELIVERED, not POSTED", engine.ErrInvalidState))

		req := httptest.NewRequest(http.MethodGet, "/matches/recommended/post-1", nil)
		req = mux.SetURLVars(req, map[string]string{"foodPostID": "post-1"})
		rr := httptest.NewRecorder()

		server.handleRecommendedMatches(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleOrgCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	mockService.EXPECT().
		OrgCapacity(gomock.Any(), "org-1").
		Return(&engine.CapacityReport{
			OrgID:              "org-1",
			DailyCapacity:      200,
			UsedCapacity:       150,
			RemainingCapacity:  50,
			UtilizationPercent: 75,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orgs/org-1/capacity", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})
	rr := httptest.NewRecorder()

	server.handleOrgCapacity(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"remaining_capacity":50`)
	assert.Contains(t, rr.Body.String(), `"utilization_percent":75`)
}

func TestHandleOrgMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	mockService.EXPECT().
		ListMatchesByOrg(gomock.Any(), "org-1", "DELIVERED", 10, 5).
		Return([]engine.Match{{ID: "match-1", Status: engine.StatusDelivered}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orgs/org-1/matches?status=DELIVERED&limit=10&offset=5", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})
	rr := httptest.NewRecorder()

	server.handleOrgMatches(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":1`)
}

func TestHandleDonorImpact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	mockService.EXPECT().
		DonorImpact(gomock.Any(), "donor-1", "week").
		Return(&engine.ImpactReport{MealsSaved: 120, TotalDeliveries: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donors/donor-1/impact?period=week", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "donor-1"})
	rr := httptest.NewRecorder()

	server.handleDonorImpact(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"meals_saved":120`)
}

func TestHandleAvailableFood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	mockService.EXPECT().
		AvailableFood(gomock.Any()).
		Return([]engine.FoodPost{
			{ID: "post-1", Status: engine.StatusPosted},
			{ID: "post-2", Status: engine.StatusPosted},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/food/available", nil)
	rr := httptest.NewRecorder()

	server.handleAvailableFood(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":2`)
}

func TestBasicAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock_server.NewMockService(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	server := New(mockService, mockUserRepo)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := server.basicAuthMiddleware(next)

	t.Run("missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/food/available", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ValidateUser(gomock.Any(), "alice", "wrong").
			Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/food/available", nil)
		req.SetBasicAuth("alice", "wrong")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid credentials", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ValidateUser(gomock.Any(), "alice", "secret").
			Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/food/available", nil)
		req.SetBasicAuth("alice", "secret")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
