//go:generate mockgen -source ./orchestrator.go -destination=./mocks/orchestrator.go -package=mock_engine
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foodbridge/foodbridge/internal/cache"
	"github.com/foodbridge/foodbridge/internal/db"
	"github.com/foodbridge/foodbridge/internal/metrics"
	"github.com/foodbridge/foodbridge/internal/repository"
)

type FoodPostRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, post *repository.FoodPost) error
	GetByID(ctx context.Context, id string) (*repository.FoodPost, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.FoodPost, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, post *repository.FoodPost) error
	GetByDonorID(ctx context.Context, donorID string, limit int, activeOnly bool) ([]*repository.FoodPost, error)
	ListAvailable(ctx context.Context, now time.Time) ([]*repository.FoodPost, error)
	ListOverdue(ctx context.Context, now time.Time) ([]*repository.FoodPost, error)
}

type OrgRepository interface {
	GetByID(ctx context.Context, id string) (*repository.Org, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Org, error)
	UpdateUsedCapacityTx(ctx context.Context, tx db.Tx, org *repository.Org) error
	ListVerified(ctx context.Context) ([]*repository.Org, error)
}

type MatchRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, match *repository.Match) error
	GetByID(ctx context.Context, id string) (*repository.Match, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Match, error)
	UpdateTx(ctx context.Context, tx db.Tx, match *repository.Match) error
	ListByOrg(ctx context.Context, orgID, status string, limit, offset int) ([]*repository.Match, error)
	ListByDonor(ctx context.Context, donorID, status string, limit, offset int) ([]*repository.Match, error)
	GetActiveByFoodPostTx(ctx context.Context, tx db.Tx, foodPostID string) (*repository.Match, error)
	CountRecentAccepted(ctx context.Context, orgID string, since time.Time) (int, error)
}

type ImpactRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, log *repository.ImpactLog) error
	SummarizeByOrg(ctx context.Context, orgID string, since time.Time) (*repository.ImpactSummary, error)
	SummarizeByDonor(ctx context.Context, donorID string, since time.Time) (*repository.ImpactSummary, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
	GetByFoodPostID(ctx context.Context, foodPostID string) ([]*repository.HistoryEntry, error)
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// DistanceProvider supplies the pickup distance for a food post / org pair.
// Real geocoding lives outside the engine.
type DistanceProvider interface {
	DistanceKm(ctx context.Context, foodPostID, orgID string) (float64, error)
}

// FixedDistanceProvider returns the same distance for every pair. It stands
// in until a geolocation collaborator is wired up.
type FixedDistanceProvider struct {
	Km float64
}

func (p FixedDistanceProvider) DistanceKm(ctx context.Context, foodPostID, orgID string) (float64, error) {
	return p.Km, nil
}

const eventTopic = "match_events"

type Config struct {
	ReservePolicy    ReservePolicy
	TransitionPolicy TransitionPolicy
	ImpactFactors    ImpactFactors
}

// Orchestrator coordinates the matching and lifecycle engine. Every mutation
// runs inside one transaction with row locks, so racing requests serialize on
// the rows they touch and a failed side effect rolls the whole operation back.
type Orchestrator struct {
	db          db.DB
	foodRepo    FoodPostRepository
	orgRepo     OrgRepository
	matchRepo   MatchRepository
	impactRepo  ImpactRepository
	historyRepo HistoryRepository
	outboxRepo  OutboxRepository
	distance    DistanceProvider

	ledger      Ledger
	factors     ImpactFactors
	transitions TransitionPolicy

	matchCache *cache.MatchCache

	logger *zap.Logger
}

func NewOrchestrator(
	database db.DB,
	foodRepo FoodPostRepository,
	orgRepo OrgRepository,
	matchRepo MatchRepository,
	impactRepo ImpactRepository,
	historyRepo HistoryRepository,
	outboxRepo OutboxRepository,
	distance DistanceProvider,
	cfg Config,
	logger *zap.Logger,
) *Orchestrator {
	factors := cfg.ImpactFactors
	if factors == (ImpactFactors{}) {
		factors = DefaultImpactFactors()
	}
	return &Orchestrator{
		db:          database,
		foodRepo:    foodRepo,
		orgRepo:     orgRepo,
		matchRepo:   matchRepo,
		impactRepo:  impactRepo,
		historyRepo: historyRepo,
		outboxRepo:  outboxRepo,
		distance:    distance,
		ledger:      Ledger{Policy: cfg.ReservePolicy},
		factors:     factors,
		transitions: cfg.TransitionPolicy,
		logger:      logger,
	}
}

// WithMatchCache attaches a read cache that is kept in sync as matches are
// created and transitioned.
func (o *Orchestrator) WithMatchCache(c *cache.MatchCache) *Orchestrator {
	o.matchCache = c
	return o
}

// PostFood validates and persists a new surplus food post in Posted status.
func (o *Orchestrator) PostFood(ctx context.Context, input NewFoodPost) (*FoodPost, error) {
	if input.DonorID == "" {
		return nil, fmt.Errorf("%w: donor_id", ErrMissingField)
	}
	if input.QuantityServings < 1 {
		return nil, fmt.Errorf("%w: quantity_servings must be at least 1, got %d", ErrValidation, input.QuantityServings)
	}
	if !ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}
	if input.SafetyWindowMinutes <= 0 {
		return nil, fmt.Errorf("%w: safety_window_minutes must be positive, got %d", ErrValidation, input.SafetyWindowMinutes)
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	post := &repository.FoodPost{
		ID:                  id,
		DonorID:             input.DonorID,
		Name:                input.Name,
		Category:            input.Category,
		QuantityServings:    input.QuantityServings,
		SafetyWindowMinutes: input.SafetyWindowMinutes,
		ExpiryTime:          now.Add(time.Duration(input.SafetyWindowMinutes) * time.Minute),
		Status:              string(StatusPosted),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := o.foodRepo.CreateTx(ctx, tx, post); err != nil {
		return nil, fmt.Errorf("failed to create food post: %w", err)
	}
	if err := o.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		FoodPostID: post.ID,
		Status:     post.Status,
		ChangedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit food post: %w", err)
	}

	metrics.FoodPostsCreatedTotal.Inc()
	o.logger.Info("food post created",
		zap.String("food_post_id", post.ID),
		zap.String("donor_id", post.DonorID),
		zap.String("category", post.Category),
		zap.Int("quantity_servings", post.QuantityServings))

	return foodPostFromRepo(post), nil
}

// CreateMatch binds a Posted food post to an org. The check-and-set on the
// post status happens under the post's row lock, so exactly one of two racing
// calls can succeed.
func (o *Orchestrator) CreateMatch(ctx context.Context, foodPostID, orgID string) (*Match, error) {
	if foodPostID == "" {
		return nil, fmt.Errorf("%w: food_post_id", ErrMissingField)
	}
	if orgID == "" {
		return nil, fmt.Errorf("%w: org_id", ErrMissingField)
	}

	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	post, err := o.foodRepo.GetByIDTx(ctx, tx, foodPostID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: food post %s", ErrNotFound, foodPostID)
		}
		return nil, fmt.Errorf("failed to get food post: %w", err)
	}

	if post.Status != string(StatusPosted) {
		return nil, fmt.Errorf("%w: food post %s is %s, not %s", ErrInvalidState, foodPostID, post.Status, StatusPosted)
	}

	org, err := o.orgRepo.GetByIDTx(ctx, tx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: org %s", ErrNotFound, orgID)
		}
		return nil, fmt.Errorf("failed to get org: %w", err)
	}

	distanceKm, err := o.distance.DistanceKm(ctx, post.ID, org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve distance: %w", err)
	}

	now := time.Now().UTC()
	score := MatchScore(distanceKm, o.ledger.RemainingPercent(org), post.Category)
	match := &repository.Match{
		ID:         uuid.NewString(),
		FoodPostID: post.ID,
		OrgID:      org.ID,
		Status:     string(StatusMatched),
		Score:      score,
		DistanceKm: distanceKm,
		MatchedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := o.matchRepo.CreateTx(ctx, tx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	post.Status = string(StatusMatched)
	post.MatchedAt = &now
	post.UpdatedAt = now
	if err := o.foodRepo.UpdateStatusTx(ctx, tx, post); err != nil {
		return nil, fmt.Errorf("failed to update food post status: %w", err)
	}

	if err := o.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		FoodPostID: post.ID,
		Status:     post.Status,
		ChangedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}

	if err := o.enqueueEventTx(ctx, tx, repository.MatchEventPayload{
		Timestamp:  now,
		Event:      "match_created",
		MatchID:    match.ID,
		FoodPostID: post.ID,
		OrgID:      org.ID,
		DonorID:    post.DonorID,
		NewStatus:  match.Status,
		Score:      score,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit match: %w", err)
	}

	if o.matchCache != nil {
		o.matchCache.Set(match)
	}

	metrics.MatchesCreatedTotal.Inc()
	o.logger.Info("match created",
		zap.String("match_id", match.ID),
		zap.String("food_post_id", post.ID),
		zap.String("org_id", org.ID),
		zap.Float64("score", score))

	return matchFromRepo(match), nil
}

// Transition advances a match (and its food post) to target. On Delivered it
// also writes the impact log and reserves org capacity; all of it commits or
// rolls back as one unit, so a retried call can never double-apply a side
// effect.
func (o *Orchestrator) Transition(ctx context.Context, matchID string, target Status, tc TransitionContext) (*Match, error) {
	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	match, err := o.matchRepo.GetByIDTx(ctx, tx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if err := CheckTransition(Status(match.Status), target, o.transitions); err != nil {
		return nil, err
	}

	post, err := o.foodRepo.GetByIDTx(ctx, tx, match.FoodPostID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: food post %s", ErrNotFound, match.FoodPostID)
		}
		return nil, fmt.Errorf("failed to get food post: %w", err)
	}

	now := time.Now().UTC()
	oldStatus := match.Status

	switch target {
	case StatusAccepted:
		match.AcceptedAt = &now

	case StatusPickedUp:
		if tc.VolunteerID == "" {
			return nil, fmt.Errorf("%w: volunteer_id is required for %s", ErrMissingField, StatusPickedUp)
		}
		match.VolunteerID = &tc.VolunteerID
		match.PickedUpAt = &now

	case StatusDelivered:
		match.DeliveredAt = &now
		if tc.DeliveryProof != "" {
			match.DeliveryProof = &tc.DeliveryProof
		}
		if err := o.applyDeliveryEffectsTx(ctx, tx, match, post, now); err != nil {
			return nil, err
		}

	case StatusExpired:
		post.ExpiredAt = &now
	}

	match.Status = string(target)
	match.UpdatedAt = now
	if err := o.matchRepo.UpdateTx(ctx, tx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	post.Status = string(target)
	post.UpdatedAt = now
	if target == StatusDelivered {
		post.DeliveredAt = &now
	}
	if err := o.foodRepo.UpdateStatusTx(ctx, tx, post); err != nil {
		return nil, fmt.Errorf("failed to update food post status: %w", err)
	}

	if err := o.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		FoodPostID: post.ID,
		Status:     post.Status,
		ChangedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("failed to record history: %w", err)
	}

	if err := o.enqueueEventTx(ctx, tx, repository.MatchEventPayload{
		Timestamp:  now,
		Event:      "match_status_updated",
		MatchID:    match.ID,
		FoodPostID: post.ID,
		OrgID:      match.OrgID,
		DonorID:    post.DonorID,
		OldStatus:  oldStatus,
		NewStatus:  match.Status,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	if o.matchCache != nil {
		o.matchCache.Set(match)
	}

	if target == StatusDelivered {
		metrics.DeliveriesCompletedTotal.Inc()
	}
	o.logger.Info("match transitioned",
		zap.String("match_id", match.ID),
		zap.String("old_status", oldStatus),
		zap.String("new_status", match.Status))

	return matchFromRepo(match), nil
}

func (o *Orchestrator) applyDeliveryEffectsTx(ctx context.Context, tx db.Tx, match *repository.Match, post *repository.FoodPost, now time.Time) error {
	impact := o.factors.Compute(post.QuantityServings)
	if err := o.impactRepo.CreateTx(ctx, tx, &repository.ImpactLog{
		MatchID:          match.ID,
		FoodPostID:       post.ID,
		OrgID:            match.OrgID,
		MealsSaved:       impact.MealsSaved,
		FoodSavedKg:      impact.FoodSavedKg,
		CO2SavedKg:       impact.CO2SavedKg,
		WaterSavedLiters: impact.WaterSavedLiters,
		CreatedAt:        now,
	}); err != nil {
		return fmt.Errorf("failed to create impact log: %w", err)
	}

	org, err := o.orgRepo.GetByIDTx(ctx, tx, match.OrgID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: org %s", ErrNotFound, match.OrgID)
		}
		return fmt.Errorf("failed to get org: %w", err)
	}
	if _, err := o.ledger.Reserve(org, post.QuantityServings); err != nil {
		return err
	}
	org.UpdatedAt = now
	if err := o.orgRepo.UpdateUsedCapacityTx(ctx, tx, org); err != nil {
		return fmt.Errorf("failed to update org capacity: %w", err)
	}
	return nil
}

// Expire is the external expiry signal: it moves an overdue post (and its
// active match, if any) to Expired regardless of where in the pre-Delivered
// lifecycle it sits.
func (o *Orchestrator) Expire(ctx context.Context, foodPostID string) error {
	tx, err := o.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	post, err := o.foodRepo.GetByIDTx(ctx, tx, foodPostID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: food post %s", ErrNotFound, foodPostID)
		}
		return fmt.Errorf("failed to get food post: %w", err)
	}

	if Status(post.Status).Terminal() {
		return fmt.Errorf("%w: food post %s is already %s", ErrInvalidState, foodPostID, post.Status)
	}

	now := time.Now().UTC()

	match, err := o.matchRepo.GetActiveByFoodPostTx(ctx, tx, foodPostID)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("failed to get active match: %w", err)
	}
	if match != nil {
		match.Status = string(StatusExpired)
		match.UpdatedAt = now
		if err := o.matchRepo.UpdateTx(ctx, tx, match); err != nil {
			return fmt.Errorf("failed to expire match: %w", err)
		}
	}

	post.Status = string(StatusExpired)
	post.ExpiredAt = &now
	post.UpdatedAt = now
	if err := o.foodRepo.UpdateStatusTx(ctx, tx, post); err != nil {
		return fmt.Errorf("failed to expire food post: %w", err)
	}

	if err := o.historyRepo.CreateTx(ctx, tx, &repository.HistoryEntry{
		FoodPostID: post.ID,
		Status:     post.Status,
		ChangedAt:  now,
	}); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit expiry: %w", err)
	}

	if match != nil && o.matchCache != nil {
		o.matchCache.Set(match)
	}

	metrics.FoodPostsExpiredTotal.Inc()
	o.logger.Info("food post expired", zap.String("food_post_id", post.ID))
	return nil
}

func (o *Orchestrator) enqueueEventTx(ctx context.Context, tx db.Tx, payload repository.MatchEventPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	if err := o.outboxRepo.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   eventTopic,
		Payload: raw,
	}); err != nil {
		return fmt.Errorf("failed to enqueue event: %w", err)
	}
	return nil
}
