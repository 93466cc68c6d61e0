package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foodbridge/foodbridge/internal/repository"
)

const defaultListLimit = 20

func (o *Orchestrator) GetMatch(ctx context.Context, id string) (*Match, error) {
	if o.matchCache != nil {
		if cached, ok := o.matchCache.Get(id); ok {
			return matchFromRepo(cached), nil
		}
	}

	match, err := o.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: match %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if o.matchCache != nil {
		o.matchCache.Set(match)
	}
	return matchFromRepo(match), nil
}

func (o *Orchestrator) ListMatchesByOrg(ctx context.Context, orgID, status string, limit, offset int) ([]Match, error) {
	if status != "" && !ValidStatus(Status(status)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	matches, err := o.matchRepo.ListByOrg(ctx, orgID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list org matches: %w", err)
	}
	return matchesFromRepo(matches), nil
}

func (o *Orchestrator) ListMatchesByDonor(ctx context.Context, donorID, status string, limit, offset int) ([]Match, error) {
	if status != "" && !ValidStatus(Status(status)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	matches, err := o.matchRepo.ListByDonor(ctx, donorID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list donor matches: %w", err)
	}
	return matchesFromRepo(matches), nil
}

func (o *Orchestrator) GetFoodPost(ctx context.Context, id string) (*FoodPost, error) {
	post, err := o.foodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: food post %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get food post: %w", err)
	}
	return foodPostFromRepo(post), nil
}

func (o *Orchestrator) AvailableFood(ctx context.Context) ([]FoodPost, error) {
	posts, err := o.foodRepo.ListAvailable(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	out := make([]FoodPost, len(posts))
	for i, p := range posts {
		out[i] = *foodPostFromRepo(p)
	}
	return out, nil
}

func (o *Orchestrator) FoodPostHistory(ctx context.Context, foodPostID string) ([]HistoryEntry, error) {
	entries, err := o.historyRepo.GetByFoodPostID(ctx, foodPostID)
	if err != nil {
		return nil, err
	}
	return historyFromRepo(entries), nil
}

func (o *Orchestrator) OrgCapacity(ctx context.Context, orgID string) (*CapacityReport, error) {
	org, err := o.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: org %s", ErrNotFound, orgID)
		}
		return nil, fmt.Errorf("failed to get org: %w", err)
	}
	return &CapacityReport{
		OrgID:              org.ID,
		DailyCapacity:      org.DailyCapacity,
		UsedCapacity:       org.UsedCapacity,
		RemainingCapacity:  o.ledger.Remaining(org),
		UtilizationPercent: o.ledger.Utilization(org),
	}, nil
}

func (o *Orchestrator) OrgImpact(ctx context.Context, orgID, period string) (*ImpactReport, error) {
	summary, err := o.impactRepo.SummarizeByOrg(ctx, orgID, periodStart(period, time.Now().UTC()))
	if err != nil {
		return nil, err
	}
	return impactReportFromSummary(summary), nil
}

func (o *Orchestrator) DonorImpact(ctx context.Context, donorID, period string) (*ImpactReport, error) {
	summary, err := o.impactRepo.SummarizeByDonor(ctx, donorID, periodStart(period, time.Now().UTC()))
	if err != nil {
		return nil, err
	}
	return impactReportFromSummary(summary), nil
}

// RecommendMatches returns the ranked org candidates for a still-Posted food
// post.
func (o *Orchestrator) RecommendMatches(ctx context.Context, foodPostID string, topN int) ([]Candidate, error) {
	post, err := o.foodRepo.GetByID(ctx, foodPostID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: food post %s", ErrNotFound, foodPostID)
		}
		return nil, fmt.Errorf("failed to get food post: %w", err)
	}
	if post.Status != string(StatusPosted) {
		return nil, fmt.Errorf("%w: food post %s is %s, not %s", ErrInvalidState, foodPostID, post.Status, StatusPosted)
	}

	orgs, err := o.orgRepo.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	distances := make(map[string]float64, len(orgs))
	recentAccepted := make(map[string]int, len(orgs))
	for _, org := range orgs {
		d, err := o.distance.DistanceKm(ctx, post.ID, org.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve distance for org %s: %w", org.ID, err)
		}
		distances[org.ID] = d

		count, err := o.matchRepo.CountRecentAccepted(ctx, org.ID, now.AddDate(0, 0, -30))
		if err != nil {
			return nil, err
		}
		recentAccepted[org.ID] = count
	}

	return RankCandidates(now, post, orgs, distances, recentAccepted, topN), nil
}

// OverduePostIDs lists posts whose safety window has elapsed but which are
// not yet in a terminal state. The expiry sweeper drains this.
func (o *Orchestrator) OverduePostIDs(ctx context.Context) ([]string, error) {
	posts, err := o.foodRepo.ListOverdue(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids, nil
}

func matchesFromRepo(matches []*repository.Match) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = *matchFromRepo(m)
	}
	return out
}

func impactReportFromSummary(s *repository.ImpactSummary) *ImpactReport {
	return &ImpactReport{
		MealsSaved:       s.MealsSaved,
		FoodSavedKg:      s.FoodSavedKg,
		CO2SavedKg:       s.CO2SavedKg,
		WaterSavedLiters: s.WaterSavedLiters,
		TotalDeliveries:  s.TotalDeliveries,
	}
}

func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}
