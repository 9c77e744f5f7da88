package services

import (
	"context"
	"strings"
	"time"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/metrics"
)

// FeedService serves the interaction feed. Every fetch derives the caller's
// visibility scope from the context actor; there is no unscoped path.
type FeedService struct {
	repo interaction.Repository
}

func NewFeedService(repo interaction.Repository) *FeedService {
	return &FeedService{repo: repo}
}

// GetFeed returns one feed page for the context actor. An actor whose scope
// matches nothing gets an empty page, not an error.
func (s *FeedService) GetFeed(ctx context.Context, params *interaction.FindParams) (*FeedPage, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	scope := access.ScopeFor(actor)

	params.Filter.SearchQuery = strings.TrimSpace(params.Filter.SearchQuery)
	params.Filter.CaseNumber = strings.TrimSpace(params.Filter.CaseNumber)

	start := time.Now()
	result, err := s.repo.GetPaginated(ctx, scope, params)
	rows := 0
	if result != nil {
		rows = len(result.Rows)
	}
	metrics.ObserveFeedQuery(start, rows, err)
	if err != nil {
		return nil, err
	}
	return projectFeedPage(result), nil
}

// useScope derives the context actor's visibility scope. Single-entity
// lookups go through it too, so a record invisible in the feed cannot be
// read by id.
func useScope(ctx context.Context) (access.Scope, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return access.Scope{}, err
	}
	return access.ScopeFor(actor), nil
}

// CountVisible returns how many interactions the context actor can see under
// the given filter.
func (s *FeedService) CountVisible(ctx context.Context, filter interaction.Filter) (int64, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, access.ScopeFor(actor), filter)
}
