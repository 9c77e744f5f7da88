package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/eventbus"
)

const interactionTargetType = "interaction"

type InteractionService struct {
	repo      interaction.Repository
	cases     casefile.Repository
	publisher eventbus.EventBus
	audit     auditRecorder
}

func NewInteractionService(
	repo interaction.Repository,
	cases casefile.Repository,
	auditLogs auditlog.Repository,
	publisher eventbus.EventBus,
) *InteractionService {
	return &InteractionService{
		repo:      repo,
		cases:     cases,
		publisher: publisher,
		audit:     auditRecorder{repo: auditLogs},
	}
}

func (s *InteractionService) GetByID(ctx context.Context, id uuid.UUID) (*interaction.Interaction, error) {
	scope, err := useScope(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, scope, id)
}

func (s *InteractionService) Create(ctx context.Context, entity *interaction.Interaction) (*interaction.Interaction, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, err
	}
	if entity.CreatedBy == uuid.Nil {
		entity.CreatedBy = actor.ID
	}

	// The owning case's number is denormalized onto the interaction so the
	// row stays self-describing after the case is deleted. The scoped
	// lookup also keeps an actor from attaching interactions to cases it
	// cannot see.
	if entity.CaseNumber == "" {
		owner, err := s.cases.GetByID(ctx, access.ScopeFor(actor), entity.CaseID)
		if err != nil {
			return nil, err
		}
		entity.CaseNumber = owner.CaseNumber()
	}

	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, entity)
	})
	s.audit.record(ctx, "interaction.create", interactionTargetType, entity.ID, err)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(interaction.CreatedEvent{Result: *entity})
	return entity, nil
}

// Update persists the mutable fields only. Content fields written at
// creation are left untouched by the repository.
func (s *InteractionService) Update(ctx context.Context, entity *interaction.Interaction) (*interaction.Interaction, error) {
	scope, err := useScope(ctx)
	if err != nil {
		return nil, err
	}

	var updated *interaction.Interaction
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, entity); err != nil {
			return err
		}
		// The scoped re-fetch doubles as the visibility check: an
		// out-of-scope row reads as not found and rolls the update back.
		after, err := s.repo.GetByID(txCtx, scope, entity.ID)
		if err != nil {
			return err
		}
		updated = after
		return nil
	})
	s.audit.record(ctx, "interaction.update", interactionTargetType, entity.ID, err)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(interaction.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *InteractionService) Delete(ctx context.Context, id uuid.UUID) error {
	scope, err := useScope(ctx)
	if err != nil {
		return err
	}
	entity, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return err
	}

	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	s.audit.record(ctx, "interaction.delete", interactionTargetType, id, err)
	if err != nil {
		return err
	}

	s.publisher.Publish(interaction.DeletedEvent{ID: id, CaseID: entity.CaseID})
	return nil
}
