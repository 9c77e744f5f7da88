package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
)

type InteractionResponse struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"caseId"`
	CaseNumber  string    `json:"caseNumber"`
	Type        string    `json:"type"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	Situation   string    `json:"situation"`
	ActionTaken string    `json:"actionTaken"`
	Outcome     string    `json:"outcome"`
	OccurredAt  time.Time `json:"occurredAt"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewInteractionResponse(entity *interaction.Interaction) *InteractionResponse {
	tags := entity.Tags
	if tags == nil {
		tags = []string{}
	}
	return &InteractionResponse{
		ID:          entity.ID,
		CaseID:      entity.CaseID,
		CaseNumber:  entity.CaseNumber,
		Type:        string(entity.Type),
		Priority:    string(entity.Priority),
		Status:      string(entity.Status),
		Tags:        tags,
		Situation:   entity.Situation,
		ActionTaken: entity.ActionTaken,
		Outcome:     entity.Outcome,
		OccurredAt:  entity.OccurredAt,
		CreatedBy:   entity.CreatedBy,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}
