package dtos

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/pkg/serrors"
)

type CreateInteractionDTO struct {
	CaseID      string   `json:"caseId" validate:"required,uuid"`
	Type        string   `json:"type" validate:"required,oneof=call email meeting note sms"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status      string   `json:"status" validate:"omitempty,oneof=open pending resolved closed"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=100"`
	Situation   string   `json:"situation" validate:"required,max=10000"`
	ActionTaken string   `json:"actionTaken" validate:"omitempty,max=10000"`
	Outcome     string   `json:"outcome" validate:"omitempty,max=10000"`
	OccurredAt  string   `json:"occurredAt" validate:"omitempty"`
}

func (d *CreateInteractionDTO) Validate() error {
	if err := validateStruct(d); err != nil {
		return err
	}
	if d.OccurredAt != "" {
		if _, err := time.Parse(time.RFC3339, d.OccurredAt); err != nil {
			return serrors.NewValidationError("occurredAt must be an RFC 3339 timestamp")
		}
	}
	return nil
}

func (d *CreateInteractionDTO) ToEntity() *interaction.Interaction {
	entity := &interaction.Interaction{
		Type:        interaction.Type(d.Type),
		Priority:    interaction.PriorityNormal,
		Status:      interaction.StatusOpen,
		Tags:        d.Tags,
		Situation:   d.Situation,
		ActionTaken: d.ActionTaken,
		Outcome:     d.Outcome,
		OccurredAt:  time.Now(),
	}
	if id, err := uuid.Parse(d.CaseID); err == nil {
		entity.CaseID = id
	}
	if d.Priority != "" {
		entity.Priority = interaction.Priority(d.Priority)
	}
	if d.Status != "" {
		entity.Status = interaction.Status(d.Status)
	}
	if d.OccurredAt != "" {
		if ts, err := time.Parse(time.RFC3339, d.OccurredAt); err == nil {
			entity.OccurredAt = ts
		}
	}
	return entity
}

// UpdateInteractionDTO carries only the mutable fields. Content written at
// creation cannot be changed afterwards. Nil means "leave as is".
type UpdateInteractionDTO struct {
	Priority *string   `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Status   *string   `json:"status" validate:"omitempty,oneof=open pending resolved closed"`
	Tags     *[]string `json:"tags" validate:"omitempty,dive,max=100"`
}

func (d *UpdateInteractionDTO) Validate() error {
	return validateStruct(d)
}

// Apply overlays the present fields on the entity.
func (d *UpdateInteractionDTO) Apply(entity *interaction.Interaction) {
	if d.Priority != nil {
		entity.Priority = interaction.Priority(*d.Priority)
	}
	if d.Status != nil {
		entity.Status = interaction.Status(*d.Status)
	}
	if d.Tags != nil {
		entity.Tags = *d.Tags
	}
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		var validatorErrs validator.ValidationErrors
		if errors.As(err, &validatorErrs) {
			return serrors.ProcessValidatorErrors(validatorErrs)
		}
		return serrors.NewValidationError(err.Error())
	}
	return nil
}
