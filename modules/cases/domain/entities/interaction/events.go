package interaction

import "github.com/google/uuid"

type CreatedEvent struct {
	Result Interaction
}

type UpdatedEvent struct {
	Result Interaction
}

type DeletedEvent struct {
	ID     uuid.UUID
	CaseID uuid.UUID
}
