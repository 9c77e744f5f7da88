package persistence

import (
	"github.com/claimdesk/claimdesk/modules/cases/domain/aggregates/casefile"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/auditlog"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/contact"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/workspace"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence/models"
)

func toDomainCaseFile(row *models.CaseFile) *casefile.CaseFile {
	return casefile.Hydrate(
		row.ID,
		row.CaseNumber,
		row.WorkspaceID,
		row.AssignedLawyerContactID,
		row.AssignedRentalCompanyContactID,
		casefile.Status(row.Status),
		row.InsuranceCompany,
		row.InsurancePolicyNumber,
		row.ClientName,
		row.ClientPhone,
		row.AtFaultPartyName,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func toDBCaseFile(entity *casefile.CaseFile) *models.CaseFile {
	return &models.CaseFile{
		ID:                             entity.ID(),
		CaseNumber:                     entity.CaseNumber(),
		WorkspaceID:                    entity.WorkspaceID(),
		AssignedLawyerContactID:        entity.AssignedLawyerContactID(),
		AssignedRentalCompanyContactID: entity.AssignedRentalCompanyContactID(),
		Status:                         string(entity.Status()),
		InsuranceCompany:               entity.InsuranceCompany(),
		InsurancePolicyNumber:          entity.InsurancePolicyNumber(),
		ClientName:                     entity.ClientName(),
		ClientPhone:                    entity.ClientPhone(),
		AtFaultPartyName:               entity.AtFaultPartyName(),
		CreatedAt:                      entity.CreatedAt(),
		UpdatedAt:                      entity.UpdatedAt(),
	}
}

func toDomainInteraction(row *models.Interaction) *interaction.Interaction {
	return &interaction.Interaction{
		ID:          row.ID,
		CaseID:      row.CaseID,
		CaseNumber:  row.CaseNumber,
		Type:        interaction.Type(row.Type),
		Priority:    interaction.Priority(row.Priority),
		Status:      interaction.Status(row.Status),
		Tags:        row.Tags,
		Situation:   row.Situation,
		ActionTaken: row.ActionTaken,
		Outcome:     row.Outcome,
		OccurredAt:  row.OccurredAt,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toDomainFeedRow(row *models.FeedRow) interaction.FeedRow {
	return interaction.FeedRow{
		Interaction: *toDomainInteraction(&row.Interaction),
		Case: interaction.CaseContext{
			ClientName:        row.ClientName,
			InsuranceCompany:  row.InsuranceCompany,
			LawyerName:        row.LawyerName,
			RentalCompanyName: row.RentalCompanyName,
			CaseStatus:        row.CaseStatus,
		},
	}
}

func toDomainWorkspace(row *models.Workspace) *workspace.Workspace {
	return &workspace.Workspace{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainContact(row *models.Contact) *contact.Contact {
	return &contact.Contact{
		ID:        row.ID,
		Type:      contact.Type(row.Type),
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainAuditLog(row *models.AuditLog) *auditlog.AuditLog {
	return &auditlog.AuditLog{
		ID:         row.ID,
		ActorID:    row.ActorID,
		Action:     row.Action,
		TargetType: row.TargetType,
		TargetID:   row.TargetID,
		Status:     auditlog.Status(row.Status),
		IP:         row.IP,
		UserAgent:  row.UserAgent,
		CreatedAt:  row.CreatedAt,
	}
}
