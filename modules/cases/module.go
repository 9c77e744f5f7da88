package cases

import (
	"embed"

	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence"
	"github.com/claimdesk/claimdesk/modules/cases/presentation/controllers"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&MigrationFiles, "infrastructure/persistence/schema")

	interactionRepo := persistence.NewInteractionRepository()
	caseRepo := persistence.NewCaseFileRepository()
	workspaceRepo := persistence.NewWorkspaceRepository()
	contactRepo := persistence.NewContactRepository()
	auditLogRepo := persistence.NewAuditLogRepository()

	app.RegisterServices(
		services.NewFeedService(interactionRepo),
		services.NewInteractionService(interactionRepo, caseRepo, auditLogRepo, app.EventPublisher()),
		services.NewCaseFileService(caseRepo, auditLogRepo),
		services.NewDirectoryService(workspaceRepo, contactRepo),
		services.NewAuditLogService(auditLogRepo),
	)

	// Feed registers before cases so /cases/feed is matched as the feed
	// route and not captured by the /cases/{id} pattern.
	app.RegisterControllers(
		controllers.NewFeedController(app),
		controllers.NewCasesController(app),
		controllers.NewInteractionsController(app),
		controllers.NewDirectoryController(app),
		controllers.NewAuditLogsController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "cases"
}
