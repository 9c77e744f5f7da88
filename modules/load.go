package modules

import (
	"github.com/claimdesk/claimdesk/modules/cases"
	"github.com/claimdesk/claimdesk/pkg/application"
)

var BuiltInModules = []application.Module{
	cases.NewModule(),
}

// Load registers every built-in module plus any externally supplied ones.
func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range append(BuiltInModules, externalModules...) {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
