package application

import (
	"context"
	"embed"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/claimdesk/claimdesk/pkg/eventbus"
)

// Controller is a routable unit registered by a module.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires its services, controllers and migrations into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	DB() *pgxpool.Pool
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger

	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc

	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	// Service returns the registered service with the same type as the given
	// value. Panics when no such service exists.
	Service(service interface{}) interface{}

	Migrations() *MigrationRegistry
	RunMigrations(ctx context.Context) error
}

type ApplicationOptions struct {
	Pool     *pgxpool.Pool
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	return &application{
		pool:       opts.Pool,
		eventBus:   opts.EventBus,
		logger:     opts.Logger,
		services:   map[reflect.Type]interface{}{},
		migrations: &MigrationRegistry{},
	}
}

type application struct {
	pool        *pgxpool.Pool
	eventBus    eventbus.EventBus
	logger      *logrus.Logger
	controllers []Controller
	middleware  []mux.MiddlewareFunc
	services    map[reflect.Type]interface{}
	migrations  *MigrationRegistry
}

func (a *application) DB() *pgxpool.Pool {
	return a.pool
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.eventBus
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, s := range services {
		t := reflect.TypeOf(s)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		a.services[t] = s
	}
}

func (a *application) Service(service interface{}) interface{} {
	t := reflect.TypeOf(service)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	svc, ok := a.services[t]
	if !ok {
		panic("service not registered: " + t.String())
	}
	return svc
}

func (a *application) Migrations() *MigrationRegistry {
	return a.migrations
}

func (a *application) RunMigrations(ctx context.Context) error {
	return a.migrations.Run(ctx, a.pool, a.logger)
}

// RegisterSchema is a convenience for modules embedding their migration
// files.
type Schema struct {
	FS  *embed.FS
	Dir string
}
