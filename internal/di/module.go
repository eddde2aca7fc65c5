// Package di aggregates the fx modules of the application and selects the
// API source: the mock backend over the local blob store by default, the
// HTTP adapter when a real base URL is configured.
package di

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/SanTaClouse/verduleria-luna/internal/adapter/backend"
	"github.com/SanTaClouse/verduleria-luna/internal/app"
	"github.com/SanTaClouse/verduleria-luna/internal/config"
	"github.com/SanTaClouse/verduleria-luna/internal/domain/api"
	"github.com/SanTaClouse/verduleria-luna/internal/logger"
	"github.com/SanTaClouse/verduleria-luna/internal/mockapi"
	"github.com/SanTaClouse/verduleria-luna/internal/pkg/auth"
	"github.com/SanTaClouse/verduleria-luna/internal/server/http/handlers"
	"github.com/SanTaClouse/verduleria-luna/internal/server/http/router"
	"github.com/SanTaClouse/verduleria-luna/internal/service"
	"github.com/SanTaClouse/verduleria-luna/internal/session"
	"github.com/SanTaClouse/verduleria-luna/internal/state"
	"github.com/SanTaClouse/verduleria-luna/internal/storage/blob"
)

// Module assembles the application graph. Extra options are appended, which
// lets tests override single providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		blob.Module,
		fx.Provide(
			newAPISource,
			func(s api.Source) api.Orders { return s.Orders() },
			func(s api.Source) api.Customers { return s.Customers() },
			func(s api.Source) api.Auth { return s.Auth() },
			func(s api.Source) api.Contact { return s.Contact() },
		),
		service.Module,
		state.Module,
		session.Module,
		fx.Provide(func(f *app.BackofficeFacade) handlers.BackofficeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

type sourceParams struct {
	fx.In

	Config *config.Config
	Store  blob.Store
	Tokens auth.Strategy
	Hasher auth.PasswordHasher
	Logger *slog.Logger
}

func newAPISource(p sourceParams) (api.Source, error) {
	if p.Config.APIBaseURL != "" {
		return backend.NewClient(p.Config.APIBaseURL, p.Logger)
	}
	return mockapi.New(p.Store, p.Tokens, p.Hasher, p.Logger, p.Config.NetworkDelay)
}
