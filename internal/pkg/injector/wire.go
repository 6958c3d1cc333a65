//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	"github.com/lk2023060901/premio-backend/internal/ai/provider/openrouter"
	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/conf"
	contentbiz "github.com/lk2023060901/premio-backend/internal/content/biz"
	contentservice "github.com/lk2023060901/premio-backend/internal/content/service"
	credentialbiz "github.com/lk2023060901/premio-backend/internal/credential/biz"
	credentialservice "github.com/lk2023060901/premio-backend/internal/credential/service"
	exportbiz "github.com/lk2023060901/premio-backend/internal/export/biz"
	exportservice "github.com/lk2023060901/premio-backend/internal/export/service"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/server"
)

// ProviderSet is the Wire provider set for all dependencies
var ProviderSet = wire.NewSet(
	// Data layer
	dataProviderSet,

	// Completion adapter
	providerProviderSet,

	// Repositories
	repositoryProviderSet,

	// Use cases
	useCaseProviderSet,

	// HTTP services
	httpServiceProviderSet,

	// Servers
	serverProviderSet,
)

// Data layer providers
var dataProviderSet = wire.NewSet(
	provideData,
	provideObjectStore,
	provideLimiter,
)

// Completion adapter providers
var providerProviderSet = wire.NewSet(
	provideOpenRouter,
	wire.Bind(new(types.Generator), new(*openrouter.Provider)),
	wire.Bind(new(types.KeyVerifier), new(*openrouter.Provider)),
)

// Repository providers
var repositoryProviderSet = wire.NewSet(
	provideCredentialRepo,
)

// Use case providers
var useCaseProviderSet = wire.NewSet(
	provideRenderer,
	credentialbiz.NewCredentialUseCase,
	wire.Bind(new(contentbiz.CredentialLookup), new(*credentialbiz.CredentialUseCase)),
	contentbiz.NewContentUseCase,
	exportbiz.NewExportUseCase,
)

// HTTP service providers
var httpServiceProviderSet = wire.NewSet(
	contentservice.NewContentService,
	credentialservice.NewCredentialService,
	exportservice.NewExportService,
)

// Server providers
var serverProviderSet = wire.NewSet(
	server.NewHTTPServer,
)

// InitializeApp initializes the application with Wire
func InitializeApp(config *conf.Config, log *logger.Logger) (*App, func(), error) {
	wire.Build(ProviderSet, newApp)
	return nil, nil, nil
}
