package components

import (
	"time"

	"parkgate/internal/pkg/clock"
	"parkgate/internal/pkg/config"
	"parkgate/internal/usecase"
	"parkgate/internal/usecase/commands"
	"parkgate/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewFacilityLocation,
)

// NewFacilityLocation resolves the facility's display timezone; "today"
// in the stats endpoint is anchored to it.
func NewFacilityLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Facility.TimeZone)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewGateUseCase,
		commands.NewFacilityUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSessionQueries,
		queries.NewFacilityQueries,
		queries.NewContractQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
