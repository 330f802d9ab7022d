package components

import (
	"salonbook/internal/pkg/clock"
	"salonbook/internal/usecase"
	"salonbook/internal/usecase/commands"
	"salonbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewEligibilityChecker,
		usecase.NewTokenValidator,

		commands.NewAuthCommands,
		commands.NewReviewCommands,
		commands.NewModerationCommands,

		queries.NewUserQueries,
		queries.NewReviewQueries,
		queries.NewModerationQueries,
	),
)
