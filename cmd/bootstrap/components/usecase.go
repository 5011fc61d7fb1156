package components

import (
	"learnscape-checkout/internal/pkg/clock"
	"learnscape-checkout/internal/usecase/commands"
	"learnscape-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentAuthorizer,
		commands.NewRegistrationService,
		commands.NewCaptureCoordinator,
		commands.NewPromoLedger,
		commands.NewCompensationManager,
		commands.NewPurchaseCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
	),
)
