package components

import (
	"log/slog"

	"learnscape-checkout/internal/infra/gateway"
	"learnscape-checkout/internal/infra/learnapi"
	"learnscape-checkout/internal/pkg/config"
	"learnscape-checkout/internal/usecase/commands"
	"learnscape-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

// ClientModule wires the outbound collaborators: the platform backend REST
// client and the payment gateway.
var ClientModule = fx.Module("clients",
	fx.Provide(
		// Platform backend
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(commands.PaymentsAPI)),
		),
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(commands.RegistrationAPI)),
		),
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(commands.PromoAPI)),
		),
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(commands.UserDirectory)),
		),
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(commands.ProductCatalog)),
		),
		// Read side shares the same endpoints
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(queries.PromoReadStore)),
		),
		// Payment gateway
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPlatformClient(cfg config.Config, logger *slog.Logger) *learnapi.Client {
	return learnapi.NewClient(cfg.Platform, logger)
}

func NewStripeGateway(cfg config.Config) *gateway.StripeGateway {
	return gateway.NewStripeGateway(cfg.Stripe)
}
