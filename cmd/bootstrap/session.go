package bootstrap

import (
	"learnscape-checkout/internal/pkg/config"
	"learnscape-checkout/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionVerifier,
	),
)

func NewSessionVerifier(cfg config.Config) *sessiontoken.Verifier {
	return sessiontoken.NewVerifier(cfg.Session.JWTSecret)
}
