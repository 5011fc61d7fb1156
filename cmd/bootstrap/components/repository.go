package components

import (
	"learnscape-checkout/internal/infra/captcha"
	"learnscape-checkout/internal/infra/repository"
	"learnscape-checkout/internal/pkg/config"
	"learnscape-checkout/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAttemptRepository,
			fx.As(new(commands.AttemptRepository)),
		),
		fx.Annotate(
			NewCaptchaRegistry,
			fx.As(new(commands.CaptchaRegistry)),
		),
	),
)

func NewCaptchaRegistry(rdb *redis.Client, cfg config.Config) *captcha.Registry {
	return captcha.NewRegistry(rdb, cfg.Redis)
}
