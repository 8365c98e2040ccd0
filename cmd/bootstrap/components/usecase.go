package components

import (
	"time"

	"rentloop/internal/infra/notify"
	"rentloop/internal/infra/sessionstore"
	"rentloop/internal/pkg/clock"
	"rentloop/internal/pkg/config"
	"rentloop/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewBookingLocation,
		NewBookingConfig,
		fx.Annotate(
			NewSessionStore,
			fx.As(new(usecase.SessionStore)),
		),
		fx.Annotate(
			NewGatewayNotifier,
			fx.As(new(usecase.Notifier)),
		),
		usecase.NewBookingUseCase,
		usecase.NewCalendarUseCase,
		usecase.NewQueryUseCase,
		usecase.NewSweepUseCase,
		usecase.NewUserUseCase,
	),
)

// NewBookingLocation resolves the zone that anchors the start instant of a
// booking date. Failing here kills startup, which is better than silently
// scheduling reminders in UTC.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewBookingConfig(cfg config.Config) config.BookingConfig {
	return cfg.Booking
}

func NewSessionStore(cfg config.Config) *sessionstore.Store {
	return sessionstore.New(cfg.Booking.SessionTTL)
}

func NewGatewayNotifier(cfg config.Config) *notify.GatewayNotifier {
	return notify.NewGatewayNotifier(cfg.Gateway)
}
