package components

import (
	"rentloop/internal/handler"
	"rentloop/internal/handler/api"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/pkg/config"
	"rentloop/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewBookingHandler,
		api.NewCalendarHandler,
		api.NewItemHandler,
		api.NewSweepHandler,
		NewAuthMiddleware,
		NewGatewayAuth,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(jwtService *jwt.Service) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtService)
}

func NewGatewayAuth(cfg config.Config) *middleware.GatewayAuth {
	return middleware.NewGatewayAuth(cfg.Gateway.Token)
}
