package ticket

import "go.uber.org/fx"

// Module exposes the ticket service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
