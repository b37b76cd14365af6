package goal

import "go.uber.org/fx"

// Module exposes the goal service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
