package stripeevent

import "go.uber.org/fx"

// Module exposes the stripe event service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
