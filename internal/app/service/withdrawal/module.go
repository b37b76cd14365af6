package withdrawal

import "go.uber.org/fx"

// Module exposes the withdrawal service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
