package commission

import "go.uber.org/fx"

// Module exposes the commission service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
