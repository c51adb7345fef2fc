package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock provides the current time. Services take it as a dependency so
// lifecycle timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func System() Clock { return systemClock{} }

var Module = fx.Module("clock",
	fx.Provide(System),
)
