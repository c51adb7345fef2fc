package audit

import (
	"github.com/abiramijewels/aurum/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.recorder",
	fx.Provide(service.NewRecorder),
)
