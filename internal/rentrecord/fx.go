package rentrecord

import (
	"github.com/smallbiznis/rentdesk/internal/rentrecord/repository"
	"github.com/smallbiznis/rentdesk/internal/rentrecord/service"
	"go.uber.org/fx"
)

var Module = fx.Module("rentrecord.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
