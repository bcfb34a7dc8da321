package month

import (
	"github.com/smallbiznis/rentdesk/internal/month/repository"
	"github.com/smallbiznis/rentdesk/internal/month/service"
	"go.uber.org/fx"
)

var Module = fx.Module("month.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
