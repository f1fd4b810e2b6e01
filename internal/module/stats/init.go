package stats

import (
	"log/slog"

	"wakeup-punch-system/internal/global/archive"
	"wakeup-punch-system/internal/global/logger"
	"wakeup-punch-system/internal/global/session"
	"wakeup-punch-system/internal/service"
)

var log *slog.Logger

type ModuleStats struct {
	Service *service.Service
	Revoker session.Revoker
	Archive archive.Archive // 为 nil 时导出直接下载
}

func (*ModuleStats) GetName() string {
	return "Stats"
}

func (*ModuleStats) Init() {
	log = logger.New("Stats")
}
