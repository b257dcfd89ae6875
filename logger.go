package subhandler

import (
	"go.uber.org/zap"

	"github.com/RicardoRibeirorr/subhandler/common"
)

type Logger = common.Logger

// NewZapLogger adapts a zap logger for WithLogger.
func NewZapLogger(logger *zap.Logger) Logger {
	return common.NewZapLogger(logger)
}
