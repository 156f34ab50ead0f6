package config

import (
	"go.uber.org/zap"

	"github.com/anmacmillan/pensionloss/internal/calculation"
)

// zapEngineLogger adapts a zap sugared logger to the engine's Logger interface.
type zapEngineLogger struct {
	s *zap.SugaredLogger
}

// NewEngineLogger returns a calculation.Logger backed by the global zap logger.
func NewEngineLogger() calculation.Logger {
	return zapEngineLogger{s: zap.L().Sugar().Named("engine")}
}

func (l zapEngineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapEngineLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
