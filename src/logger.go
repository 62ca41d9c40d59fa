package src

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Errorf(template string, args ...any)
	Info(args ...any)
	Error(args ...any)
	Sync() error
}
