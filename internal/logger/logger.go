package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger: JSON production output when production is
// true, human friendly development output otherwise.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Must is like New but panics on error. Intended for process startup.
func Must(production bool) *zap.Logger {
	l, err := New(production)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l
}
