package logger

import "context"

// NewNopLogger returns a Logger that discards everything
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Debug(args ...interface{})                 {}
func (n *nopLogger) Info(args ...interface{})                  {}
func (n *nopLogger) Warn(args ...interface{})                  {}
func (n *nopLogger) Error(args ...interface{})                 {}
func (n *nopLogger) Fatal(args ...interface{})                 {}
func (n *nopLogger) Debugf(format string, args ...interface{}) {}
func (n *nopLogger) Infof(format string, args ...interface{})  {}
func (n *nopLogger) Warnf(format string, args ...interface{})  {}
func (n *nopLogger) Errorf(format string, args ...interface{}) {}
func (n *nopLogger) Fatalf(format string, args ...interface{}) {}
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger {
	return n
}
func (n *nopLogger) WithContext(ctx context.Context) Logger {
	return n
}
func (n *nopLogger) WithComponent(component string) Logger {
	return n
}
