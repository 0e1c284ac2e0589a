// Package log contains the default inclusion logger interface. It is used by
// all packages to log their messages.
//
// In order not to extort any specific logging package, the logger is wrapped
// with the 'github.com/neuronlabs/uni-logger' interfaces. Any third-party
// logger that implements unilogger.LeveledLogger might be set as the default
// logger. If no logger is set the messages are being silently discarded.
package log
