// Package logger wraps zerolog with flowkit's structured logging
// conventions: leveled methods taking optional field maps, standard field
// keys for run and step correlation, and a global instance for callers
// that do not inject their own.
package logger
