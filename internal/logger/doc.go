// Package logger provides structured logging built on the Zap logging library.
// Every helper takes a context first: a logger stored in the context with ToContext
// (optionally named or decorated with key-value pairs) wins over the global one.
package logger
