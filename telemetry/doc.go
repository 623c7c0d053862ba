// Package telemetry carries the ambient logging and metrics of the symnmf
// commands: a slog-backed Logger with operation helpers and a
// MetricsObserver with a Prometheus implementation on a private registry.
//
// Logs always go to stderr so stdout stays reserved for matrix and score
// output.
package telemetry
