// Package trace records pass boundaries of the front end.
//
// Enable tracing via command-line flags:
//
//	vesuvius parse --trace=- --trace-level=phase main.vs
//
// Implementations:
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate text or NDJSON write to a file or stderr
//   - SlogTracer: forwards events to a *slog.Logger
//   - MultiTracer: fans events out to several tracers
//
// Levels: off, error, phase (driver and passes), detail (per file), debug.
//
// Tracers travel through the pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parentID)
//	defer span.End("")
//
// Every event carries the session id of the tracer that emitted it, so
// NDJSON streams of parallel runs can be told apart.
package trace
