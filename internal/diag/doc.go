// Package diag defines the diagnostic model shared by the lexer and driver.
//
// Diagnostic is the central record: Severity (Info/Warning/Error), a stable
// numeric Code, a short Message, and a Primary source.Span, optionally with
// Notes for extra context. Producers emit through the Reporter interface so
// they stay decoupled from storage; diag.BagReporter aggregates into a Bag,
// which supports sorting and deduplication for deterministic output.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
package diag
