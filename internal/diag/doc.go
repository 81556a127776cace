// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Producers (lexer, parser, module builder, code generator) emit through the
// Reporter interface so they do not depend on storage. BagReporter collects
// into a bounded Bag; DedupReporter drops repeats. Rendering lives in
// internal/diagfmt.
//
// Codes are grouped by phase: LEX1xxx, SYN2xxx, SEM3xxx, IO4xxx, PRJ5xxx,
// GEN6xxx. The numeric value of a code never changes once published.
package diag
