// Package diag defines the diagnostic model shared by the structural
// validator and the ownership checker.
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by analysis passes over the instruction graph.
//   - Offer a light-weight Bag that lets producers emit diagnostics
//     without coupling to storage or formatting layers.
//
// Package diag performs no formatting, IO, or CLI integration; rendering
// lives in cmd/keel. Diagnostics locate findings by Locus (function,
// block, instruction, operand) rather than source spans, since the graph
// this tool analyses has no surface syntax.
package diag
