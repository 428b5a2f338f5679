// Package ownership answers, for every operand of every instruction
// kind, which ownership kinds the used value may hold and whether the
// use ends the value's lifetime.
//
// The package is a pure decision table over the instruction graph in
// package kir: Classify computes a compatibility Map for one operand,
// CheckOperand and CheckFunc apply the map to the actual value kinds,
// and CheckModule fans the per-function checks out across workers.
// User-facing incompatibilities become diagnostics; graphs that break
// structural invariants panic with a dump of the offending instruction.
package ownership
