// Package analysis runs the empirical g-factor pipeline: one Branch per
// topology (load → equilibration window → moments), combined by Ratio into
// the dimensionless ⟨Rg²⟩_alpha / ⟨Rg²⟩_tree comparison.
//
// The two branches are independent by design — a failure in one never masks
// the other, and Compare refuses to form a ratio with a missing operand.
// Callers that want a partial report for the surviving branch can still read
// its Branch value; only the combined Comparison is withheld.
package analysis
