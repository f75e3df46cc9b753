// Package report renders core analysis outputs for humans: a plain-text
// summary with reproducibility-grade precision, and trajectory/histogram
// plots of the equilibrated data.
//
// Nothing here feeds back into the numerics — the writers consume completed
// analysis.Comparison and spectral.Result values and only produce files.
package report
