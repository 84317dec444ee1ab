// Package scoring computes the AI-Readiness score: idiosyncratic readiness
// (V^R), systematic opportunity (H^R), their synergy, the composite AI-R, and
// the projected effect of completing a learning pathway.
//
// Every function is pure. Zero denominators return documented fallbacks
// instead of errors, and out-of-range inputs are passed through unclamped
// unless a formula says otherwise.
package scoring
