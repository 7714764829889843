// Package finding provides the shared security-finding types consumed
// by the compliance transformers and report writers.
//
// A Finding is one evaluated check result for one resource, as produced
// by an upstream scanning engine. This package does not execute checks;
// it only models and loads their results.
package finding
