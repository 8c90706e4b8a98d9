// Package stlconfig loads the YAML configuration a monitor session is built
// from: which signals it reads, its formula, its horizon, any named interval
// parameters, and the CSV trace file to stream.
//
// Example file:
//
//	signals: [x, y]
//	formula: "ev_[0,bound] x > 0 and y < 5"
//	horizon: [0, 100]
//	parameters:
//	  bound: 10
//	trace: trace.csv
package stlconfig
