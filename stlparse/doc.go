// Package stlparse turns a monitor source program — a signal declaration
// followed by a single named formula — into a transducer.Node tree.
//
// Grammar (SPEC_FULL.md §5):
//
//	program    := "signal" ident ("," ident)* "phi" ":=" formula
//	formula    := orExpr
//	orExpr     := andExpr ("or" andExpr)*
//	andExpr    := unary ("and" unary)*
//	unary      := "not" unary | temporal | atom | "(" formula ")"
//	temporal   := ("ev" | "alw") "_" "[" bound "," bound "]" unary
//	atom       := ident ("<" | ">") (number | ident)
//	bound      := number | ident
//
// Declared signal names are assigned trace columns in declaration order
// starting at 1 (column 0 is always the timestamp, per trace.Trace). A bound
// that is an identifier is a named interval parameter, resolved at
// evaluation time against the symbol table given to
// transducer.Node.SetTraceDataPtr, not at parse time.
package stlparse
