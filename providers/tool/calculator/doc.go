// Package calculator exposes the arith operations as a single JSON tool.
//
// [NewCalculatorTool] returns a [tool.Tool] named "Calculator" whose input
// selects an operation and its operands; [NewCatalog] wraps it in a
// [tool.Catalog]. [Calc] is the underlying function for direct use.
package calculator
