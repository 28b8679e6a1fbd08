// Package project turns a transducer into an acceptor by copying one side of
// every arc label onto the other.
//
//	Project(r, Input)   every arc i:o becomes i:i, both symbol tables = input table
//	Project(r, Output)  every arc i:o becomes o:o, both symbol tables = output table
//
// Weights, states and arc order are unchanged. The input is not modified.
// Complexity: O(V + E).
package project
