// Package dimacs serializes a generated network into DIMACS flow-problem
// text format: a header of comment lines, one problem line, node
// descriptor lines, and arc lines, with the field layout depending on the
// network's problem type.
package dimacs
