// Package table holds the parsed numeric measurements that csvplot charts.
//
// # Overview
//
// A [Table] is an immutable grid of float64 values with named columns.
// Column 0 is, by convention, the independent variable (an index, a time
// stamp, a sample id) and every other column is a dependent measurement
// plotted against it.
//
// Tables are built once, either in memory with [New] or from CSV with
// [Load] / [ReadCSV], read many times while ranges and charts are computed,
// and discarded after rendering. Column names are mapped to indices once at
// construction so callers can look columns up by name with [Table.Index].
//
// # CSV Input
//
// The first record is the header. Every following record must have exactly
// as many fields as the header and every field must parse as a float:
//
//	id,speed,rpm,torsi,horsepower
//	0,0,0,0,0
//	1,12.5,830.1,40.2,6.9
//
// Failures carry a code from [github.com/matzehuels/csvplot/pkg/errors]:
// SCHEMA_ERROR for arity or header problems, PARSE_ERROR for non-numeric
// fields, IO_ERROR when the source cannot be opened or read. Parsing stops at
// the first bad row.
//
// # Listing
//
// [ListRows] yields a human-readable "column=value" line per row. It is lazy,
// so callers that only show the first few rows never format the rest.
package table
