// Package compile parses CUE pattern documents into pattern values.
//
// A pattern document is a struct with an optional name and a required
// clause list:
//
//	pattern: {
//		name: "ugly-man-soda"
//		clauses: [
//			{relation: "Inheritance", args: ["$x", "man"]},
//			{relation: "Inheritance", args: ["$x", "sodaDrinker"]},
//		]
//	}
//
// String arguments starting with "$" are variables; other strings are
// constants; {fn, args} structs are compound terms.
package compile
