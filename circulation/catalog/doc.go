// Package catalog reads the book collection a library starts with.
//
// A collection file holds one record per line, a parenthesised pair of quoted strings:
//
//	("The Hobbit", "J. R. R. Tolkien")
//
// Blank lines are ignored. Records are parsed as HCL native-syntax tuples, so strings
// use double quotes and HCL escape sequences.
package catalog
