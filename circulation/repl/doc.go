// Package repl reads librarian commands such as serve("Andy") or check_out(1, 2),
// dispatches them to the circulation desk and prints the desk's responses.
//
// Commands are parsed as HCL native-syntax expressions: a function call, or a bare
// name for commands that take no arguments.
package repl
