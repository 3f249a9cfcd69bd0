// Package core contains the functional core of the circulation desk:
// the calendar, book copies, patrons, overdue notices, the numbered list
// used to pick books by number, and the domain events the desk produces.
//
// Nothing in this package performs I/O or reads ambient state. Today's date
// is always passed in by the caller, and book IDs come from a BookIDSequence
// owned by whoever creates the books.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
