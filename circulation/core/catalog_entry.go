package core

// CatalogEntry is one record of the book collection: the title and author of a single copy.
type CatalogEntry struct {
	Title  string
	Author string
}
