package store

// Relationship declares a reference-holding field on a collection. Depth
// expansion follows these to replace ids with embedded documents. A field
// with one dot ("items.product") points inside an array of subdocuments.
type Relationship struct {
	Field      string
	Collection string
	HasMany    bool
}

// DefaultSchemas describes the storefront collections.
var DefaultSchemas = map[string][]Relationship{
	Products: {
		{Field: "category", Collection: Categories},
		{Field: "images", Collection: Media, HasMany: true},
	},
	Categories: {
		{Field: "image", Collection: Media},
	},
	Orders: {
		{Field: "user", Collection: Users},
		{Field: "items.product", Collection: Products},
	},
}
