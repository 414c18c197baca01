package metrics

// Attribute keys on exported series. Paths are normalized by the HTTP
// middleware before they get here so label cardinality stays bounded.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrResource = "resource"
)
