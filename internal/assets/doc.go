// Package assets provides catalog-backed stand-ins for the host platform's
// client library services.
//
// # Services
//
//	clientlib.LibraryManager
//	    └── Catalog              - libraries from a YAML catalog
//
//	clientlib.ResourceResolver
//	    ├── PatternResolver      - visibility from glob allow/deny lists
//	    └── FilesystemResolver   - visibility from a directory mirroring
//	                               the content tree
//
// # Catalog Order
//
// Catalog returns libraries grouped by requested category, in the order the
// categories were requested, and within a category in catalog order. A
// library listed under several requested categories appears once, at its
// first position.
//
// # Security
//
// Content paths are validated before lookup. FilesystemResolver resolves
// symlinks and verifies lookups stay within its root.
package assets
