// Package drivers links the supported database/sql drivers into a binary.
// Importing it registers sqlite, genji, and postgres so the catalog can open
// any of them by name.
package drivers

// Ready does nothing. Calling it gives main packages an explicit reason to
// import this package instead of a bare blank import.
func Ready() {}
