// Package drivers links the supported database/sql drivers into a binary.
// Importing it registers sqlite, genji, and postgres so the catalog can open
// any of them by name.
package drivers

import (
	// Pure Go sqlite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)
