// Package drivers links the supported database/sql drivers into a binary.
// Importing it registers sqlite, genji, and postgres so the catalog can open
// any of them by name.
package drivers

import (
	// Embedded document store with a SQL layer, registered as "genji".
	_ "github.com/genjidb/genji/driver"
)
