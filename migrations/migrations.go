// Package migrations embeds the schema scripts for every supported database.
package migrations

import "embed"

// FS holds one directory per driver (sqlite/, postgres/) of NNN_name.sql files.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
