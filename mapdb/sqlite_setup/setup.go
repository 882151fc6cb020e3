// Package sqlite_setup sets up a sqlite database for named color maps
package sqlite_setup

import (
	"github.com/keep94/gosqlite/sqlite"
)

// SetUpTables creates all needed tables in database.
func SetUpTables(conn *sqlite.Conn) error {
	err := conn.Exec("create table if not exists named_color_maps (id INTEGER PRIMARY KEY AUTOINCREMENT, description TEXT, color_map TEXT)")
	if err != nil {
		return err
	}
	return nil
}
