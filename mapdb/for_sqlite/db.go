// Package for_sqlite provides a sqlite implementation of interfaces in
// mapdb package.
package for_sqlite

import (
	"github.com/keep94/consume"
	"github.com/keep94/gosqlite/sqlite"
	"github.com/keep94/huecolormap/colormap"
	"github.com/keep94/huecolormap/mapdb"
	"github.com/keep94/toolbox/db"
	"github.com/keep94/toolbox/db/sqlite_db"
	"github.com/keep94/toolbox/db/sqlite_rw"
)

const (
	kSQLNamedColorMapById   = "select id, color_map, description from named_color_maps where id = ?"
	kSQLNamedColorMaps      = "select id, color_map, description from named_color_maps order by 1"
	kSQLAddNamedColorMap    = "insert into named_color_maps (color_map, description) values (?, ?)"
	kSQLUpdateNamedColorMap = "update named_color_maps set color_map = ?, description = ? where id = ?"
	kSQLRemoveNamedColorMap = "delete from named_color_maps where id = ?"
)

type Store struct {
	db sqlite_db.Doer
}

func New(db *sqlite_db.Db) Store {
	return Store{db}
}

func ConnNew(conn *sqlite.Conn) Store {
	return Store{sqlite_db.NewSqliteDoer(conn)}
}

func (s Store) NamedColorMapById(
	t db.Transaction, id int64, m *mapdb.NamedColorMap) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.ReadSingle(
			conn,
			(&rawNamedColorMap{}).init(m),
			mapdb.ErrNoSuchId,
			kSQLNamedColorMapById,
			id)
	})
}

func (s Store) NamedColorMaps(
	t db.Transaction, consumer consume.Consumer) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.ReadMultiple(
			conn,
			(&rawNamedColorMap{}).init(&mapdb.NamedColorMap{}),
			consumer,
			kSQLNamedColorMaps)
	})
}

func (s Store) AddNamedColorMap(
	t db.Transaction, m *mapdb.NamedColorMap) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.AddRow(
			conn,
			(&rawNamedColorMap{}).init(m),
			&m.Id,
			kSQLAddNamedColorMap)
	})
}

func (s Store) UpdateNamedColorMap(
	t db.Transaction, m *mapdb.NamedColorMap) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return sqlite_rw.UpdateRow(
			conn,
			(&rawNamedColorMap{}).init(m),
			kSQLUpdateNamedColorMap)
	})
}

func (s Store) RemoveNamedColorMap(t db.Transaction, id int64) error {
	return sqlite_db.ToDoer(s.db, t).Do(func(conn *sqlite.Conn) error {
		return conn.Exec(kSQLRemoveNamedColorMap, id)
	})
}

type rawNamedColorMap struct {
	*mapdb.NamedColorMap
	colorMap string
}

func (r *rawNamedColorMap) init(bo *mapdb.NamedColorMap) *rawNamedColorMap {
	r.NamedColorMap = bo
	return r
}

func (r *rawNamedColorMap) ValuePtr() interface{} {
	return r.NamedColorMap
}

func (r *rawNamedColorMap) Ptrs() []interface{} {
	return []interface{}{&r.Id, &r.colorMap, &r.Description}
}

func (r *rawNamedColorMap) Values() []interface{} {
	return []interface{}{r.colorMap, r.Description, r.Id}
}

func (r *rawNamedColorMap) Unmarshall() error {
	m, err := colormap.Parse(r.colorMap)
	if err != nil {
		return mapdb.ErrBadColorMap
	}
	r.Map = m
	return nil
}

func (r *rawNamedColorMap) Marshall() error {
	if r.Map == nil {
		return mapdb.ErrBadColorMap
	}
	r.colorMap = r.Map.String()
	return nil
}
