// Package mapdb contains the persistence layer for named color maps
package mapdb

import (
	"errors"
	"github.com/keep94/consume"
	"github.com/keep94/huecolormap/colormap"
	"github.com/keep94/huecolormap/huecolor"
	"github.com/keep94/toolbox/db"
)

var (
	// Indicates that the id does not exist in the database.
	ErrNoSuchId = errors.New("mapdb: No such Id.")
	// Indicates that a NamedColorMap has no color map or a bad one.
	ErrBadColorMap = errors.New("mapdb: Bad color map.")
)

// NamedColorMap represents a color map by name read from persistent
// storage.
type NamedColorMap struct {
	Id          int64
	Map         *colormap.ColorMap
	Description string
}

// Scale returns the hue light scale for this instance.
func (n *NamedColorMap) Scale() *huecolor.Scale {
	return huecolor.NewScale(n.Map)
}

type NamedColorMapByIdRunner interface {
	// NamedColorMapById gets a named color map by id.
	NamedColorMapById(t db.Transaction, id int64, m *NamedColorMap) error
}

type NamedColorMapsRunner interface {
	// NamedColorMaps gets all named color maps ordered by id.
	NamedColorMaps(t db.Transaction, consumer consume.Consumer) error
}

type AddNamedColorMapRunner interface {
	// AddNamedColorMap adds a named color map and sets its Id.
	AddNamedColorMap(t db.Transaction, m *NamedColorMap) error
}

type UpdateNamedColorMapRunner interface {
	// UpdateNamedColorMap updates a named color map by id.
	UpdateNamedColorMap(t db.Transaction, m *NamedColorMap) error
}

type RemoveNamedColorMapRunner interface {
	// RemoveNamedColorMap removes a named color map by id.
	RemoveNamedColorMap(t db.Transaction, id int64) error
}

// All returns all the named color maps.
func All(store NamedColorMapsRunner) ([]NamedColorMap, error) {
	var result []NamedColorMap
	if err := store.NamedColorMaps(nil, consume.AppendTo(&result)); err != nil {
		return nil, err
	}
	return result, nil
}

// ScaleById returns the hue light scale of a named color map.
func ScaleById(
	store NamedColorMapByIdRunner, id int64) (*huecolor.Scale, error) {
	var m NamedColorMap
	if err := store.NamedColorMapById(nil, id, &m); err != nil {
		return nil, err
	}
	return m.Scale(), nil
}

// Descriptions returns the description of each named color map by id.
func Descriptions(store NamedColorMapsRunner) (map[int64]string, error) {
	result := make(map[int64]string)
	consumer := descriptionConsumer(result)
	if err := store.NamedColorMaps(nil, consumer); err != nil {
		return nil, err
	}
	return result, nil
}

type descriptionConsumer map[int64]string

func (d descriptionConsumer) CanConsume() bool {
	return true
}

func (d descriptionConsumer) Consume(ptr interface{}) {
	p := ptr.(*NamedColorMap)
	d[p.Id] = p.Description
}
