// Package fixture provides test suites to test implementations of the
// interfaces in the mapdb package.
package fixture

import (
	"github.com/keep94/consume"
	"github.com/keep94/huecolormap/colormap"
	"github.com/keep94/huecolormap/mapdb"
	"reflect"
	"testing"
)

var (
	kFirstNamedColorMap = &mapdb.NamedColorMap{
		Description: "Temperature",
		Map: colormap.MustNew(
			[]colormap.RGB{{0, 0, 255}, {0, 255, 0}, {255, 0, 0}},
			[]float64{-20.0, 0.0, 35.5}),
	}
	kSecondNamedColorMap = &mapdb.NamedColorMap{
		Description: "Heat",
		Map: colormap.MustNew(
			[]colormap.RGB{
				{50, 110, 150},
				{200, 200, 180},
				{100, 150, 70},
				{60, 90, 55},
				{210, 210, 210},
			},
			[]float64{0.0, 0.01, 0.03, 0.35, 0.6}),
	}
)

type MinimalStore interface {
	mapdb.AddNamedColorMapRunner
	mapdb.NamedColorMapByIdRunner
}

type NamedColorMapsStore interface {
	MinimalStore
	mapdb.NamedColorMapsRunner
}

type UpdateNamedColorMapStore interface {
	MinimalStore
	mapdb.UpdateNamedColorMapRunner
}

type RemoveNamedColorMapStore interface {
	MinimalStore
	mapdb.RemoveNamedColorMapRunner
}

func NamedColorMapById(t *testing.T, store MinimalStore) {
	var first, second, firstResult, secondResult mapdb.NamedColorMap
	createNamedColorMaps(t, store, &first, &second)
	if err := store.NamedColorMapById(nil, first.Id, &firstResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	if err := store.NamedColorMapById(nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	assertNCMEqual(t, &first, &firstResult)
	assertNCMEqual(t, &second, &secondResult)
	var missing mapdb.NamedColorMap
	if err := store.NamedColorMapById(
		nil, second.Id+100, &missing); err != mapdb.ErrNoSuchId {
		t.Errorf("Expected mapdb.ErrNoSuchId, got %v", err)
	}
}

func NamedColorMaps(t *testing.T, store NamedColorMapsStore) {
	var first, second mapdb.NamedColorMap
	createNamedColorMaps(t, store, &first, &second)
	var results []mapdb.NamedColorMap
	if err := store.NamedColorMaps(nil, consume.AppendTo(&results)); err != nil {
		t.Errorf("Got error reading database: %v", err)
	}
	if out := len(results); out != 2 {
		t.Fatalf("Expected array of size 2, got %d", out)
	}
	assertNCMEqual(t, &first, &results[0])
	assertNCMEqual(t, &second, &results[1])
}

func UpdateNamedColorMap(t *testing.T, store UpdateNamedColorMapStore) {
	var first, second, firstResult, secondResult mapdb.NamedColorMap
	createNamedColorMaps(t, store, &first, &second)
	second.Description = "Gray"
	second.Map = colormap.MustNew(
		[]colormap.RGB{{0, 0, 0}, {255, 255, 255}}, []float64{0.0, 1.0})
	if err := store.UpdateNamedColorMap(nil, &second); err != nil {
		t.Errorf("Got error updating database: %v", err)
	}
	if err := store.NamedColorMapById(nil, first.Id, &firstResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	if err := store.NamedColorMapById(nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	assertNCMEqual(t, &first, &firstResult)
	assertNCMEqual(t, &second, &secondResult)

	// No color map
	second.Map = nil
	if err := store.UpdateNamedColorMap(nil, &second); err != mapdb.ErrBadColorMap {
		t.Errorf("Expected mapdb.ErrBadColorMap, got %v", err)
	}
}

func RemoveNamedColorMap(t *testing.T, store RemoveNamedColorMapStore) {
	var first, second, firstResult, secondResult mapdb.NamedColorMap
	createNamedColorMaps(t, store, &first, &second)
	if err := store.RemoveNamedColorMap(nil, first.Id); err != nil {
		t.Errorf("Got error removing from database: %v", err)
	}
	if err := store.NamedColorMapById(
		nil, first.Id, &firstResult); err != mapdb.ErrNoSuchId {
		t.Errorf("Expected mapdb.ErrNoSuchId, got %v", err)
	}
	if err := store.NamedColorMapById(
		nil, second.Id, &secondResult); err != nil {
		t.Errorf("Got error reading database by id: %v", err)
	}
	assertNCMEqual(t, &second, &secondResult)
}

// BadColorMap tests that a store reports mapdb.ErrBadColorMap for stored
// color maps that cannot be parsed. corrupt overwrites the stored color
// map with the given id.
func BadColorMap(
	t *testing.T, store MinimalStore, corrupt func(id int64) error) {
	var first, second mapdb.NamedColorMap
	createNamedColorMaps(t, store, &first, &second)
	if err := corrupt(first.Id); err != nil {
		t.Fatalf("Got %v corrupting store", err)
	}
	var result mapdb.NamedColorMap
	if err := store.NamedColorMapById(
		nil, first.Id, &result); err != mapdb.ErrBadColorMap {
		t.Errorf("Expected mapdb.ErrBadColorMap, got %v", err)
	}
	if err := store.AddNamedColorMap(
		nil, &mapdb.NamedColorMap{Description: "Empty"}); err != mapdb.ErrBadColorMap {
		t.Errorf("Expected mapdb.ErrBadColorMap, got %v", err)
	}
}

func createNamedColorMaps(
	t *testing.T,
	store MinimalStore,
	first *mapdb.NamedColorMap,
	second *mapdb.NamedColorMap) {
	createNamedColorMap(t, store, kFirstNamedColorMap, first)
	createNamedColorMap(t, store, kSecondNamedColorMap, second)
}

func createNamedColorMap(
	t *testing.T,
	store MinimalStore,
	toBeAdded *mapdb.NamedColorMap,
	result *mapdb.NamedColorMap) {
	*result = *toBeAdded
	if err := store.AddNamedColorMap(nil, result); err != nil {
		t.Fatalf("Got %v adding to store", err)
	}
	if result.Id == 0 {
		t.Error("Expected Id to be set.")
	}
}

func assertNCMEqual(t *testing.T, expected, actual *mapdb.NamedColorMap) {
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
