// Package ops drives hue lights from color maps.
package ops

import (
	"errors"
	"github.com/keep94/gohue"
	"github.com/keep94/gohue/actions"
	"github.com/keep94/huecolormap/huecolor"
	"github.com/keep94/maybe"
	"github.com/keep94/tasks"
	"log"
	"time"
)

const (
	// Default time between light updates for ScaleAction.Task
	DefaultInterval = time.Minute
)

// Interface Context represents a connection to the hue bridge.
type Context interface {

	// Sets the properties for a particular light. Light id 0 means all
	// lights.
	Set(lightId int, properties *gohue.LightProperties) (
		response []byte, err error)
}

// Reader reads the current value of some quantity such as temperature.
type Reader interface {
	Read() (float64, error)
}

// ReaderFunc converts a function into a Reader.
type ReaderFunc func() (float64, error)

func (f ReaderFunc) Read() (float64, error) {
	return f()
}

// ScaleAction sets lights to the color and brightness that Scale gives
// for the value Source reads.
// These instances must be treated as immutable.
type ScaleAction struct {
	// Converts readings to colors
	Scale *huecolor.Scale

	// The readings
	Source Reader

	// The lights to set. Empty means all lights.
	LightIds []int

	// Optional fade time in 100ms units
	TransitionTime maybe.Uint16
}

// Do reads Source once and sets the lights accordingly. Errors are
// reported to e.
func (a *ScaleAction) Do(ctxt Context, e *tasks.Execution) {
	if err := a.update(ctxt); err != nil {
		e.SetError(err)
	}
}

// Task returns a task that updates the lights right away and then every
// interval until it is ended. If interval is 0, DefaultInterval is used.
// Errors are logged and do not stop the returned task.
func (a *ScaleAction) Task(ctxt Context, interval time.Duration) tasks.Task {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &scaleTask{action: a, ctxt: ctxt, interval: interval}
}

// Properties returns the light properties for reading.
func (a *ScaleAction) Properties(reading float64) *gohue.LightProperties {
	color, brightness := a.Scale.ColorBrightness(reading)
	return &gohue.LightProperties{
		C:              color,
		Bri:            brightness,
		On:             maybe.NewBool(true),
		TransitionTime: a.TransitionTime}
}

// scaleTask is a pointer so that executors can compare it.
type scaleTask struct {
	action   *ScaleAction
	ctxt     Context
	interval time.Duration
}

func (t *scaleTask) Do(e *tasks.Execution) {
	for {
		if err := t.action.update(t.ctxt); err != nil {
			log.Printf("ops: Updating lights: %v", err)
		}
		if !e.Sleep(t.interval) {
			return
		}
	}
}

func (a *ScaleAction) update(ctxt Context) error {
	reading, err := a.Source.Read()
	if err != nil {
		return err
	}
	properties := a.Properties(reading)
	ids := a.LightIds
	if len(ids) == 0 {
		ids = []int{0}
	}
	var result error
	for _, id := range ids {
		if response, err := ctxt.Set(id, properties); err != nil {
			result = FixError(id, response, err)
		}
	}
	return result
}

// FixError converts a response from gohue.Get() or gohue.Set() into
// a descriptive error. lightId is the lightId, rawResponse is the
// response from gohue.Get() or gohue.Set(), err is the original
// error from gohue.Get() or gohue.Set()
func FixError(lightId int, rawResponse []byte, err error) error {
	if err == gohue.NoSuchResourceError {
		return &actions.NoSuchLightIdError{LightId: lightId, RawResponse: rawResponse}
	}
	if len(rawResponse) > 0 {
		return errors.New(string(rawResponse))
	}
	return err
}
