package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/studytimer/internal/app"
	"github.com/alexanderramin/studytimer/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, tick generations, controller).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for a, sets a terminal size and drains
// Init. The review tick scheduled by Init is dropped by the driver.
func NewTestDriver(t *testing.T, a *App) *TestDriver {
	t.Helper()

	ctrl, err := a.newController(context.Background(), a.Config.Timer)
	require.NoError(t, err)

	d := teatest.New(t, newAppModel(a, ctrl), teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Ctrl returns the controller behind the TUI.
func (d *TestDriver) Ctrl() *app.Controller {
	return d.appModel().state.Ctrl
}

func (d *TestDriver) Snapshot() app.Snapshot {
	return d.Ctrl().Snapshot()
}

// Tick delivers a countdown tick with the current generation.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(countdownTickMsg{gen: d.appModel().countdownGen})
}

// TickN delivers n current-generation countdown ticks.
func (d *TestDriver) TickN(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.Tick()
	}
}

// ReviewTick delivers a review tick with the current generation.
func (d *TestDriver) ReviewTick() {
	d.T.Helper()
	d.Send(reviewTickMsg{gen: d.appModel().reviewGen})
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// IsQuitting checks both the model flag and the driver's tea.QuitMsg flag.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}
