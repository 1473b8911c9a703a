package view_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/maxviazov/portfolio-service/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// navbarHarness stubs just enough of window and document for navbar.js and
// prints the container's classes after each step as a JSON array.
const navbarHarness = `
var listeners = {};
var classes = new Set();
var window = {
  scrollY: 0,
  addEventListener: function (type, fn) {
    listeners[type] = (listeners[type] || []).filter(function (f) { return f !== fn; });
    listeners[type].push(fn);
  },
  removeEventListener: function (type, fn) {
    listeners[type] = (listeners[type] || []).filter(function (f) { return f !== fn; });
  },
};
var container = {
  classList: {
    add: function () { for (var i = 0; i < arguments.length; i++) classes.add(arguments[i]); },
    remove: function () { for (var i = 0; i < arguments.length; i++) classes.delete(arguments[i]); },
  },
};
var document = { querySelector: function () { return container; } };
function fire(type, ev) { (listeners[type] || []).slice().forEach(function (fn) { fn(ev || {}); }); }
function scrollTo(y) { window.scrollY = y; fire("scroll"); }
var steps = [];
function snap() { steps.push(Array.from(classes).sort().join(",")); }
`

const navbarSteps = `
scrollTo(120); snap();
scrollTo(0); snap();
fire("pagehide", { persisted: true });
scrollTo(80); snap();
fire("pageshow", { persisted: true }); snap();
scrollTo(0); snap();
scrollTo(120); snap();
console.log(JSON.stringify(steps));
`

func TestNavbarScript_TogglesAcrossPageCache(t *testing.T) {
	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node not installed")
	}
	js, err := fs.ReadFile(view.Static(), "navbar.js")
	require.NoError(t, err)

	script := filepath.Join(t.TempDir(), "navbar_run.js")
	require.NoError(t, os.WriteFile(script, []byte(navbarHarness+string(js)+navbarSteps), 0o644))

	out, err := exec.Command(node, script).Output()
	require.NoError(t, err)

	var steps []string
	require.NoError(t, json.Unmarshal(out, &steps))
	assert.Equal(t, []string{
		"navbar-ease-in,navbar-glass", // scrolled
		"navbar-ease-in",              // back at the top
		"navbar-ease-in",              // hidden: scrolling is ignored
		"navbar-ease-in,navbar-glass", // restored at scrollY 80, state resynced
		"navbar-ease-in",
		"navbar-ease-in,navbar-glass",
	}, steps)
}
