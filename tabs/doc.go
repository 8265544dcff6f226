// Package tabs contains the tab set controller and the bubbletea components
// that render it.
//
// Allowed here:
// - selection, roving focus and keyboard navigation policy (Controller)
// - lazy panel mounting, indicator geometry, accessibility attributes
// - tab list / tab / panel / indicator rendering driven by a Controller
//
// Not allowed here:
// - modal or dialog behavior (modal, alertdialog)
// - persistence of selections (internal/service)
package tabs
