// Package focus tracks which element of the view tree owns keyboard focus.
//
// Allowed here:
// - the focused element id, blur, change notification
//
// Not allowed here:
// - key handling or navigation policy (tabs, modal)
package focus
