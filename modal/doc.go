// Package modal is the dialog primitive: open/close lifecycle, initial and
// return focus, a focus trap over the dialog's actions, escape-to-close and
// overlay compositing onto the view underneath.
//
// Allowed here:
// - dialog state, action focus cycling, popup compositing
//
// Not allowed here:
// - dialog flavors with their own focus policy (alertdialog)
package modal
