// Package ui draws the window back end's HUD and minimap overlay. The
// drawing code needs the ebiten build tag; the text layout does not.
//
// Unlike app, the HUD and overlay have no !ebiten twins: only the tagged
// app.Game constructs them, and the headless code they share (lines.go)
// builds without the tag.
package ui
