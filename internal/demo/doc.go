// Package demo holds the example scenes run by cmd/pixeldemo and the key
// bindings shared between them.
//
// Each scene is an app.Handler with a preferred configuration and a
// scripted input stream, so the same scene runs interactively in a
// terminal or headless to produce screenshots and GIFs.
package demo
