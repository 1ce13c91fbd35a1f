// Package tty decodes raw terminal input (keys and SGR mouse reports) and
// feeds it into the frame input state.
package tty
