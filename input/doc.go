// Package input tracks keyboard, pointer-button and modifier state across
// frames and derives "just pressed" and "just released" edges from raw
// press and release events.
//
// Key and button identifiers are the platform-independent codes of
// github.com/gogpu/gpucontext, so a gpucontext.EventSource can be wired in
// with Attach. Hosts with other event models call the State mutators
// directly.
package input
