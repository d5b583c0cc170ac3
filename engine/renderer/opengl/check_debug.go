//go:build gldebug

package opengl

const debugChecks = true
