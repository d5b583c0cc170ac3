//go:build !gldebug

package opengl

const debugChecks = false
