package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// check runs one GL call under the validation protocol: with the gldebug
// build tag set, the context's error queue is drained before the call so any
// flag found afterwards belongs to this call, and a set flag aborts with the
// offending call site. Without the tag debugChecks is a false constant and
// this is a plain pass-through.
func check(call func()) {
	if !debugChecks {
		call()
		return
	}

	clearErrors()
	call()

	if errno := gl.GetError(); errno != gl.NO_ERROR {
		_, file, line, _ := runtime.Caller(1)
		panic(fmt.Sprintf("opengl: error 0x%04x after call at %s:%d", errno, file, line))
	}
}

func clearErrors() {
	for gl.GetError() != gl.NO_ERROR {
	}
}
