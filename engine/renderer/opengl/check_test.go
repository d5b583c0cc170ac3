package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshview/meshview/engine/renderer"
)

// Without the gldebug tag check must be a plain pass-through that still runs
// the wrapped call exactly once. The error-queue protocol around it only
// compiles in with the tag and needs a live context to exercise.
func TestCheckRunsWrappedCallOnce(t *testing.T) {
	calls := 0
	check(func() { calls++ })
	assert.Equal(t, 1, calls)
	assert.False(t, debugChecks)
}

func TestBufferTargetMapping(t *testing.T) {
	assert.NotEqual(t, bufferTarget(renderer.ArrayBuffer), bufferTarget(renderer.ElementArrayBuffer))
	assert.Panics(t, func() { bufferTarget(renderer.BufferTarget(99)) })
}

func TestElementTypeMapping(t *testing.T) {
	assert.NotEqual(t, elementType(renderer.Float), elementType(renderer.UnsignedInt))
	assert.Panics(t, func() { elementType(renderer.ElementKind(99)) })
}

func TestStageTypeMapping(t *testing.T) {
	assert.NotEqual(t, stageType(renderer.VertexStage), stageType(renderer.FragmentStage))
	assert.Panics(t, func() { stageType(renderer.ShaderStage(99)) })
}
