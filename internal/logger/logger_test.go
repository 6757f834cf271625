package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsGoToTheirWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters("planet", &out, &errOut)

	l.Info("started size=%d", 32)
	l.Warn("slow tick")
	l.Error("tick failed: %v", "boom")
	l.Event("volcano", 12, "promoted at front(3,4)")

	assert.Contains(t, out.String(), "[planet] INFO started size=32")
	assert.Contains(t, out.String(), "[planet] WARN slow tick")
	assert.Contains(t, out.String(), "[EVENT:volcano] tick:12 | promoted at front(3,4)")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "[planet] ERROR tick failed: boom")
}
