package generator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateBufferPool(t *testing.T) {
	buf := getTemplateBuffer()
	assert.Equal(t, 0, buf.Len())

	buf.WriteString("dirty")
	putTemplateBuffer(buf)

	again := getTemplateBuffer()
	assert.Equal(t, 0, again.Len(), "pooled buffers come back empty")
	putTemplateBuffer(again)

	// nil and oversized buffers are ignored
	putTemplateBuffer(nil)
	putTemplateBuffer(bytes.NewBuffer(make([]byte, 0, 128*1024)))
}
