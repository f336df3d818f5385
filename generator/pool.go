package generator

import (
	"bytes"
	"sync"
)

// templateBufferSize covers a companion with a few dozen fields.
const templateBufferSize = 2 * 1024

var templateBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, templateBufferSize))
	},
}

// getTemplateBuffer returns an empty buffer from the pool.
func getTemplateBuffer() *bytes.Buffer {
	buf := templateBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putTemplateBuffer returns a buffer to the pool.
func putTemplateBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 64*1024 {
		return
	}
	templateBufferPool.Put(buf)
}
