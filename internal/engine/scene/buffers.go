package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// attrib describes one float vertex attribute.
type attrib struct {
	location   uint32
	components int32
	offset     uintptr
}

// meshBuffers is an indexed VAO with its buffers.
type meshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// uploadIndexed creates a VAO from interleaved vertex data and indices.
func uploadIndexed(data unsafe.Pointer, dataSize int, stride int32, indices []uint32, attribs ...attrib) meshBuffers {
	var b meshBuffers

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, dataSize, data, gl.STATIC_DRAW)

	for _, a := range attribs {
		gl.VertexAttribPointerWithOffset(a.location, a.components, gl.FLOAT, false, stride, a.offset)
		gl.EnableVertexAttribArray(a.location)
	}

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	b.indexCount = int32(len(indices))
	gl.BindVertexArray(0)
	return b
}

func (b *meshBuffers) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (b *meshBuffers) destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}
