package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sunlit/internal/engine/model"
	"github.com/Faultbox/sunlit/internal/engine/texture"
)

// meshBuffers holds the GPU objects of one uploaded mesh.
type meshBuffers struct {
	vao, vbo, ebo uint32
	count         int32
}

// Release deletes the buffers. Safe to call more than once.
func (b *meshBuffers) Release() {
	if b.vao == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.ebo)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	b.vao, b.vbo, b.ebo = 0, 0, 0
}

// glTexture is an uploaded texture object.
type glTexture struct {
	id uint32
}

// Release deletes the texture. Safe to call more than once.
func (t *glTexture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// interleave packs mesh vertices as position, texcoord, normal.
func interleave(vertices []model.Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*vertexStride)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}

// uploadMesh creates VAO/VBO/EBO for a mesh and attaches them to it.
func uploadMesh(mesh *model.Mesh) *meshBuffers {
	data := interleave(mesh.Vertices)
	b := &meshBuffers{count: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	if len(mesh.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	mesh.Attach(b)
	return b
}

// uploadTexture creates a mipmapped RGBA texture and attaches it.
func uploadTexture(tex *texture.Texture) *glTexture {
	w, h := tex.Size()
	t := &glTexture{}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if w > 0 && h > 0 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Image.Pix))
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	tex.Attach(t)
	return t
}
