package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shooter/internal/game"
)

// maxRects bounds one rect batch; particles dominate the count.
const maxRects = game.MaxParticles + 512

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// corners walks a quad as two triangles (TL, TR, BL, TR, BR, BL), each entry
// selecting the low or high edge on x and y.
var corners = [6][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 1}}

// batch is a VAO/VBO pair refilled from verts every frame.
type batch struct {
	vao, vbo uint32
	floats   int // per vertex
	verts    []float32
}

// newBatch lays out float attributes of the given sizes at locations 0..n-1.
func newBatch(maxVerts int, sizes ...int32) *batch {
	b := &batch{}
	for _, n := range sizes {
		b.floats += int(n)
	}
	stride := int32(b.floats * 4)

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxVerts*int(stride), nil, gl.STREAM_DRAW)
	off := 0
	for loc, n := range sizes {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), n, gl.FLOAT, false, stride, glOffset(off*4))
		off += int(n)
	}
	gl.BindVertexArray(0)

	b.verts = make([]float32, 0, maxVerts*b.floats)
	return b
}

func (b *batch) draw() {
	if len(b.verts) == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.verts)*4, gl.Ptr(b.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.verts)/b.floats))
	gl.BindVertexArray(0)
	b.verts = b.verts[:0]
}

func (b *batch) delete() {
	if b == nil {
		return
	}
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

// Renderer batches flat rectangles and glyph quads in playfield
// coordinates. The viewport stretches the playfield over the framebuffer.
type Renderer struct {
	w, h float32

	rectProg uint32
	rectRes  int32
	rects    *batch

	fontTex  uint32
	textProg uint32
	textRes  int32
	glyphs   *batch
}

func NewRenderer(w, h float64) (*Renderer, error) {
	r := &Renderer{w: float32(w), h: float32(h)}

	prog, err := buildProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	r.rectProg = prog
	r.rectRes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.rects = newBatch(maxRects*6, 2, 4) // pos, colour

	if err := r.initFont(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("font: %w", err)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	r.rects.delete()
	r.glyphs.delete()
	for _, id := range []uint32{r.rectProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Rect queues a filled rectangle. Rects past the batch limit are dropped.
func (r *Renderer) Rect(x, y, w, h float64, col game.RGB, alpha float32) {
	if len(r.rects.verts) >= cap(r.rects.verts) {
		return
	}
	xs := [2]float32{float32(x), float32(x + w)}
	ys := [2]float32{float32(y), float32(y + h)}
	cr, cg, cb := col.Float()
	for _, c := range corners {
		r.rects.verts = append(r.rects.verts, xs[c[0]], ys[c[1]], cr, cg, cb, alpha)
	}
}

// Outline queues a border of thickness t just inside the box.
func (r *Renderer) Outline(x, y, w, h, t float64, col game.RGB) {
	r.Rect(x, y, w, t, col, 1)
	r.Rect(x, y+h-t, w, t, col, 1)
	r.Rect(x, y+t, t, h-2*t, col, 1)
	r.Rect(x+w-t, y+t, t, h-2*t, col, 1)
}

// FlushRects draws all queued rectangles in order.
func (r *Renderer) FlushRects() {
	gl.UseProgram(r.rectProg)
	gl.Uniform2f(r.rectRes, r.w, r.h)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.rects.draw()
	gl.Disable(gl.BLEND)
}
