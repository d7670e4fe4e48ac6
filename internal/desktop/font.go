package desktop

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"shooter/internal/game"
)

// Glyph atlas layout: printable ASCII indexed by code point, FontCols per row.
const (
	FontCols   = 16
	FontRows   = 8
	FontCellW  = 7
	FontCellH  = 13
	FontAtlasW = FontCols * FontCellW
	FontAtlasH = FontRows * FontCellH
)

// buildAtlas rasterizes basicfont's 7x13 face into a white-on-clear atlas.
func buildAtlas() *image.NRGBA {
	face := basicfont.Face7x13
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := 32; c <= 126; c++ {
		col, row := c%FontCols, c/FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return img
}

// maxGlyphs is the initial glyph buffer size; longer text grows it.
const maxGlyphs = 512

// initFont uploads the glyph atlas to texture unit 2 and builds the text
// pipeline.
func (r *Renderer) initFont() error {
	atlas := buildAtlas()
	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	for _, p := range [][2]int32{
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))

	prog, err := buildProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	r.textRes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	gl.UseProgram(prog)
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uFontTex\x00")), 2)
	r.glyphs = newBatch(maxGlyphs*6, 2, 2, 4) // pos, uv, colour
	return nil
}

// glyphQuad returns the atlas UV box for ch, or false for unprintables.
func glyphQuad(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < 32 || ch > 126 {
		return 0, 0, 0, 0, false
	}
	col, row := int(ch)%FontCols, int(ch)/FontCols
	u0 = float32(col) / FontCols
	v0 = float32(row) / FontRows
	u1 = float32(col+1) / FontCols
	v1 = float32(row+1) / FontRows
	return u0, v0, u1, v1, true
}

// DrawChar queues one character cell with its top-left corner at (sx, sy).
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col game.RGB) {
	u0, v0, u1, v1, ok := glyphQuad(ch)
	if !ok {
		return
	}
	xs := [2]float32{sx, sx + FontCellW*scale}
	ys := [2]float32{sy, sy + FontCellH*scale}
	us := [2]float32{u0, u1}
	vs := [2]float32{v0, v1}
	cr, cg, cb := col.Float()
	for _, c := range corners {
		r.glyphs.verts = append(r.glyphs.verts, xs[c[0]], ys[c[1]], us[c[0]], vs[c[1]], cr, cg, cb, 1)
	}
}

// DrawString queues a string with its top-left corner at (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy float64, scale float32, col game.RGB) {
	x, y := float32(sx), float32(sy)
	for _, ch := range text {
		r.DrawChar(ch, x, y, scale, col)
		x += FontCellW * scale
	}
}

// TextWidth returns the width in playfield pixels of a single-line string.
func TextWidth(text string, scale float32) float64 {
	return float64(float32(utf8.RuneCountInString(text)*FontCellW) * scale)
}

// FlushText draws all queued glyphs.
func (r *Renderer) FlushText() {
	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.textRes, r.w, r.h)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.glyphs.draw()
	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
}
