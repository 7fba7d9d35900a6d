// Package geometry holds the vertex records shared with the rendering
// shaders. Field order, scalar widths and padding match the shader-side
// declarations so slices of these types can be uploaded byte for byte.
package geometry

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
)

// Vec2 mirrors vector_float2.
type Vec2 [2]float32

// Vec4 mirrors packed_float4.
type Vec4 [4]float32

// Rectangle is a quad given by its four corners.
type Rectangle struct {
	TopLeft     Vec2
	BottomLeft  Vec2
	TopRight    Vec2
	BottomRight Vec2
}

// Line is a segment drawn with the given width. The shader struct is
// aligned to 8 bytes, so it carries 4 bytes of tail padding.
type Line struct {
	StartPoint Vec2
	EndPoint   Vec2
	Width      float32
	_          float32
}

// TextMeshVertex is one vertex of a glyph quad. Both fields are packed
// vectors, so the record has no padding.
type TextMeshVertex struct {
	Position  Vec4
	TexCoords Vec2
}

// Sizes of the records in shader memory.
const (
	RectangleSize      = 32
	LineSize           = 24
	TextMeshVertexSize = 24
)

// RectangleFromBounds returns the axis-aligned rectangle spanning
// [minX, maxX] x [minY, maxY], with Y growing downwards.
func RectangleFromBounds(minX, minY, maxX, maxY float32) Rectangle {
	return Rectangle{
		TopLeft:     Vec2{minX, minY},
		BottomLeft:  Vec2{minX, maxY},
		TopRight:    Vec2{maxX, minY},
		BottomRight: Vec2{maxX, maxY},
	}
}

// NewLine returns a line from start to end.
func NewLine(start, end Vec2, width float32) Line {
	return Line{StartPoint: start, EndPoint: end, Width: width}
}

// Length returns the distance between the end points.
func (l Line) Length() float32 {
	dx := float64(l.EndPoint[0] - l.StartPoint[0])
	dy := float64(l.EndPoint[1] - l.StartPoint[1])
	return float32(math.Hypot(dx, dy))
}

func appendFloats(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

func readFloats(b []byte, fs ...*float32) {
	for i, f := range fs {
		*f = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
}

// AppendBinary appends the shader layout of r to b.
func (r Rectangle) AppendBinary(b []byte) ([]byte, error) {
	return appendFloats(b,
		r.TopLeft[0], r.TopLeft[1],
		r.BottomLeft[0], r.BottomLeft[1],
		r.TopRight[0], r.TopRight[1],
		r.BottomRight[0], r.BottomRight[1],
	), nil
}

// AppendBinary appends the shader layout of l, padding included, to b.
func (l Line) AppendBinary(b []byte) ([]byte, error) {
	return appendFloats(b,
		l.StartPoint[0], l.StartPoint[1],
		l.EndPoint[0], l.EndPoint[1],
		l.Width, 0,
	), nil
}

// AppendBinary appends the shader layout of v to b.
func (v TextMeshVertex) AppendBinary(b []byte) ([]byte, error) {
	return appendFloats(b,
		v.Position[0], v.Position[1], v.Position[2], v.Position[3],
		v.TexCoords[0], v.TexCoords[1],
	), nil
}

// DecodeRectangle reads a Rectangle from the first RectangleSize bytes of b.
func DecodeRectangle(b []byte) (Rectangle, error) {
	var r Rectangle
	if len(b) < RectangleSize {
		return r, fmt.Errorf("rectangle: need %d bytes, have %d", RectangleSize, len(b))
	}
	readFloats(b,
		&r.TopLeft[0], &r.TopLeft[1],
		&r.BottomLeft[0], &r.BottomLeft[1],
		&r.TopRight[0], &r.TopRight[1],
		&r.BottomRight[0], &r.BottomRight[1],
	)
	return r, nil
}

// DecodeLine reads a Line from the first LineSize bytes of b.
func DecodeLine(b []byte) (Line, error) {
	var l Line
	if len(b) < LineSize {
		return l, fmt.Errorf("line: need %d bytes, have %d", LineSize, len(b))
	}
	readFloats(b,
		&l.StartPoint[0], &l.StartPoint[1],
		&l.EndPoint[0], &l.EndPoint[1],
		&l.Width,
	)
	return l, nil
}

// DecodeTextMeshVertex reads a TextMeshVertex from the first
// TextMeshVertexSize bytes of b.
func DecodeTextMeshVertex(b []byte) (TextMeshVertex, error) {
	var v TextMeshVertex
	if len(b) < TextMeshVertexSize {
		return v, fmt.Errorf("text mesh vertex: need %d bytes, have %d", TextMeshVertexSize, len(b))
	}
	readFloats(b,
		&v.Position[0], &v.Position[1], &v.Position[2], &v.Position[3],
		&v.TexCoords[0], &v.TexCoords[1],
	)
	return v, nil
}

// EncodeVertices appends the shader layout of every vertex in vs to b.
func EncodeVertices(b []byte, vs []TextMeshVertex) []byte {
	b = slices.Grow(b, len(vs)*TextMeshVertexSize)
	for _, v := range vs {
		b, _ = v.AppendBinary(b)
	}
	return b
}
