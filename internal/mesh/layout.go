package mesh

// Attribute describes one shader input inside the interleaved vertex buffer.
type Attribute struct {
	Name   string
	Size   int32 // float components
	Offset int   // bytes from the start of the vertex
}

// Layout is the "2f 3f" buffer layout consumed by the cube shader.
var Layout = []Attribute{
	{Name: "in_texcoord_0", Size: TexCoordSize, Offset: 0},
	{Name: "in_position", Size: PositionSize, Offset: TexCoordSize * 4},
}

// Stride is the byte size of one interleaved vertex.
const Stride = VertexSize * 4
