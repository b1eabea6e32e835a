package mesh

// Floats per interleaved vertex: 2 texcoord + 3 position.
const (
	TexCoordSize = 2
	PositionSize = 3
	VertexSize   = TexCoordSize + PositionSize
	VertexCount  = 36
)

// Corners are the eight unique positions of a unit cube centred at the origin.
var Corners = [][3]float32{
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	{-1, 1, -1}, {-1, -1, -1}, {1, -1, -1}, {1, 1, -1},
}

// CornerIndices lists the cube's 12 triangles, two per face, counter-clockwise
// when seen from outside.
var CornerIndices = [][3]int{
	{0, 2, 3}, {0, 1, 2},
	{1, 7, 2}, {1, 6, 7},
	{6, 5, 4}, {4, 7, 6},
	{3, 4, 5}, {3, 5, 0},
	{3, 7, 4}, {3, 2, 7},
	{0, 6, 1}, {0, 5, 6},
}

// TexCoords are the four corners of the texture.
var TexCoords = [][2]float32{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
}

// TexCoordIndices maps each triangle vertex of CornerIndices to a texcoord.
var TexCoordIndices = [][3]int{
	{0, 2, 3}, {0, 1, 2},
	{0, 2, 3}, {0, 1, 2},
	{0, 1, 2}, {2, 3, 0},
	{2, 3, 0}, {2, 0, 1},
	{0, 2, 3}, {0, 1, 2},
	{3, 1, 2}, {3, 0, 1},
}

// Expand flattens values through a triangle index list, one entry per
// triangle vertex.
func Expand[V ~[2]float32 | ~[3]float32](values []V, triangles [][3]int) []V {
	out := make([]V, 0, len(triangles)*3)
	for _, tri := range triangles {
		for _, idx := range tri {
			out = append(out, values[idx])
		}
	}
	return out
}

// BuildVertexData returns the non-indexed cube: 36 vertices laid out as
// u, v, x, y, z.
func BuildVertexData() []float32 {
	uvs := Expand(TexCoords, TexCoordIndices)
	positions := Expand(Corners, CornerIndices)

	data := make([]float32, 0, len(positions)*VertexSize)
	for i := range positions {
		data = append(data, uvs[i][0], uvs[i][1])
		data = append(data, positions[i][0], positions[i][1], positions[i][2])
	}
	return data
}

// BuildIndexed de-duplicates the vertices of BuildVertexData and returns the
// unique vertices together with an element list that reproduces the flat
// data when expanded.
func BuildIndexed() ([]float32, []uint16) {
	flat := BuildVertexData()

	seen := make(map[[VertexSize]float32]uint16)
	var vertices []float32
	indices := make([]uint16, 0, VertexCount)

	for i := 0; i < len(flat); i += VertexSize {
		var key [VertexSize]float32
		copy(key[:], flat[i:i+VertexSize])

		idx, ok := seen[key]
		if !ok {
			idx = uint16(len(seen))
			seen[key] = idx
			vertices = append(vertices, key[:]...)
		}
		indices = append(indices, idx)
	}
	return vertices, indices
}
