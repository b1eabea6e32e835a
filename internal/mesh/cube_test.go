package mesh

import "testing"

func TestBuildVertexDataShape(t *testing.T) {
	data := BuildVertexData()
	if len(data) != VertexCount*VertexSize {
		t.Fatalf("Expected %d floats, got %d", VertexCount*VertexSize, len(data))
	}

	for v := 0; v < VertexCount; v++ {
		entry := data[v*VertexSize : (v+1)*VertexSize]

		uv := [2]float32{entry[0], entry[1]}
		if !containsUV(uv) {
			t.Errorf("Vertex %d: texcoord %v not in the texcoord set", v, uv)
		}
		pos := [3]float32{entry[2], entry[3], entry[4]}
		if !containsCorner(pos) {
			t.Errorf("Vertex %d: position %v not in the corner set", v, pos)
		}
	}
}

func TestBuildVertexDataFirstTriangle(t *testing.T) {
	data := BuildVertexData()
	// Triangle (0, 2, 3) with texcoords (0, 2, 3).
	want := []float32{
		0, 0, -1, -1, 1,
		1, 1, 1, 1, 1,
		0, 1, -1, 1, 1,
	}
	for i, w := range want {
		if data[i] != w {
			t.Fatalf("Float %d: expected %v, got %v", i, w, data[i])
		}
	}
}

func TestEveryCornerUsed(t *testing.T) {
	used := make(map[[3]float32]bool)
	for _, p := range Expand(Corners, CornerIndices) {
		used[p] = true
	}
	if len(used) != len(Corners) {
		t.Errorf("Expected all %d corners to be referenced, got %d", len(Corners), len(used))
	}
}

func TestBuildIndexedReproducesFlatData(t *testing.T) {
	flat := BuildVertexData()
	vertices, indices := BuildIndexed()

	if len(indices) != VertexCount {
		t.Fatalf("Expected %d indices, got %d", VertexCount, len(indices))
	}
	if len(vertices)%VertexSize != 0 {
		t.Fatalf("Vertex data length %d is not a multiple of %d", len(vertices), VertexSize)
	}
	unique := len(vertices) / VertexSize
	if unique >= VertexCount {
		t.Errorf("Expected de-duplication, got %d unique vertices", unique)
	}

	for i, idx := range indices {
		if int(idx) >= unique {
			t.Fatalf("Index %d out of range: %d", i, idx)
		}
		got := vertices[int(idx)*VertexSize : int(idx+1)*VertexSize]
		want := flat[i*VertexSize : (i+1)*VertexSize]
		for k := range want {
			if got[k] != want[k] {
				t.Fatalf("Vertex %d component %d: expected %v, got %v", i, k, want[k], got[k])
			}
		}
	}
}

func TestLayoutStride(t *testing.T) {
	if Stride != 20 {
		t.Errorf("Expected stride 20, got %d", Stride)
	}
	if Layout[0].Name != "in_texcoord_0" || Layout[1].Name != "in_position" {
		t.Errorf("Unexpected attribute order: %v", Layout)
	}
	if Layout[1].Offset != 8 {
		t.Errorf("Expected position offset 8, got %d", Layout[1].Offset)
	}
}

func containsUV(uv [2]float32) bool {
	for _, c := range TexCoords {
		if c == uv {
			return true
		}
	}
	return false
}

func containsCorner(p [3]float32) bool {
	for _, c := range Corners {
		if c == p {
			return true
		}
	}
	return false
}
