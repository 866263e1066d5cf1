package rendering

// cubeFaces lists the outward normal and the two in-plane axes of each face
// of the unit box centered on the origin
var cubeFaces = [6][3][3]float32{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// CubeVertices returns 36 interleaved position+normal vertices, counter
// clockwise when seen from outside
func CubeVertices() []float32 {
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	out := make([]float32, 0, 36*6)
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		for _, c := range corners {
			for axis := 0; axis < 3; axis++ {
				out = append(out, 0.5*(n[axis]+c[0]*u[axis]+c[1]*v[axis]))
			}
			out = append(out, n[0], n[1], n[2])
		}
	}
	return out
}
