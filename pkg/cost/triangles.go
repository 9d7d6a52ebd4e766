package cost

import "github.com/ChicagoDave/neighborhood/pkg/scene"

// Triangle counts of the meshes each geometry family is drawn with.
const (
	BoxTriangles         = 12  // unit box
	ConeTriangles        = 8   // four radial segments: four sides and a square base
	CylinderTriangles    = 24  // six radial segments: twelve side triangles and two capped hexagons
	SphereTriangles      = 264 // twelve by twelve segments, pole rows are single triangles
	IcosahedronTriangles = 20
	PlaneTriangles       = 2
)

// TrianglesFor returns the triangle count of one mesh of geometry g.
func TrianglesFor(g scene.Geometry) int {
	switch g {
	case scene.GeometryBox:
		return BoxTriangles
	case scene.GeometryCone:
		return ConeTriangles
	case scene.GeometryCylinder:
		return CylinderTriangles
	case scene.GeometrySphere:
		return SphereTriangles
	case scene.GeometryIcosahedron:
		return IcosahedronTriangles
	case scene.GeometryPlane:
		return PlaneTriangles
	default:
		return 0
	}
}
