// SPDX-License-Identifier: MIT

package vector

// Vec2 returns the 2D vector (x, y).
func Vec2(x, y float64) Vector2 { return Vector2{data: [2]float64{x, y}} }

// Vec3 returns the 3D vector (x, y, z).
func Vec3(x, y, z float64) Vector3 { return Vector3{data: [3]float64{x, y, z}} }

// Vec4 returns the 4D vector (x, y, z, w).
func Vec4(x, y, z, w float64) Vector4 { return Vector4{data: [4]float64{x, y, z, w}} }

// Cross returns the right-handed cross product a × b.
// Only 3D vectors have one, so the signature takes Vector3 and the compiler
// rejects every other dimension.
func Cross(a, b Vector3) Vector3 {
	return Vec3(
		a.data[1]*b.data[2]-a.data[2]*b.data[1],
		a.data[2]*b.data[0]-a.data[0]*b.data[2],
		a.data[0]*b.data[1]-a.data[1]*b.data[0],
	)
}

// Extend lifts a 3D point or direction into homogeneous coordinates (x, y, z, w).
func Extend(v Vector3, w float64) Vector4 {
	return Vec4(v.data[0], v.data[1], v.data[2], w)
}

// Truncate drops the w component of a homogeneous vector.
func Truncate(v Vector4) Vector3 {
	return Vec3(v.data[0], v.data[1], v.data[2])
}
