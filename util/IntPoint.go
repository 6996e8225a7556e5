package util

import "strconv"

// Zero is the origin. IntPoint is a value type so sharing it is safe.
var Zero = IntPoint{}

// IntPoint is an immutable integer coordinate. It is comparable, so == and !=
// give structural equality and it can be used as a map key.
type IntPoint struct {
	x int32
	y int32
}

func NewIntPoint(x int32, y int32) IntPoint {
	return IntPoint{x: x, y: y}
}

func (ip IntPoint) X() int32 {
	return ip.x
}

func (ip IntPoint) Y() int32 {
	return ip.y
}

func (ip IntPoint) Equals(p IntPoint) bool {
	return ip.x == p.x && ip.y == p.y
}

// HashCode adds the hashes of both fields, an int32 hashing to its own bit
// pattern. Equal points always hash the same.
func (ip IntPoint) HashCode() uint32 {
	return uint32(ip.x) + uint32(ip.y)
}

func (ip IntPoint) String() string {
	return "{X:" + strconv.FormatInt(int64(ip.x), 10) + " Y:" + strconv.FormatInt(int64(ip.y), 10) + "}"
}
