// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction clamps a signed delta to -1, 0 or 1.
func Direction(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}

// ClampedStep moves along one axis by at most speed without passing the
// target: Direction(delta) * min(|delta|, speed).
func ClampedStep(delta, speed int) int {
	return Direction(delta) * min(Abs(delta), speed)
}
