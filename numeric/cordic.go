package numeric

// cordicIterations is the number of shift-add microrotations. Sixteen
// rotations resolve angles to atan(2⁻¹⁵) ≈ 2 raw units, matching the Q16.16
// resolution.
const cordicIterations = 16

// cordicGain is K = Π cos(atan 2⁻ⁱ) ≈ 0.607253 in Q16.16. Starting the
// rotation at (K, 0) folds the accumulated magnitude growth back to one.
const cordicGain Fixed = 39797

// cordicAngles holds atan(2⁻ⁱ) in Q16.16 for each microrotation step.
var cordicAngles = [cordicIterations]Fixed{
	51472, 30386, 16055, 8150, 4091, 2048, 1024, 512,
	256, 128, 64, 32, 16, 8, 4, 2,
}

// CordicBackend computes sine and cosine with the CORDIC shift-add rotation
// over Q16.16 values, multiplication-free apart from the final gain. Every
// non-trigonometric operation delegates to the embedded [FixedBackend].
// Selected by the cordicmath build tag.
type CordicBackend struct {
	FixedBackend
}

var _ Backend[Fixed] = CordicBackend{}

func (CordicBackend) Sin(x Fixed) Fixed {
	sin, _ := cordicSinCos(x)
	return sin
}

func (CordicBackend) Cos(x Fixed) Fixed {
	_, cos := cordicSinCos(x)
	return cos
}

func (CordicBackend) Tan(x Fixed) Fixed {
	sin, cos := cordicSinCos(x)

	if cos.Abs() < fixedTolerance {
		if sin >= 0 {
			return fixedSentinel
		}
		return -fixedSentinel
	}
	return sin.Div(cos)
}

// cordicSinCos runs the rotation-mode CORDIC iteration. The angle is reduced
// to [−π/2, π/2] first; the outer quadrants fold through sin(π−a) = sin(a),
// cos(π−a) = −cos(a).
func cordicSinCos(x Fixed) (sin, cos Fixed) {
	angle := x
	for angle > fixedPi {
		angle -= fixedTwoPi
	}
	for angle < -fixedPi {
		angle += fixedTwoPi
	}

	negateCos := false
	if angle > fixedHalfPi {
		angle = fixedPi - angle
		negateCos = true
	} else if angle < -fixedHalfPi {
		angle = -fixedPi - angle
		negateCos = true
	}

	cx := cordicGain
	cy := Fixed(0)
	z := angle
	for i := 0; i < cordicIterations; i++ {
		dx := cx >> uint(i)
		dy := cy >> uint(i)
		if z >= 0 {
			cx, cy = cx-dy, cy+dx
			z -= cordicAngles[i]
		} else {
			cx, cy = cx+dy, cy-dx
			z += cordicAngles[i]
		}
	}

	if negateCos {
		cx = -cx
	}
	return cy, cx
}
