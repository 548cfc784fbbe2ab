package orbitalmech

import "github.com/gonum/matrix/mat64"

// AttitudeRep is the surface this kernel expects from the companion rigid body
// kinematics library. Each attitude coordinate set (quaternion, Euler angle
// sequence, modified Rodrigues parameters, principal rotation vector) carries
// the same capability set, so any pairwise conversion dispatches through the
// DCM instead of requiring one function per ordered pair of representations.
// No implementation lives in this module.
type AttitudeRep interface {
	// DCM returns the direction cosine matrix of this attitude.
	DCM() *mat64.Dense
	// SetDCM sets this attitude from a direction cosine matrix.
	SetDCM(m *mat64.Dense)
	// Compose returns the attitude of this rotation followed by o, expressed
	// in the receiver's representation.
	Compose(o AttitudeRep) AttitudeRep
	// Differentiate returns the coordinate rates for the given body angular
	// velocity vector (rad/s).
	Differentiate(ω []float64) []float64
}
