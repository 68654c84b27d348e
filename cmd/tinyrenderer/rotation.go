package main

import (
	"github.com/charmbracelet/harmonica"

	"github.com/bstahlhood/tinyrenderer/pkg/math3d"
	"github.com/bstahlhood/tinyrenderer/pkg/models"
)

// Rotation axes, as indexes into a spinner's vectors.
const (
	axisPitch = iota
	axisYaw
	axisRoll
)

// spinner turns a radius-fitted mesh for the terminal viewer. Angles and
// angular velocities are kept per axis (X pitch, Y yaw, Z roll); velocity
// eases back to rest through a critically damped spring.
type spinner struct {
	mesh   *models.Mesh
	spring harmonica.Spring

	angle  [3]float64
	vel    [3]float64
	accel  [3]float64 // spring state of vel
	torque [3]float64 // held input, decays every step
}

func newSpinner(mesh *models.Mesh, fps int) *spinner {
	return &spinner{
		mesh:   mesh,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// kick adds an instant change of angular velocity.
func (s *spinner) kick(pitch, yaw, roll float64) {
	s.vel[axisPitch] += pitch
	s.vel[axisYaw] += yaw
	s.vel[axisRoll] += roll
}

// hold sets the input torque on one axis.
func (s *spinner) hold(axis int, torque float64) {
	s.torque[axis] = torque
}

// step advances one frame of dt seconds. Torque decays on its own since key
// release events are unreliable in terminals.
func (s *spinner) step(dt float64) {
	for i := range s.angle {
		s.vel[i] += s.torque[i] * dt
		s.torque[i] *= 0.9
		s.angle[i] += s.vel[i]
		s.vel[i], s.accel[i] = s.spring.Update(s.vel[i], s.accel[i], 0)
	}
}

func (s *spinner) reset() {
	s.angle, s.vel, s.accel, s.torque = [3]float64{}, [3]float64{}, [3]float64{}, [3]float64{}
}

// matrix composes roll, then yaw, then pitch.
func (s *spinner) matrix() math3d.Mat4 {
	return math3d.RotateX(s.angle[axisPitch]).
		Mul(math3d.RotateY(s.angle[axisYaw])).
		Mul(math3d.RotateZ(s.angle[axisRoll]))
}

// frame returns the mesh at the current rotation, or nil without a mesh.
func (s *spinner) frame() *models.Mesh {
	if s.mesh == nil {
		return nil
	}
	return s.mesh.Transformed(s.matrix())
}
