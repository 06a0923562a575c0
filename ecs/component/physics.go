package component

import "github.com/jakecoffman/cp"

// Velocity is the current heading and speed in world units per second.
type Velocity struct {
	cp.Vector
}

// IsZero reports whether the body is exactly at rest.
func (v Velocity) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

var VelocityComponent = NewComponent[Velocity]()

// Kinematics tunes how a Velocity changes. Acceleration is also the deceleration
// rate applied when no direction is held.
type Kinematics struct {
	Acceleration float64
	MaxSpeed     float64
}

var KinematicsComponent = NewComponent[Kinematics]()
