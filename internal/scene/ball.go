package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/san-kum/bucketsim/internal/config"
	"github.com/san-kum/bucketsim/internal/dynamo"
)

// BuildBall adds a solid circular body to the backend.
func BuildBall(b dynamo.Backend, radius, mass float64, pos dynamo.Vec2) (dynamo.Body, error) {
	if radius <= 0 || mass <= 0 {
		return nil, fmt.Errorf("ball radius %v mass %v: %w", radius, mass, dynamo.ErrParameterBounds)
	}
	moment := cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	body, _ := b.AddCircle(radius, mass, moment, pos, dynamo.DefaultMaterial)
	return body, nil
}

type Scene struct {
	Ball   dynamo.Body
	Bucket []dynamo.StaticSegment
}

// Build configures gravity, then adds the bucket and the ball.
func Build(b dynamo.Backend, cfg *config.Config) (*Scene, error) {
	b.SetGravity(cfg.GravityVec())

	bucket, err := BuildBucket(b, cfg.Bucket.Width, cfg.Bucket.Height, cfg.Bucket.XOffset, cfg.Bucket.YOffset)
	if err != nil {
		return nil, fmt.Errorf("bucket: %w", err)
	}

	ball, err := BuildBall(b, cfg.Ball.Radius, cfg.Ball.Mass, cfg.BallPosition())
	if err != nil {
		return nil, fmt.Errorf("ball: %w", err)
	}

	return &Scene{Ball: ball, Bucket: bucket}, nil
}
