// Package scene builds the static bucket and the dynamic ball and hands
// them to a physics backend.
package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/bucketsim/internal/dynamo"
)

const (
	// SampleStep is the horizontal distance between parabola samples.
	SampleStep = 10.0
	// SegmentRadius gives the bucket wall a physical thickness.
	SegmentRadius = 2.0
)

// BucketPoints samples y = x²/(4·height) every SampleStep units over
// [-width/2, width/2], negates y so the curve opens upward on screen and
// translates by (xOffset, yOffset).
func BucketPoints(width, height, xOffset, yOffset float64) ([]dynamo.Vec2, error) {
	if height == 0 {
		return nil, dynamo.ErrZeroHeight
	}
	if math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("bucket height %v: %w", height, dynamo.ErrParameterBounds)
	}
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("bucket width %v: %w", width, dynamo.ErrParameterBounds)
	}

	start := math.Floor(-width / 2)
	end := math.Floor(width / 2)
	n := int((end-start)/SampleStep) + 1

	points := make([]dynamo.Vec2, 0, n)
	for i := 0; i < n; i++ {
		x := start + float64(i)*SampleStep
		y := x * x / (4 * height)
		points = append(points, dynamo.Vec2{X: x + xOffset, Y: -y + yOffset})
	}
	return points, nil
}

// BuildBucket adds one static segment per consecutive pair of bucket
// points to the backend and returns them in order.
func BuildBucket(b dynamo.Backend, width, height, xOffset, yOffset float64) ([]dynamo.StaticSegment, error) {
	points, err := BucketPoints(width, height, xOffset, yOffset)
	if err != nil {
		return nil, err
	}

	if len(points) < 2 {
		return nil, nil
	}
	segments := make([]dynamo.StaticSegment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		seg := dynamo.StaticSegment{
			A:        points[i],
			B:        points[i+1],
			Radius:   SegmentRadius,
			Material: dynamo.DefaultMaterial,
		}
		b.AddSegment(seg)
		segments = append(segments, seg)
	}
	return segments, nil
}
