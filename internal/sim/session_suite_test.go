package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bucketsim/internal/config"
	"github.com/san-kum/bucketsim/internal/control"
	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/physics"
	"github.com/san-kum/bucketsim/internal/scene"
	"github.com/san-kum/bucketsim/internal/sim"
)

var viewport = dynamo.Viewport{Width: 800, Height: 600}

// freeFall builds a ball-only scene: no bucket, so the ball keeps falling
// through the bottom edge.
func freeFall(pos dynamo.Vec2) (*sim.Session, *physics.Space) {
	space := physics.NewSpace()
	space.SetGravity(dynamo.Vec2{Y: 980})
	ball, err := scene.BuildBall(space, 20, 10, pos)
	Expect(err).NotTo(HaveOccurred())

	sched, err := sim.NewScheduler(60, 600)
	Expect(err).NotTo(HaveOccurred())

	boundary := sim.Boundary{Viewport: viewport, FallCap: 800}
	return sim.NewSession(space, ball, boundary, sched, control.NewDrag(10, 10)), space
}

var _ = Describe("Session", func() {
	Context("with the ball falling freely", func() {
		It("reappears at the top with capped speed, repeatedly", func() {
			sess, space := freeFall(dynamo.Vec2{X: 500, Y: 100})

			wraps := 0
			for frame := 0; frame < 600; frame++ {
				below := sess.Ball().Position().Y > viewport.Height
				n := sess.Correct()

				if below {
					Expect(n).To(Equal(1))
					Expect(sess.Ball().Position().Y).To(Equal(0.0))
					Expect(sess.Ball().Velocity().Y).To(BeNumerically("<=", 800))
					wraps++
				} else {
					Expect(n).To(BeZero())
				}
				sess.Advance()
			}

			Expect(wraps).To(BeNumerically(">=", 3))
			Expect(space.Steps()).To(Equal(6000))
			Expect(sess.Ball().Position().X).To(Equal(500.0))
		})

		It("reports wraps through metrics and observers", func() {
			sess, _ := freeFall(dynamo.Vec2{X: 500, Y: 100})
			w := &wrapLog{}
			sess.AddObserver(w)

			for frame := 0; frame < 120; frame++ {
				_, err := sess.Frame(sess.Pointer())
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(w.frames).NotTo(BeEmpty())
			Expect(w.frames[0]).To(BeNumerically(">", 50))
		})
	})

	Context("while dragging", func() {
		It("pulls the ball to the pointer and lets go on release", func() {
			sess, _ := freeFall(dynamo.Vec2{X: 500, Y: 100})
			Expect(sess.PointerDown(dynamo.Vec2{X: 500, Y: 100})).To(BeTrue())

			target := dynamo.Vec2{X: 300, Y: 200}
			for frame := 0; frame < 120; frame++ {
				f, err := sess.Frame(target)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Dragging).To(BeTrue())
			}
			Expect(sess.Ball().Position().Sub(target).Norm()).To(BeNumerically("<", 5))

			sess.PointerUp()
			for frame := 0; frame < 10; frame++ {
				_, err := sess.Frame(target)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(sess.Ball().Position().Y).To(BeNumerically(">", target.Y+5))
			sel, ok := sess.Drag().Selected()
			Expect(ok).To(BeTrue())
			Expect(sel.Body).To(BeIdenticalTo(sess.Ball()))
		})

		It("picks the later of two overlapping balls every time", func() {
			sess, space := freeFall(dynamo.Vec2{X: 100, Y: 100})
			later, err := scene.BuildBall(space, 20, 10, dynamo.Vec2{X: 110, Y: 100})
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 5; i++ {
				sess.PointerUp()
				Expect(sess.PointerDown(dynamo.Vec2{X: 105, Y: 100})).To(BeTrue())
				sel, _ := sess.Drag().Selected()
				Expect(sel.Body).To(BeIdenticalTo(later))
			}
		})

		It("ignores pointer-down on empty space", func() {
			sess, _ := freeFall(dynamo.Vec2{X: 500, Y: 100})
			Expect(sess.PointerDown(dynamo.Vec2{X: 50, Y: 550})).To(BeFalse())
			Expect(sess.Drag().Dragging()).To(BeFalse())

			sess.PointerUp()
			Expect(sess.Drag().Dragging()).To(BeFalse())
		})
	})

	Context("with independent sessions", func() {
		It("evolves identical sessions identically and keeps their state apart", func() {
			a, _ := freeFall(dynamo.Vec2{X: 500, Y: 100})
			b, _ := freeFall(dynamo.Vec2{X: 500, Y: 100})
			c, _ := freeFall(dynamo.Vec2{X: 500, Y: 100})
			Expect(c.PointerDown(dynamo.Vec2{X: 500, Y: 100})).To(BeTrue())

			for frame := 0; frame < 90; frame++ {
				_, err := a.Frame(dynamo.Vec2{})
				Expect(err).NotTo(HaveOccurred())
				_, err = b.Frame(dynamo.Vec2{})
				Expect(err).NotTo(HaveOccurred())
				_, err = c.Frame(dynamo.Vec2{X: 500, Y: 100})
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(a.Ball().Position()).To(Equal(b.Ball().Position()))
			Expect(a.Ball().Velocity()).To(Equal(b.Ball().Velocity()))
			Expect(b.Drag().Dragging()).To(BeFalse())
			Expect(c.Ball().Position().Sub(dynamo.Vec2{X: 500, Y: 100}).Norm()).To(BeNumerically("<", 5))
		})
	})

	Context("with the default scene", func() {
		It("builds the bucket and ball from config", func() {
			cfg := config.DefaultConfig()
			space := physics.NewSpace()
			sc, err := scene.Build(space, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(space.Segments()).To(HaveLen(60))

			sched, err := sim.NewScheduler(cfg.Rates.Render, cfg.Rates.Physics)
			Expect(err).NotTo(HaveOccurred())
			sess := sim.NewSession(space, sc.Ball, sim.Boundary{Viewport: cfg.ViewportRect(), FallCap: cfg.Boundary.FallCap}, sched, control.NewDrag(cfg.Drag.Gain, cfg.Drag.QueryRadius))

			// The ball starts above the right half of the bucket and lands on it.
			for frame := 0; frame < 30; frame++ {
				_, err := sess.Frame(dynamo.Vec2{})
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(sess.Ball().Position().Y).To(BeNumerically(">", 100))
			Expect(sess.Last().Wraps).To(BeZero())
		})

		It("refuses a flat parabola", func() {
			cfg := config.DefaultConfig()
			cfg.Bucket.Height = 0
			_, err := scene.Build(physics.NewSpace(), cfg)
			Expect(err).To(MatchError(dynamo.ErrZeroHeight))
		})
	})
})

type wrapLog struct {
	frames []int
}

func (w *wrapLog) OnFrame(f dynamo.Frame) {
	if f.Wraps > 0 {
		w.frames = append(w.frames, f.Index)
	}
}
