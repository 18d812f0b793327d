package render_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/motion"
	"github.com/san-kum/polyview/internal/palette"
	"github.com/san-kum/polyview/internal/render"
)

var _ = Describe("Renderer", func() {
	var (
		r     *render.Renderer
		scene render.Scene
	)

	BeforeEach(func() {
		r = render.New(nil)
		scene = render.Scene{
			Params:  mesh.DefaultParams(),
			Width:   400,
			Height:  300,
			Palette: palette.Default,
		}
	})

	DescribeTable("emits one polygon per face regardless of rotation",
		func(kind mesh.Kind, count int) {
			scene.Kind = kind
			for _, rot := range []geom.Rotation{{}, {X: 45, Y: 30, Z: 10}, {X: -720, Y: 359.9}} {
				scene.Rotation = rot
				Expect(r.Render(scene).Polygons).To(HaveLen(count))
			}
		},
		Entry("cube", mesh.Cube, 6),
		Entry("rectangular prism", mesh.RectangularPrism, 6),
		Entry("pyramid", mesh.Pyramid, 5),
		Entry("triangular prism", mesh.TriangularPrism, 5),
		Entry("cone", mesh.Cone, 40),
		Entry("cylinder", mesh.Cylinder, 60),
		Entry("sphere", mesh.Sphere, 192),
		Entry("hemisphere", mesh.Hemisphere, 144),
		Entry("torus", mesh.Torus, 288),
	)

	Context("with a cube of side 2 at rest", func() {
		BeforeEach(func() {
			scene.Kind = mesh.Cube
			scene.Params.Side = 2
		})

		It("yields six quads", func() {
			frame := r.Render(scene)
			Expect(frame.Polygons).To(HaveLen(6))
			for _, p := range frame.Polygons {
				Expect(p.Points).To(HaveLen(4))
			}
		})

		It("draws the back face first and the front face last", func() {
			frame := r.Render(scene)
			Expect(frame.Polygons[0].Depth).To(BeNumerically("~", 1, 1e-9))
			Expect(frame.Polygons[5].Depth).To(BeNumerically("~", -1, 1e-9))
		})

		It("lights the face toward the viewer more than the back face", func() {
			frame := r.Render(scene)
			Expect(frame.Polygons[5].Intensity).To(BeNumerically(">", frame.Polygons[0].Intensity))
		})

		It("draws the front face larger than the back face", func() {
			frame := r.Render(scene)
			Expect(area(frame.Polygons[5].Points)).To(BeNumerically(">", area(frame.Polygons[0].Points)))
		})
	})

	It("keeps every intensity within bounds", func() {
		for _, k := range mesh.Kinds() {
			scene.Kind = k
			scene.Rotation = geom.Rotation{X: 12, Y: 200, Z: 77}
			for _, p := range r.Render(scene).Polygons {
				Expect(p.Intensity).To(And(BeNumerically(">=", 0.2), BeNumerically("<=", 1.0)))
			}
		}
	})

	It("does not drop degenerate faces", func() {
		scene.Kind = mesh.Sphere
		frame := r.Render(scene)
		ambient := 0
		for _, p := range frame.Polygons {
			if p.Intensity == render.AmbientIntensity {
				ambient++
			}
		}
		Expect(frame.Polygons).To(HaveLen(192))
		Expect(ambient).To(BeNumerically(">=", mesh.SphereSegments))
	})

	It("adds a grid only when asked", func() {
		scene.Kind = mesh.Cone
		Expect(r.Render(scene).Grid).To(BeEmpty())
		scene.GridSpacing = 20
		Expect(r.Render(scene).Grid).NotTo(BeEmpty())
	})

	It("renders the same frame for the same input", func() {
		scene.Kind = mesh.Torus
		scene.Rotation = geom.Rotation{X: 20, Y: 40}
		a, b := r.Render(scene), r.Render(scene)
		Expect(a).To(Equal(b))
	})

	Context("driven by a drag", func() {
		It("turns 100px of horizontal drag into 50 degrees of yaw", func() {
			rot := motion.ApplyDrag(geom.Rotation{}, 100, 0)
			Expect(rot.Y).To(BeNumerically("~", 50, 1e-12))
			Expect(rot.X).To(BeZero())

			scene.Kind = mesh.Cube
			scene.Rotation = rot
			frame := r.Render(scene)
			Expect(frame.Polygons).To(HaveLen(6))
		})
	})
})

func area(pts []geom.Point2D) float64 {
	s := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		s += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(s) / 2
}
