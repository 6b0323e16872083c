package render_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spinglobe/internal/render"
	"github.com/san-kum/spinglobe/internal/texture"
)

var _ = Describe("Renderer", func() {
	var (
		m *texture.Map
		r *render.Renderer
	)

	BeforeEach(func() {
		var err error
		m, err = texture.Parse(strings.Repeat(strings.Repeat("#", 64)+"\n", 16))
		Expect(err).NotTo(HaveOccurred())
		r = render.New(texture.NewSampler(m, texture.SourceTexture))
	})

	Context("with a uniform 64x16 map", func() {
		DescribeTable("produces a 64x16 frame of '#' and blanks",
			func(rotation float64) {
				f := r.Render(rotation)
				Expect(f.Lines()).To(Equal(16))
				for _, row := range f.Rows {
					Expect([]rune(row)).To(HaveLen(64))
					Expect(strings.Trim(row, "# ")).To(BeEmpty())
				}
				Expect(f.String()).To(ContainSubstring("#"))
			},
			Entry("at rest", 0.0),
			Entry("after one step", math.Pi/90),
			Entry("a quarter turn", math.Pi/2),
			Entry("many turns", 123.456),
		)

		It("terminates every row with a line break", func() {
			f := r.Render(0)
			Expect(strings.Count(f.String(), "\n")).To(Equal(16))
			Expect(f.String()).To(HaveSuffix("\n"))
		})

		It("renders the same frame for the same rotation", func() {
			Expect(r.Render(1.1).Rows).To(Equal(r.Render(1.1).Rows))
		})
	})

	Context("with a map split into two hemispheres of longitude", func() {
		BeforeEach(func() {
			row := strings.Repeat("W", 32) + strings.Repeat("E", 32) + "\n"
			var err error
			m, err = texture.Parse(strings.Repeat(row, 16))
			Expect(err).NotTo(HaveOccurred())
			r = render.New(texture.NewSampler(m, texture.SourceTexture))
		})

		It("moves the surface as the rotation advances", func() {
			Expect(r.Render(0).Rows).NotTo(Equal(r.Render(math.Pi / 2).Rows))
		})

		It("repeats after a full turn", func() {
			Expect(r.Render(0.3).Rows).To(Equal(r.Render(0.3 + 2*math.Pi).Rows))
		})
	})

	Context("with procedural glyph sources", func() {
		It("draws only braille cells and blanks", func() {
			br := render.New(texture.NewSampler(m, texture.SourceBraille))
			for _, row := range br.Render(0.5).Rows {
				for _, g := range row {
					Expect(g == texture.Blank || texture.IsBraille(g)).To(BeTrue())
				}
			}
		})
	})
})
