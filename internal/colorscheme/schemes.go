package colorscheme

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tetrotime/internal/core"
	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

func init() {
	Register("random", "Random bright", newRandom)
	Register("rainbow", "Rainbow", newRainbow)
	Register("warm", "Warm", newWarm)
	Register("pastel", "Pastel", newPastel)
	Register("mono", "Monochrome", newMono)
	Register("classic", "Classic blocks", newClassic)
}

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776405

// classicPalette is the guideline piece palette: I O T S Z J L.
var classicPalette = []string{
	"#00f0f0", "#f0f000", "#a000f0", "#00f000", "#f00000", "#0000f0", "#f0a000",
}

func toCore(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}

// between returns a value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// hsvSource draws every color independently.
type hsvSource struct {
	rng *rand.Rand
	gen func(rng *rand.Rand) colorful.Color
}

func (s *hsvSource) Next() core.Color {
	return toCore(s.gen(s.rng))
}

func newRandom(rng *rand.Rand) tetromino.ColorSource {
	return &hsvSource{rng: rng, gen: func(rng *rand.Rand) colorful.Color {
		return colorful.Hsv(between(rng, 0, 360), between(rng, 0.6, 1), between(rng, 0.8, 1))
	}}
}

func newWarm(rng *rand.Rand) tetromino.ColorSource {
	return &hsvSource{rng: rng, gen: func(rng *rand.Rand) colorful.Color {
		// Reds through yellows
		h := math.Mod(between(rng, -30, 60)+360, 360)
		return colorful.Hsv(h, between(rng, 0.65, 0.95), between(rng, 0.85, 1))
	}}
}

func newPastel(rng *rand.Rand) tetromino.ColorSource {
	return &hsvSource{rng: rng, gen: func(rng *rand.Rand) colorful.Color {
		return colorful.Hsv(between(rng, 0, 360), between(rng, 0.2, 0.4), between(rng, 0.9, 1))
	}}
}

func newMono(rng *rand.Rand) tetromino.ColorSource {
	hue := between(rng, 0, 360)
	return &hsvSource{rng: rng, gen: func(rng *rand.Rand) colorful.Color {
		return colorful.Hsv(hue, 0.7, between(rng, 0.45, 1))
	}}
}

// rainbow walks the hue circle by the golden angle from a random start.
type rainbow struct {
	hue float64
}

func newRainbow(rng *rand.Rand) tetromino.ColorSource {
	return &rainbow{hue: between(rng, 0, 360)}
}

func (r *rainbow) Next() core.Color {
	c := colorful.Hsv(r.hue, 0.85, 1)
	r.hue = math.Mod(r.hue+goldenAngle, 360)
	return toCore(c)
}

// cycle repeats a fixed palette.
type cycle struct {
	colors []core.Color
	next   int
}

func newClassic(rng *rand.Rand) tetromino.ColorSource {
	colors := make([]core.Color, 0, len(classicPalette))
	for _, hex := range classicPalette {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic("colorscheme: bad palette entry " + hex)
		}
		colors = append(colors, toCore(c))
	}
	return &cycle{colors: colors, next: rng.Intn(len(colors))}
}

func (c *cycle) Next() core.Color {
	col := c.colors[c.next]
	c.next = (c.next + 1) % len(c.colors)
	return col
}
