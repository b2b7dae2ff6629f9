package preview

import (
	"fmt"
	"image/color"

	"github.com/Faultbox/kaczka/internal/engine/water"
	"github.com/Faultbox/kaczka/internal/sim"
	"github.com/Faultbox/kaczka/pkg/math"
)

// duckPixel maps a world position to the cell drawn for it.
func duckPixel(f *water.HeightField, world math.Vec3) (x, y int, ok bool) {
	u, v, ok := f.TextureCoords(world)
	if !ok {
		return 0, 0, false
	}
	x = min(int(u*float32(f.Width())), f.Width()-1)
	y = min(int(v*float32(f.Height())), f.Height()-1)
	return x, y, true
}

// drawMarker fills a square of the given radius around (cx, cy) in an RGBA
// buffer, clipped to w x h.
func drawMarker(pix []byte, w, h, cx, cy, radius int, c color.RGBA) {
	for y := max(0, cy-radius); y <= min(h-1, cy+radius); y++ {
		for x := max(0, cx-radius); x <= min(w-1, cx+radius); x++ {
			i := 4 * (y*w + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

func debugText(f sim.Frame, drops uint64, tps float64) string {
	return fmt.Sprintf("tick %d  t %.3f  drops %d  tps %.0f", f.Tick, f.Parameter, drops, tps)
}
