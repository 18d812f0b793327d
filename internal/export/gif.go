package export

import (
	"errors"
	"image"
	"image/color"
	colorpalette "image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/san-kum/polyview/internal/render"
)

var ErrNoFrames = errors.New("export: no frames to encode")

// GIFOptions control animated output.
type GIFOptions struct {
	// Delay between frames in hundredths of a second.
	Delay int
	// Caption is drawn on every frame when set.
	Caption string
}

// DelayForFPS converts a frame rate to a GIF delay, at least 2.
func DelayForFPS(fps int) int {
	if fps <= 0 {
		return 2
	}
	return max(100/fps, 2)
}

// WriteGIF rasterizes frames and encodes them as a looping animation.
func WriteGIF(w io.Writer, frames []render.Frame, opts GIFOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if opts.Delay <= 0 {
		opts.Delay = 2
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		rgba := Rasterize(frame)
		DrawLabel(rgba, opts.Caption, color.White)

		img := image.NewPaletted(rgba.Bounds(), colorpalette.Plan9)
		draw.Draw(img, img.Bounds(), rgba, image.Point{}, draw.Src)

		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
