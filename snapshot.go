package movable

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"
)

// Snapshot paints the view state over an area sized canvas. The content is
// drawn at its visual position: translated by (X, Y) and scaled around its center.
// When src is nil the content is painted as a plain tile, otherwise src is
// resized to the scaled content box.
func Snapshot(s ViewState, area, content Box, src image.Image) (*image.NRGBA, error) {
	if area.Empty() {
		return nil, errors.New("cannot snapshot an empty area")
	}
	canvas := imaging.New(int(math.Round(area.Width)), int(math.Round(area.Height)), colornames.Whitesmoke)

	w := int(math.Round(content.Width * s.ScaleValue))
	h := int(math.Round(content.Height * s.ScaleValue))
	if w <= 0 || h <= 0 {
		return canvas, nil
	}

	var tile *image.NRGBA
	if src != nil {
		tile = imaging.Resize(src, w, h, imaging.Lanczos)
	} else {
		tile = imaging.New(w, h, colornames.Steelblue)
	}
	diffX, diffY := Diff(content, s.ScaleValue)
	pos := image.Pt(int(math.Round(s.X-diffX)), int(math.Round(s.Y-diffY)))

	return imaging.Paste(canvas, tile, pos), nil
}

// LoadContent opens the image used as snapshot content.
func LoadContent(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content image: %w", err)
	}
	return img, nil
}

// SaveSnapshot encodes img into path. The format is deduced from the extension.
func SaveSnapshot(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
