// Package common holds the plain data types, math helpers and key codes shared by the engine packages.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
type TextureStagingData struct {
	// Pixels is the RGBA pixel data, 4 bytes per pixel.
	Pixels []byte
	// Width is the texture width in pixels.
	Width uint32
	// Height is the texture height in pixels.
	Height uint32
}

// Empty reports whether there is no pixel data to upload.
func (d TextureStagingData) Empty() bool {
	return len(d.Pixels) == 0 || d.Width == 0 || d.Height == 0
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero fields are replaced with linear filtering and repeat addressing.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode outside the [0, 1] range.
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp clamp the sampled mip level.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level.
	MaxAnisotropy uint16
}

// ImageSource is an encoded PNG or JPEG image, either held in memory or stored on disk.
type ImageSource struct {
	// Path is the file to read when Data is empty.
	Path string

	// Data contains the encoded image bytes.
	Data []byte

	// Width is the image width in pixels (populated after Decode).
	Width int

	// Height is the image height in pixels (populated after Decode).
	Height int
}

// Decode decodes the image to raw RGBA pixel data.
// Uses the in-memory Data bytes when present, otherwise loads from Path.
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - uint32: width in pixels
//   - uint32: height in pixels
//   - error: error if decoding fails
func (s *ImageSource) Decode() ([]byte, uint32, uint32, error) {
	if s == nil {
		return nil, 0, 0, fmt.Errorf("image source is nil")
	}

	var img image.Image
	var err error

	switch {
	case len(s.Data) > 0:
		img, _, err = image.Decode(bytes.NewReader(s.Data))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode image data: %w", err)
		}
	case s.Path != "":
		file, fileErr := os.Open(s.Path)
		if fileErr != nil {
			return nil, 0, 0, fmt.Errorf("failed to open image file %s: %w", s.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode image file %s: %w", s.Path, err)
		}
	default:
		return nil, 0, 0, fmt.Errorf("image source has neither data nor path")
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	s.Width = bounds.Dx()
	s.Height = bounds.Dy()

	return rgba.Pix, uint32(s.Width), uint32(s.Height), nil
}
