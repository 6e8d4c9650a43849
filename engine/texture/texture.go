// Package texture loads the image maps a planet carries as opaque handles.
package texture

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-planet/common"
)

// Texture is a decoded RGBA image.
type Texture struct {
	// Name is the file name without directory or extension.
	Name string
	// Width is the image width in pixels.
	Width uint32
	// Height is the image height in pixels.
	Height uint32
	// Pixels holds Width*Height*4 bytes of RGBA data, row-major.
	Pixels []byte
}

// StagingData returns the texture in the form the renderer uploads.
func (t *Texture) StagingData() common.TextureStagingData {
	return common.TextureStagingData{Pixels: t.Pixels, Width: t.Width, Height: t.Height}
}

// Load decodes the given PNG or JPEG files concurrently.
// Results are returned in the same order as paths. An empty path yields a nil texture.
//
// Parameters:
//   - paths: image files to decode
//
// Returns:
//   - []*Texture: one entry per path
//   - error: the first decode failure, wrapped with its path
func Load(paths ...string) ([]*Texture, error) {
	textures := make([]*Texture, len(paths))
	errs := make([]error, len(paths))
	if len(paths) == 0 {
		return textures, nil
	}

	pool := worker.NewDynamicWorkerPool(min(len(paths), runtime.NumCPU()), len(paths)+1, 1*time.Second)

	var wg sync.WaitGroup
	for i, path := range paths {
		if path == "" {
			continue
		}

		wg.Add(1)
		id, p := i, path
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				tex, err := decode(p)
				if err != nil {
					errs[id] = fmt.Errorf("failed to load texture %s: %w", p, err)
					return nil, errs[id]
				}
				textures[id] = tex
				return tex, nil
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return textures, nil
}

func decode(path string) (*Texture, error) {
	src := &common.ImageSource{Path: path}
	pixels, w, h, err := src.Decode()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.Printf("[Texture] loaded %s (%dx%d)", name, w, h)
	return &Texture{Name: name, Width: w, Height: h, Pixels: pixels}, nil
}
