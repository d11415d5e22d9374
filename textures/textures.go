// Package textures resolves image sources to textures. Loading either yields
// a present texture or an absent one (nil); the reason for a failure is
// logged but never surfaces, so callers handle exactly one negative outcome.
package textures

import (
	"context"
	"image"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/easelkit/easel"

	// decoders for the common web image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader resolves image sources. The zero value is ready to use.
type Loader struct {
	// Client is used for http(s) sources; nil means http.DefaultClient.
	Client *http.Client
}

// DefaultLoader is used by the package-level Load and LoadAll.
var DefaultLoader = &Loader{}

// Load resolves src with the DefaultLoader.
func Load(ctx context.Context, src string) *easel.Texture {
	return DefaultLoader.Load(ctx, src)
}

// LoadAll resolves srcs with the DefaultLoader.
func LoadAll(ctx context.Context, srcs ...string) []*easel.Texture {
	return DefaultLoader.LoadAll(ctx, srcs...)
}

// Load resolves a single source: an http(s) URL or a local file path. It
// returns nil when the source cannot be fetched or decoded.
func (l *Loader) Load(ctx context.Context, src string) *easel.Texture {
	img := l.decode(ctx, src)
	if img == nil {
		return nil
	}
	return easel.FromImage(img)
}

// LoadAll resolves all sources concurrently, preserving order. Sources that
// fail resolve to nil entries.
func (l *Loader) LoadAll(ctx context.Context, srcs ...string) []*easel.Texture {
	textures := make([]*easel.Texture, len(srcs))
	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			textures[i] = l.Load(ctx, src)
		}(i, src)
	}
	wg.Wait()
	return textures
}

func (l *Loader) decode(ctx context.Context, src string) image.Image {
	log := easel.Logger()
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			log.Warn("texture: bad url", "src", src, "err", err)
			return nil
		}
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Do(req)
		if err != nil {
			log.Warn("texture: fetch failed", "src", src, "err", err)
			return nil
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			log.Warn("texture: fetch failed", "src", src, "status", resp.Status)
			return nil
		}
		img, format, err := image.Decode(resp.Body)
		if err != nil {
			log.Warn("texture: decode failed", "src", src, "err", err)
			return nil
		}
		log.Debug("texture: loaded", "src", src, "format", format)
		return img
	}

	f, err := os.Open(src)
	if err != nil {
		log.Warn("texture: open failed", "src", src, "err", err)
		return nil
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		log.Warn("texture: decode failed", "src", src, "err", err)
		return nil
	}
	log.Debug("texture: loaded", "src", src, "format", format)
	return img
}
