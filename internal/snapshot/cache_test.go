package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testSnapshot writes a white PNG with a black bar across the top rows and
// returns its path.
func testSnapshot(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y < height/4 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "snapshot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create snapshot: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	return path
}

func TestCacheLoad(t *testing.T) {
	path := testSnapshot(t, 40, 20)
	cache := NewCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("bounds: got %dx%d, want 40x20", b.Dx(), b.Dy())
	}

	// Second load is served from memory: deleting the file must not matter.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove snapshot: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load after file removal: %v", err)
	}
}

func TestCacheLoad_MissingFile(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for a missing snapshot")
	}
}

func TestCacheEvict(t *testing.T) {
	path := testSnapshot(t, 10, 10)
	cache := NewCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove snapshot: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("evicted entry must hit the filesystem again")
	}

	// Evicting an unknown path is harmless.
	cache.Evict("never-loaded.png")
}

func TestCacheClear(t *testing.T) {
	path := testSnapshot(t, 10, 10)
	cache := NewCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	cache.Clear()
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove snapshot: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("cleared cache must hit the filesystem again")
	}
}

func TestLoadInfo(t *testing.T) {
	path := testSnapshot(t, 64, 48)
	cache := NewCache()

	info, err := LoadInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadInfo: %v", err)
	}

	if info.Width != 64 || info.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}
