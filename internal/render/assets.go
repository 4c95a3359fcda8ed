// README: Locates optional fonts and images used by the PDF renderer.
package render

import (
	"os"
	"path/filepath"
)

const (
	fontRegular = "DejaVuSansCondensed.ttf"
	fontBold    = "DejaVuSansCondensed-Bold.ttf"
	fontOblique = "DejaVuSansCondensed-Oblique.ttf"

	bannerImage = "top_banner.png"
	logoImage   = "tripexplore-logo-with-rating.png"
)

// Assets resolves renderer asset paths under a single directory. Every
// asset is optional; the renderer degrades when one is missing.
type Assets struct {
	Dir string
}

func (a Assets) path(name string) string {
	return filepath.Join(a.Dir, name)
}

func (a Assets) has(name string) bool {
	info, err := os.Stat(a.path(name))
	return err == nil && !info.IsDir()
}

// HasUnicodeFonts reports whether the full DejaVu family is present. All
// three faces are required; a partial set falls back to the core font.
func (a Assets) HasUnicodeFonts() bool {
	return a.has(fontRegular) && a.has(fontBold) && a.has(fontOblique)
}

func (a Assets) FontRegular() string { return a.path(fontRegular) }
func (a Assets) FontBold() string    { return a.path(fontBold) }
func (a Assets) FontOblique() string { return a.path(fontOblique) }

func (a Assets) Banner() (string, bool) { return a.path(bannerImage), a.has(bannerImage) }
func (a Assets) Logo() (string, bool)   { return a.path(logoImage), a.has(logoImage) }
