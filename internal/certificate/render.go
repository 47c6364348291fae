// Package certificate renders the completion certificate awarded for
// finishing all quiz levels.
package certificate

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/unicode/norm"
)

// ErrNameRequired is returned when no recipient name is given.
var ErrNameRequired = errors.New("certificate name is required")

const (
	width  = 800
	height = 600
)

// Details carries the recipient data printed on the certificate.
type Details struct {
	Name string
	Job  string
	Date time.Time
}

// Renderer draws certificates. FontPath optionally points at a TTF file;
// without one the built-in bitmap face is used.
type Renderer struct {
	FontPath string
}

// Render draws the certificate as a PNG.
func (r *Renderer) Render(w io.Writer, d Details) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}

	dc := gg.NewContext(width, height)

	grad := gg.NewLinearGradient(0, 0, width, height)
	grad.AddColorStop(0, color.RGBA{R: 0x1e, G: 0x3a, B: 0x5f, A: 0xff})
	grad.AddColorStop(1, color.RGBA{R: 0x0d, G: 0x21, B: 0x37, A: 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, width, height)
	dc.Fill()

	// Double gold border.
	dc.SetHexColor("#d4af37")
	dc.SetLineWidth(8)
	dc.DrawRectangle(20, 20, 760, 560)
	dc.Stroke()
	dc.SetHexColor("#f4d03f")
	dc.SetLineWidth(4)
	dc.DrawRectangle(30, 30, 740, 540)
	dc.Stroke()

	dc.SetHexColor("#f4d03f")
	r.setFace(dc, 36)
	dc.DrawStringAnchored("KSSM ENGLISH CURRICULUM HUB", width/2, 80, 0.5, 0.5)

	dc.SetHexColor("#ffffff")
	r.setFace(dc, 28)
	dc.DrawStringAnchored("Certificate of Achievement", width/2, 130, 0.5, 0.5)

	dc.SetHexColor("#d4af37")
	dc.SetLineWidth(2)
	dc.DrawLine(200, 150, 600, 150)
	dc.Stroke()

	dc.SetHexColor("#ffffff")
	r.setFace(dc, 20)
	dc.DrawStringAnchored("This is to certify that", width/2, 190, 0.5, 0.5)

	dc.SetHexColor("#f4d03f")
	r.setFace(dc, 42)
	dc.DrawStringAnchored(d.Name, width/2, 250, 0.5, 0.5)

	if d.Job != "" {
		dc.SetHexColor("#cccccc")
		r.setFace(dc, 18)
		dc.DrawStringAnchored(d.Job, width/2, 280, 0.5, 0.5)
	}

	dc.SetHexColor("#ffffff")
	r.setFace(dc, 18)
	dc.DrawStringAnchored("has successfully completed all 10 levels of the", width/2, 320, 0.5, 0.5)
	dc.DrawStringAnchored("KSSM English Curriculum Mastery Challenge", width/2, 345, 0.5, 0.5)
	dc.DrawStringAnchored("demonstrating comprehensive knowledge of:", width/2, 370, 0.5, 0.5)

	dc.SetHexColor("#d4af37")
	r.setFace(dc, 16)
	mastered := []string{
		"Content Standards, Learning Standards & Performance Standards",
		"Listening, Speaking, Reading & Writing Skills",
		"Literature in Action & 21st Century Skills",
		"Cross-Curricular Elements & HOTS",
	}
	for i, line := range mastered {
		dc.DrawStringAnchored("• "+line, width/2, float64(405+i*22), 0.5, 0.5)
	}

	dc.SetHexColor("#cccccc")
	r.setFace(dc, 16)
	dc.DrawStringAnchored("Date: "+d.Date.Format("2 January 2006"), width/2, 510, 0.5, 0.5)

	dc.SetHexColor("#ffffff")
	dc.SetLineWidth(1)
	dc.DrawLine(300, 540, 500, 540)
	dc.Stroke()
	r.setFace(dc, 14)
	dc.DrawStringAnchored("KSSM English Hub", width/2, 560, 0.5, 0.5)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding certificate: %w", err)
	}
	return nil
}

// setFace applies the configured font at the given size. The fallback
// bitmap face has a fixed size, so sizing only applies with a FontPath.
func (r *Renderer) setFace(dc *gg.Context, size float64) {
	if r.FontPath != "" {
		if err := dc.LoadFontFace(r.FontPath, size); err == nil {
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// Filename builds the download filename for a recipient: the name is
// normalized (NFKC) and runs of whitespace become single hyphens.
func Filename(name string) string {
	normalized := norm.NFKC.String(name)
	return "KSSM-Certificate-" + strings.Join(strings.Fields(normalized), "-") + ".png"
}
