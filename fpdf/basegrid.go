package fpdf

import (
	"fmt"
	"math"
	"github.com/jung-kurt/gofpdf"
)

// BaseGrid maps (x,y) values onto a rectangle of the PDF page. For maps, x is the
// projected longitude and y the latitude.
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// The portion of PDF page space the grid is drawn over (labels go outside of this)
	OffsetU     float64 // top-left corner, in PDF coords (mm)
	OffsetV     float64
	W,H         float64 // width and height of the grid, in PDF units (mm)

	// The range of values that should be scaled onto the grid. Origin is bottom-left.
	MinX,MinY,MaxX,MaxY float64
	Clip                bool    // whether Line should skip segments that leave the grid

	NoGridlines                    bool
	XGridlineEvery, YGridlineEvery float64 // From Min[XY] to Max[XY]; zero means none
	XTick,          YTick          func(float64) string // Tick labels; nil for none

	LineColor []int // rgb, each [0,255] - tick labels
}

// {{{ bg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	return u, xRatio<0 || xRatio>1
}

func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H)) // PDF's v runs down the page
	return v, yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// Scale converts a distance in grid x units into mm.
func (bg BaseGrid)Scale(dx float64) float64 { return dx * bg.W / (bg.MaxX - bg.MinX) }

// }}}
// {{{ bg.MoveBy, MaybeSet{Draw|Text}Color

func (bg BaseGrid)MoveBy(x,y float64) {
	currX,currY := bg.GetXY()
	bg.Fpdf.SetXY(currX+x, currY+y)
}

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

func (bg BaseGrid)MaybeSetTextColor() {
	if len(bg.LineColor) == 3 {
		bg.SetTextColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}
// {{{ bg.MoveTo, LineTo, Line, Circle

// Coords are in gridspace (x,y); the grid transforms them into PDFspace.
func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

// Only draw the line if both points are inside bounds (or we're not clipping).
func (bg BaseGrid)Line(x1,y1,x2,y2 float64) {
	u1,v1,oob1 := bg.UV(x1,y1)
	u2,v2,oob2 := bg.UV(x2,y2)

	if !bg.Clip || (!oob1 && !oob2) {
		bg.Fpdf.MoveTo(u1,v1)
		bg.Fpdf.LineTo(u2,v2)
	}

	bg.DrawPath("D")
}

// Circle has a gridspace centre and a radius in mm; false if the centre is off the grid.
func (bg BaseGrid)Circle(x,y,rMM float64, style string) bool {
	u,v,oob := bg.UV(x,y)
	if bg.Clip && oob { return false }
	bg.Fpdf.Circle(u, v, rMM, style)
	return !oob
}

// }}}

// {{{ bg.DrawGridlines

// Gridlines sit on multiples of their spacing, starting from the first one inside the grid.
func firstGridline(min, every float64) float64 { return math.Ceil(min/every) * every }

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 6)

	bg.SetLineWidth(0.05)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)

	if bg.XGridlineEvery > 0 {
		for x := firstGridline(bg.MinX, bg.XGridlineEvery); x <= bg.MaxX; x += bg.XGridlineEvery {
			if !bg.NoGridlines {
				bg.MoveTo(x, bg.MinY)
				bg.LineTo(x, bg.MaxY)
				bg.DrawPath("D")
			}
			if bg.XTick != nil {
				u,v,_ := bg.UV(x, bg.MinY)
				bg.SetXY(u-4, v+1)
				bg.MaybeSetTextColor()
				bg.CellFormat(8, 3, bg.XTick(x), "", 0, "C", false, 0, "")
			}
		}
	}

	if bg.YGridlineEvery > 0 {
		for y := firstGridline(bg.MinY, bg.YGridlineEvery); y <= bg.MaxY; y += bg.YGridlineEvery {
			if !bg.NoGridlines {
				bg.MoveTo(bg.MinX, y)
				bg.LineTo(bg.MaxX, y)
				bg.DrawPath("D")
			}
			if bg.YTick != nil {
				u,v,_ := bg.UV(bg.MinX, y)
				bg.SetXY(u-11, v-1.5)
				bg.MaybeSetTextColor()
				bg.CellFormat(10, 3, bg.YTick(y), "", 0, "R", false, 0, "")
			}
		}
	}
}

// }}}
// {{{ bg.DrawFrame

func (bg BaseGrid)DrawFrame() {
	bg.SetDrawColor(0x80, 0x80, 0x80)
	bg.SetLineWidth(0.3)
	bg.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// }}}

// LongitudeTick labels projected (0..360, or beyond) longitudes in the usual -180..180.
func LongitudeTick(x float64) string {
	for x > 180 { x -= 360 }
	for x < -180 { x += 360 }
	switch {
	case x > 0: return fmt.Sprintf("%.0fE", x)
	case x < 0: return fmt.Sprintf("%.0fW", -x)
	}
	return "0"
}

func LatitudeTick(y float64) string {
	switch {
	case y > 0: return fmt.Sprintf("%.0fN", y)
	case y < 0: return fmt.Sprintf("%.0fS", -y)
	}
	return "0"
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
