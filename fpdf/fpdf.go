// Package fpdf renders the route map as a PDF: arcs for flights, sized markers for airports.
package fpdf

import(
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	"github.com/lucasb-eyer/go-colorful"
	pgeo "github.com/paulmach/go.geo"
	"github.com/skypies/geo"

	fpc "github.com/netbeen/flight-path-chronicle"
	"github.com/netbeen/flight-path-chronicle/curve"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

// The map box is A4 landscape, from NW(15,18) to SE(282,188)
var(
	MapOffsetU = 15.0
	MapOffsetV = 18.0
	MapWidth = 267.0
	MapHeight = 170.0

	// The whole pannable world. Pacific-centred, so projected longitudes run past 360.
	WorldArea = geo.LatlongBox{SW:geo.Latlong{Lat:-90, Long:-20}, NE:geo.Latlong{Lat:90, Long:380}}
	DefaultCenter = geo.Latlong{Lat:35, Long:105}
	DefaultSpanDeg = 60.0 // latitude span when there is nothing to fit

	FitPaddingDeg = 5.0
	MarkerScale = 0.35    // mm per unit of fpc.MarkerRadius

	MarkerQuietColor = "#fde68a"
	MarkerBusyColor = "#d97706"
	FallbackColor = "#9ca3af"
)

// }}}

type RouteMap struct {
	Title    string
	Area     geo.LatlongBox // zero value fits the map to the routes drawn
	Segments int            // per arc; zero for curve.DefaultSegments
	NoLabels bool           // airport codes
}

// {{{ hexToRGB

func hexToRGB(hex string) (int, int, int) {
	c,err := colorful.Hex(hex)
	if err != nil { c,_ = colorful.Hex(FallbackColor) }
	r,g,b := c.RGB255()
	return int(r), int(g), int(b)
}

// markerRGB shades busier airports darker.
func markerRGB(activity, maxActivity int) (int, int, int) {
	quiet,_ := colorful.Hex(MarkerQuietColor)
	busy,_ := colorful.Hex(MarkerBusyColor)
	t := 1.0
	if maxActivity > 1 { t = float64(activity-1) / float64(maxActivity-1) }
	r,g,b := quiet.BlendLab(busy, t).Clamped().RGB255()
	return int(r), int(g), int(b)
}

// }}}
// {{{ FitArea

// FitArea pads the bound, grows it to the map box's aspect ratio (so a degree is the
// same size both ways), and keeps it inside WorldArea. A bound with no extent gets the
// default view.
func FitArea(b *pgeo.Bound) geo.LatlongBox {
	if b == nil || (b.Width() == 0 && b.Height() == 0) {
		halfLat := DefaultSpanDeg / 2
		halfLong := halfLat * MapWidth / MapHeight
		return clampArea(DefaultCenter.Lat-halfLat, DefaultCenter.Long-halfLong,
			DefaultCenter.Lat+halfLat, DefaultCenter.Long+halfLong)
	}

	w,e := b.West()-FitPaddingDeg, b.East()+FitPaddingDeg
	s,n := b.South()-FitPaddingDeg, b.North()+FitPaddingDeg

	aspect := MapWidth / MapHeight
	if (e-w) < (n-s)*aspect {
		cx, half := (w+e)/2, (n-s)*aspect/2
		w,e = cx-half, cx+half
	} else {
		cy, half := (s+n)/2, (e-w)/aspect/2
		s,n = cy-half, cy+half
	}

	return clampArea(s, w, n, e)
}

// clampArea slides the box back inside the world where it can, and trims it where it can't.
func clampArea(s, w, n, e float64) geo.LatlongBox {
	world := WorldArea
	if d := world.SW.Long - w; d > 0 { w, e = w+d, e+d }
	if d := e - world.NE.Long; d > 0 { w, e = w-d, e-d }
	if d := world.SW.Lat - s; d > 0 { s, n = s+d, n+d }
	if d := n - world.NE.Lat; d > 0 { s, n = s-d, n-d }

	w, e = math.Max(w, world.SW.Long), math.Min(e, world.NE.Long)
	s, n = math.Max(s, world.SW.Lat), math.Min(n, world.NE.Lat)

	return geo.LatlongBox{SW:geo.Latlong{Lat:s, Long:w}, NE:geo.Latlong{Lat:n, Long:e}}
}

// }}}
// {{{ NewMapGrid

func gridEvery(spanDeg float64) float64 {
	for _,every := range []float64{5, 10, 20, 30} {
		if spanDeg / every <= 12 { return every }
	}
	return 60
}

func NewMapGrid(pdf *gofpdf.Fpdf, area geo.LatlongBox) BaseGrid {
	bg := BaseGrid{
		Fpdf: pdf,
		OffsetU: MapOffsetU,
		OffsetV: MapOffsetV,
		W: MapWidth,
		H: MapHeight,
		MinX: area.SW.Long,
		MaxX: area.NE.Long,
		MinY: area.SW.Lat,
		MaxY: area.NE.Lat,
		Clip: true,
		XTick: LongitudeTick,
		YTick: LatitudeTick,
		LineColor: []int{0x60, 0x60, 0x60},
	}

	bg.XGridlineEvery = gridEvery(bg.MaxX - bg.MinX)
	bg.YGridlineEvery = gridEvery(bg.MaxY - bg.MinY)

	return bg
}

// }}}

// {{{ DrawRoutes

// DrawRoutes strokes every resolvable flight's arc in its direction colour, and returns
// how many it drew.
func DrawRoutes(bg BaseGrid, pfs []fpc.ProcessedFlight, idx fpc.AirportIndex, segments int) int {
	bg.ClipRect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, false)
	defer bg.ClipEnd()

	bg.SetLineWidth(0.35)
	drawn := 0
	for _,pf := range pfs {
		path,ok := curve.Arc(pf, idx, segments)
		if !ok { continue }

		r,g,b := hexToRGB(pf.Color)
		bg.SetDrawColor(r, g, b)
		for i:=0; i<path.Length(); i++ {
			p := path.GetAt(i)
			if i == 0 {
				bg.MoveTo(p.X(), p.Y())
			} else {
				bg.LineTo(p.X(), p.Y())
			}
		}
		bg.DrawPath("D")
		drawn++
	}
	return drawn
}

// }}}
// {{{ DrawAirports

// DrawAirports puts a marker on each airport with activity, sized by MarkerRadius.
// Returns how many markers landed on the map.
func DrawAirports(bg BaseGrid, idx fpc.AirportIndex, activity map[string]int, labels bool) int {
	maxActivity := 0
	for _,n := range activity {
		if n > maxActivity { maxActivity = n }
	}

	bg.SetFont("Arial", "B", 6)
	bg.SetLineWidth(0.2)
	bg.SetDrawColor(0x33, 0x33, 0x33)
	drawn := 0
	for _,code := range idx.Codes() {
		n := activity[code]
		if n <= 0 { continue }

		pos := idx[code].Projected()
		rMM := fpc.MarkerRadius(n) * MarkerScale
		r,g,b := markerRGB(n, maxActivity)
		bg.SetFillColor(r, g, b)
		if !bg.Circle(pos.Longitude, pos.Latitude, rMM, "FD") { continue }
		drawn++

		if labels {
			u,v,_ := bg.UV(pos.Longitude, pos.Latitude)
			bg.SetTextColor(0x20, 0x20, 0x20)
			bg.Text(u+rMM+0.5, v+1, code)
		}
	}
	return drawn
}

// }}}
// {{{ DrawLegend, DrawTitle

func DrawLegend(pdf *gofpdf.Fpdf, pfs []fpc.ProcessedFlight) {
	counts := map[fpc.Direction]int{}
	for _,pf := range pfs { counts[pf.Direction]++ }

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(0, 0, 0)
	x,y := MapOffsetU, MapOffsetV+MapHeight+8
	for _,d := range []fpc.Direction{fpc.Outgoing, fpc.Returning} {
		r,g,b := hexToRGB(d.Color())
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(1)
		pdf.Line(x, y+2, x+8, y+2)
		pdf.SetXY(x+10, y)
		pdf.Cell(40, 4, fmt.Sprintf("%s (%d)", d, counts[d]))
		x += 50
	}
}

func DrawTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(MapOffsetU, 6)
	pdf.Cell(200, 8, title)
}

// }}}

// {{{ NewRouteMapPdf

func NewRouteMapPdf() *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	return pdf
}

// }}}
// {{{ rm.Write

// Write renders the processed flights onto one page.
func (rm RouteMap)Write(output io.Writer, pfs []fpc.ProcessedFlight, idx fpc.AirportIndex, activity map[string]int) error {
	pdf := NewRouteMapPdf()

	area := rm.Area
	if area.SW.IsNil() && area.NE.IsNil() {
		visited := []fpc.Airport{}
		for _,code := range idx.Codes() {
			if activity[code] > 0 { visited = append(visited, idx[code]) }
		}
		area = FitArea(curve.Bounds(curve.Arcs(pfs, idx, rm.Segments), visited))
	}

	bg := NewMapGrid(pdf, area)
	bg.DrawGridlines()
	bg.DrawFrame()
	DrawRoutes(bg, pfs, idx, rm.Segments)
	DrawAirports(bg, idx, activity, !rm.NoLabels)
	DrawLegend(pdf, pfs)

	title := rm.Title
	if title == "" { title = fmt.Sprintf("%d flights", len(pfs)) }
	DrawTitle(pdf, title)

	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
