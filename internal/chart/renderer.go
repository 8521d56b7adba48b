// Package chart draws the insights dashboard as a 2x2 grid of bar charts.
package chart

import (
	"bytes"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
)

const noData = "No Data"

var (
	skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	orange  = color.RGBA{R: 255, G: 165, A: 255}
	green   = color.RGBA{G: 128, A: 255}
	purple  = color.RGBA{R: 128, B: 128, A: 255}
)

// Series is one panel's data, already in display order.
type Series struct {
	Title  string
	XLabel string
	YLabel string
	Color  color.Color
	Labels []string
	Values []float64
}

type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 14 * vg.Inch, Height: 8 * vg.Inch}
}

// Render returns the dashboard as PNG bytes.
func (r *Renderer) Render(report dto.InsightsReport) ([]byte, error) {
	panels := Panels(report)

	const rows, cols = 2, 2
	plots := make([][]*plot.Plot, rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, cols)
		for i := range plots[j] {
			p, err := buildPlot(panels[j*cols+i])
			if err != nil {
				return nil, err
			}
			plots[j][i] = p
		}
	}

	img := vgimg.New(r.Width, r.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 3,
		PadLeft:   vg.Millimeter * 3,
		PadRight:  vg.Millimeter * 3,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Panels lays the report out in grid order: monthly trend, payment mode,
// transaction type, top merchants.
func Panels(report dto.InsightsReport) []Series {
	monthly := Series{Title: "Monthly Spending Trend", XLabel: "Month", YLabel: "Net Amount (AED)", Color: skyBlue}
	for _, m := range report.MonthlySpendTrend {
		monthly.Labels = append(monthly.Labels, m.Month)
		monthly.Values = append(monthly.Values, m.Total)
	}

	merchants := Series{Title: "Top Spending Merchants", YLabel: "Amount (AED)", Color: purple}
	for _, m := range report.TopMerchants {
		merchants.Labels = append(merchants.Labels, m.Merchant)
		merchants.Values = append(merchants.Values, m.Total)
	}

	return []Series{
		monthly,
		fromGroups("Spending by Payment Mode", orange, report.SpendByPaymentMode),
		fromGroups("Transaction Type Breakdown", green, report.TransactionTypeBreakdown),
		merchants,
	}
}

func fromGroups(title string, c color.Color, groups map[string]float64) Series {
	s := Series{Title: title, YLabel: "Amount (AED)", Color: c}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Labels = append(s.Labels, k)
		s.Values = append(s.Values, groups[k])
	}
	return s
}

func buildPlot(s Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title

	if len(s.Values) == 0 {
		return emptyPlot(p)
	}

	bars, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(18))
	if err != nil {
		return nil, err
	}
	bars.Color = s.Color
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(s.Labels...)

	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}

func emptyPlot(p *plot.Plot) (*plot.Plot, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.5, Y: 0.5}},
		Labels: []string{noData},
	})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.HideAxes()
	return p, nil
}
