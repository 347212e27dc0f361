// Package pdf renders the assembled quotation document with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: logo │ firm name + address lines (centered)        │
//	│                       QUOTATION                              │
//	│  To, + addressee              │  Date + Ref. #               │
//	│  Kind Attention: ...                                         │
//	│  intro lines                                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: ITEM | BASIC | QTY | AMOUNT | GST | TOTAL            │
//	│  Grand Total row                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Note / Terms & Conditions / bank details / regards          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
	"github.com/belgaumtyres/quotation-api/internal/domain/document"
)

var _ quoting.DocumentRenderer = (*MarotoRenderer)(nil)

var (
	colorInk   = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed   = &props.Color{Red: 200, Green: 30, Blue: 30}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorHead  = &props.Color{Red: 40, Green: 60, Blue: 100}
)

// Table column spans (out of 12): ITEM, BASIC, QTY, AMOUNT, GST, TOTAL.
var tableSpans = []int{3, 2, 1, 2, 2, 2}

// MarotoRenderer implements the DocumentRenderer port with Maroto v2.
// watermarkPath is the on-disk watermark image used as the page background;
// Maroto takes background images by path, so the presence gate runs on the
// asset bytes while the path feeds the builder.
type MarotoRenderer struct {
	watermarkPath string
}

// NewMarotoRenderer builds the renderer.
func NewMarotoRenderer(watermarkPath string) *MarotoRenderer {
	return &MarotoRenderer{watermarkPath: watermarkPath}
}

// Render produces the printable PDF bytes for an assembled document.
func (r *MarotoRenderer) Render(doc document.Document, assets document.Assets) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(document.Title, true).
		WithAuthor(doc.Header.FirmName, true)

	if doc.Watermark && r.watermarkPath != "" {
		builder = builder.WithBackgroundImage(r.watermarkPath, extensionOfPath(r.watermarkPath))
	}

	m := maroto.New(builder.Build())

	m.AddRows(firmRow(doc.Header, assets))
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 0.5}))
	m.AddRows(titleRow(doc.Header))
	m.AddRows(addresseeRows(doc.Header)...)
	m.AddRows(introRows(doc.Header)...)

	m.AddRows(tableHeadRow(doc.Table))
	for _, tr := range tableBodyRows(doc.Table) {
		m.AddRows(tr)
	}
	m.AddRows(grandTotalRow(doc.Table))

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(doc.Footer)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return out.GetBytes(), nil
}

// firmRow: logo (or placeholder marker) left, firm identity centered.
func firmRow(h document.Header, assets document.Assets) core.Row {
	logoCol := col.New(2)
	if h.HasLogo {
		logoCol.Add(image.NewFromBytes(assets.Logo, sniffExtension(assets.Logo), props.Rect{
			Percent: 90,
			Center:  true,
		}))
	} else {
		logoCol.Add(text.New(document.LogoPlaceholder, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorRed, Top: 8,
		}))
	}

	identity := col.New(8)
	identity.Add(text.New(h.FirmName, props.Text{
		Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorInk, Top: 1,
	}))
	top := 8.0
	for _, lineText := range h.FirmAddress {
		identity.Add(text.New(lineText, props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: top,
		}))
		top += 4
	}

	return row.New(30).Add(logoCol, identity, col.New(2))
}

func titleRow(h document.Header) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(h.Title, props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorInk, Top: 2,
		}),
	))
}

// addresseeRows: "To," block left, date and reference number right.
func addresseeRows(h document.Header) []core.Row {
	return []core.Row{
		row.New(16).Add(
			col.New(7).Add(
				text.New(h.ToLabel, props.Text{Size: 9, Top: 1}),
				text.New(h.ToName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
				text.New(h.ToAddress, props.Text{Size: 8, Top: 11, Color: colorGray}),
			),
			col.New(5).Add(
				text.New(h.DateLine, props.Text{Size: 9, Align: align.Right, Top: 1}),
				text.New(h.RefLabel+h.RefNumber, props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 6,
				}),
			),
		),
		row.New(6).Add(col.New(12).Add(
			text.New(h.AttentionLabel+h.Attention, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
		)),
	}
}

func introRows(h document.Header) []core.Row {
	rows := make([]core.Row, 0, len(h.IntroLines))
	for _, l := range h.IntroLines {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 9, Top: 1}),
		)))
	}
	return rows
}

func tableHeadRow(t document.Table) core.Row {
	r := row.New(8).WithStyle(&props.Cell{BackgroundColor: colorHead})
	for i, label := range t.Head {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		r.Add(col.New(tableSpans[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite,
			Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableBodyRows(t document.Table) []core.Row {
	rows := make([]core.Row, 0, len(t.Rows))
	for _, cells := range t.Rows {
		r := row.New(7)
		for i, cell := range cells {
			a := align.Right
			if i == 0 {
				a = align.Left
			}
			r.Add(col.New(tableSpans[i]).Add(text.New(cell, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			})))
		}
		rows = append(rows, r)
	}
	return rows
}

func grandTotalRow(t document.Table) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New(t.FootLabel, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(t.FootTotal, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
		})),
	)
}

func footerRows(f document.Footer) []core.Row {
	rows := []core.Row{
		labelRow(f.NoteLabel),
	}
	rows = append(rows, textRows(f.Notes, colorGray)...)
	rows = append(rows, labelRow(f.TermsTitle))
	rows = append(rows, textRows(f.Terms, colorInk)...)
	rows = append(rows, labelRow(f.BankTitle))
	rows = append(rows, textRows(f.BankLines, colorGray)...)
	rows = append(rows, row.New(4))
	rows = append(rows, textRows(f.RegardsLines, colorInk)...)
	return rows
}

func labelRow(label string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1.5}),
	))
}

func textRows(lines []string, color *props.Color) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(4.5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Top: 0.5, Color: color}),
		)))
	}
	return rows
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// sniffExtension detects the image format of raw asset bytes.
func sniffExtension(data []byte) extension.Type {
	if bytes.HasPrefix(data, pngMagic) {
		return extension.Png
	}
	return extension.Jpg
}

func extensionOfPath(path string) extension.Type {
	if len(path) >= 4 && path[len(path)-4:] == ".png" {
		return extension.Png
	}
	return extension.Jpg
}
