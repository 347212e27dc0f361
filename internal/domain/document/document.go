// Package document arranges a priced quotation into the ordered sections of
// the printable record: header (firm identity + addressee), item table and
// footer terms. It is a straight-line composition with no rendering
// dependency; every literal string, field order and number format here is
// part of the contract because the output is a customer-facing financial
// document.
package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/internal/domain/pricing"
)

// minAssetBytes gates the optional logo/watermark images: anything at or
// below this size is treated as absent and a placeholder marker is shown.
const minAssetBytes = 100

// Title printed centered above the addressee block.
const Title = "QUOTATION"

// LogoPlaceholder is drawn when no usable logo asset was supplied.
const LogoPlaceholder = "[LOGO]"

// Assets holds the optional image payloads for the rendered document.
type Assets struct {
	Logo      []byte
	Watermark []byte
}

// HasLogo reports whether the logo asset passes the presence gate.
func (a Assets) HasLogo() bool { return len(a.Logo) > minAssetBytes }

// HasWatermark reports whether the watermark asset passes the presence gate.
func (a Assets) HasWatermark() bool { return len(a.Watermark) > minAssetBytes }

// Header is the firm identity block, title and addressee block.
type Header struct {
	FirmName     string
	FirmSubtitle string
	FirmAddress  []string // non-empty address lines plus the GSTIN line, in order
	HasLogo      bool

	Title string

	ToLabel   string // "To,"
	ToName    string
	ToAddress string

	AttentionLabel string // "Kind Attention: "
	Attention      string // "Mr. NAME (+91 98765 43210)"

	DateLine string // "Date: 02/01/2006", right-aligned
	RefLabel string // "Ref. # ", right-aligned with RefNumber
	RefNumber string

	IntroLines []string
}

// Table is the item table: one row per priced line in input order, monetary
// cells formatted to exactly 2 decimals, plus the rounded grand-total footer.
type Table struct {
	Head      []string
	Rows      [][]string
	FootLabel string
	FootTotal string
}

// Footer carries the fixed notes, the term-dependent conditions, bank details
// and the closing signature block.
type Footer struct {
	NoteLabel string
	Notes     []string

	TermsTitle string
	Terms      []string

	BankTitle string
	BankLines []string

	RegardsLines []string
}

// Document is the full ordered section sequence ready for rendering.
type Document struct {
	Watermark bool
	Header    Header
	Table     Table
	Footer    Footer
}

// Input collects everything the assembler needs. Lines must already be in
// quotation row order; GrandTotal is the unrounded accumulation.
type Input struct {
	Firm           entity.FirmProfile
	Customer       entity.Customer
	Lines          []pricing.PricedLine
	GrandTotal     decimal.Decimal
	RefNumber      string
	Date           time.Time
	PaymentTerms   string
	Transportation string
	Assets         Assets
}

// FormatPhone renders a 10-digit phone as "+91 98765 43210".
func FormatPhone(p string) string {
	if len(p) <= 5 {
		return "+91 " + p
	}
	return "+91 " + p[:5] + " " + p[5:]
}

// Assemble builds the ordered document sections. Pure apart from reading the
// supplied clock value; the only branches are the two binary term selections
// and the two asset presence gates.
func Assemble(in Input) Document {
	return Document{
		Watermark: in.Assets.HasWatermark(),
		Header:    assembleHeader(in),
		Table:     assembleTable(in),
		Footer:    assembleFooter(in),
	}
}

func assembleHeader(in Input) Header {
	firmAddress := make([]string, 0, 5)
	for _, line := range []string{
		in.Firm.Subtitle,
		in.Firm.AddressLine1,
		in.Firm.AddressLine2,
		in.Firm.AddressLine3,
		in.Firm.GSTIN,
	} {
		if line != "" {
			firmAddress = append(firmAddress, line)
		}
	}

	c := in.Customer
	toName := c.OrgName
	if toName == "" {
		toName = c.Name
	}

	attention := strings.TrimSpace(c.Salutation()+" "+c.Name) + " (" + FormatPhone(c.Phone) + ")"

	return Header{
		FirmName:     in.Firm.Name,
		FirmSubtitle: in.Firm.Subtitle,
		FirmAddress:  firmAddress,
		HasLogo:      in.Assets.HasLogo(),

		Title: Title,

		ToLabel:   "To,",
		ToName:    toName,
		ToAddress: c.AddressLine(),

		AttentionLabel: "Kind Attention: ",
		Attention:      attention,

		DateLine:  "Date: " + in.Date.Format("02/01/2006"),
		RefLabel:  "Ref. # ",
		RefNumber: in.RefNumber,

		IntroLines: []string{
			"We are pleased to provide our quotation for new tyre services.",
			"Kindly refer to the table below.",
		},
	}
}

func assembleTable(in Input) Table {
	rows := make([][]string, 0, len(in.Lines))
	for _, l := range in.Lines {
		rows = append(rows, []string{
			l.Description,
			l.BasicRate.StringFixed(2),
			strconv.Itoa(l.Quantity),
			l.Amount.StringFixed(2),
			l.GST.StringFixed(2),
			l.Total.StringFixed(2),
		})
	}

	return Table{
		Head:      []string{"ITEM", "BASIC", "QTY", "AMOUNT", "GST", "TOTAL"},
		Rows:      rows,
		FootLabel: "Grand Total:",
		FootTotal: pricing.RoundGrandTotal(in.GrandTotal).StringFixed(2),
	}
}

func assembleFooter(in Input) Footer {
	paymentTerm := "Credit; Within seven (7) days of material delivery."
	if in.PaymentTerms == entity.PaymentAdvance {
		paymentTerm = "Advance NEFT; before delivery."
	}
	transportTerm := "Free transportation of material to your site."
	if in.Transportation == entity.TransportEXW {
		transportTerm = "Transportation costs extra."
	}

	return Footer{
		NoteLabel: "Note:",
		Notes: []string{
			"1. The above products are perfectly suited to your utility, based on our understanding of your need.",
			"2. All the above products are under full manufacturer's warranty.",
		},

		TermsTitle: "Terms & Conditions",
		Terms: []string{
			"1. The above rates are indicative of all tax breakup.",
			"2. Quotation valid for 7 days from the date of receipt.",
			"3. Payment Terms: " + paymentTerm,
			"4. " + transportTerm,
		},

		BankTitle: "Our account details for your reference:",
		BankLines: []string{
			"Account Name: " + in.Firm.BankAccountName,
			"Bank: " + in.Firm.BankNameBranch,
			"A/c No.: " + in.Firm.BankAccountNumber,
			"IFSC: " + in.Firm.BankIFSC,
		},

		RegardsLines: []string{
			"Regards,",
			in.Firm.RegardsName,
			in.Firm.PhoneNumber,
		},
	}
}
