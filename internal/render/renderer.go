// README: PDF rendering of structured quotations; four sections plus error pages.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"tripquote/internal/modules/quotation"
)

// iconSet holds the glyph prefix for each labeled line. Which set is used
// depends on whether the unicode fonts loaded.
type iconSet struct {
	Dest, Dur, Date, Meal, Veh, Room string
	OK, Arrow, X, Bang               string
	Tel, Co, Link, Pkg, Star         string
}

var unicodeIcons = iconSet{
	Dest: "✈", Dur: "⏱", Date: "☷", Meal: "☕", Veh: "⛟", Room: "⌂",
	OK: "✓", Arrow: "➤", X: "✗", Bang: "⚠",
	Tel: "☎", Co: "⌂", Link: "♁", Pkg: "✉", Star: "★",
}

var asciiIcons = iconSet{
	Dest: "[Dest]", Dur: "[Dur]", Date: "[Date]", Meal: "[Meal]", Veh: "[Veh]", Room: "[Room]",
	OK: "[OK]", Arrow: ">", X: "[X]", Bang: "[!]",
	Tel: "[Tel]", Co: "[Co]", Link: "[Link]", Pkg: "[Pkg]", Star: "*",
}

// Renderer builds quotation PDFs. Safe for concurrent use; each call
// creates its own document.
type Renderer struct {
	assets Assets
	log    *zap.Logger
}

func NewRenderer(assetsDir string, log *zap.Logger) *Renderer {
	return &Renderer{assets: Assets{Dir: assetsDir}, log: log}
}

type doc struct {
	pdf     *fpdf.Fpdf
	unicode bool
	family  string
	icons   iconSet
	assets  Assets
}

func (r *Renderer) newDoc() *doc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)

	d := &doc{pdf: pdf, assets: r.assets}
	if r.assets.HasUnicodeFonts() {
		pdf.AddUTF8Font("DejaVu", "", r.assets.FontRegular())
		pdf.AddUTF8Font("DejaVu", "B", r.assets.FontBold())
		pdf.AddUTF8Font("DejaVu", "I", r.assets.FontOblique())
		if !pdf.Err() {
			d.unicode = true
		}
	}
	if d.unicode {
		d.family = "DejaVu"
		d.icons = unicodeIcons
	} else {
		// Core fonts only cover latin-1; text gets sanitized and
		// icons fall back to bracketed ASCII tags.
		d.family = "Helvetica"
		d.icons = asciiIcons
		pdf.ClearError()
	}
	return d
}

var latin1Replacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
	"…", "...",
	"₹", "Rs. ",
	" ", " ",
)

// text makes s printable with the active font.
func (d *doc) text(s string) string {
	if d.unicode {
		return s
	}
	s = latin1Replacer.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0xFF {
			b.WriteRune('?')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (d *doc) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return w - left - right
}

// Render produces the full quotation document.
func (r *Renderer) Render(q *quotation.Structured) ([]byte, error) {
	d := r.newDoc()
	d.headerSection(q)
	d.itinerarySection(q)
	d.costSection(q)
	d.legalSection(q)

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	if r.log != nil {
		r.log.Debug("quotation rendered", zap.Int("pages", d.pdf.PageCount()), zap.Int("bytes", buf.Len()))
	}
	return buf.Bytes(), nil
}

func (d *doc) headerSection(q *quotation.Structured) {
	pdf := d.pdf
	pdf.AddPage()

	if banner, ok := d.assets.Banner(); ok {
		pdf.ImageOptions(banner, 10, 8, d.contentWidth(), 0, false, fpdf.ImageOptions{}, 0, "")
		pdf.SetY(42)
	}
	if logo, ok := d.assets.Logo(); ok {
		w, _ := pdf.GetPageSize()
		pdf.ImageOptions(logo, w-48, pdf.GetY(), 38, 0, false, fpdf.ImageOptions{}, 0, "")
	}

	pdf.SetFont(d.family, "B", 18)
	pdf.SetTextColor(20, 60, 120)
	pdf.MultiCell(d.contentWidth(), 9, d.text(q.QuotationTitle), "", "C", false)
	pdf.Ln(2)

	pdf.SetFont(d.family, "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(d.contentWidth(), 6, d.text("Dear "+q.ClientName+","), "", "L", false)
	pdf.MultiCell(d.contentWidth(), 6, d.text("Thank you for your enquiry. Please find below your personalized travel quotation."), "", "L", false)
	pdf.Ln(3)

	d.labeledLine(d.icons.Dest, "Destination", q.DestinationSummary)
	d.labeledLine(d.icons.Dur, "Duration", q.DurationSummary)
	d.labeledLine(d.icons.Date, "Travel Dates", q.DatesSummary)
	d.labeledLine(d.icons.Meal, "Meal Plan", q.MealPlanSummary)
	d.labeledLine(d.icons.Room, "Rooms", q.RoomConfigurationSummary)
	d.labeledLine(d.icons.Veh, "Transport", q.VehicleSummary)
	pdf.Ln(2)

	if q.MainImagePlaceholderText != "" {
		pdf.SetFont(d.family, "I", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(d.contentWidth(), 6, d.text(q.MainImagePlaceholderText), "", "C", false)
		pdf.SetTextColor(0, 0, 0)
	}
}

func (d *doc) labeledLine(icon, label, value string) {
	if value == "" {
		return
	}
	pdf := d.pdf
	pdf.SetFont(d.family, "B", 11)
	line := fmt.Sprintf("%s %s: ", icon, label)
	pdf.CellFormat(52, 7, d.text(line), "", 0, "L", false, 0, "")
	pdf.SetFont(d.family, "", 11)
	pdf.MultiCell(d.contentWidth()-52, 7, d.text(value), "", "L", false)
}

func (d *doc) itinerarySection(q *quotation.Structured) {
	pdf := d.pdf
	pdf.AddPage()

	pdf.SetFont(d.family, "B", 15)
	pdf.SetTextColor(20, 60, 120)
	pdf.MultiCell(d.contentWidth(), 8, d.text(q.ItineraryTitle), "", "C", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	if len(q.HotelDetails) > 0 {
		d.hotelTable(q.HotelDetails)
		pdf.Ln(4)
	}

	for _, day := range q.DetailedItinerary {
		pdf.SetFont(d.family, "B", 12)
		pdf.SetFillColor(235, 240, 250)
		heading := day.DayNumber
		if day.Title != "" {
			heading += ": " + day.Title
		}
		pdf.MultiCell(d.contentWidth(), 8, d.text(heading), "", "L", true)
		pdf.SetFont(d.family, "", 10.5)
		pdf.MultiCell(d.contentWidth(), 6, d.text(day.Description), "", "L", false)
		pdf.Ln(2)
	}
}

func (d *doc) hotelTable(hotels []quotation.HotelDetail) {
	pdf := d.pdf
	cw := d.contentWidth()
	colLoc, colNights := cw*0.28, cw*0.14
	colHotel := cw - colLoc - colNights

	pdf.SetFont(d.family, "B", 10.5)
	pdf.SetFillColor(20, 60, 120)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colLoc, 8, d.text("Location"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colHotel, 8, d.text("Hotel"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colNights, 8, d.text("Nights"), "1", 1, "C", true, 0, "")

	pdf.SetFont(d.family, "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, h := range hotels {
		pdf.CellFormat(colLoc, 8, d.text(h.DestinationLocation), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colHotel, 8, d.text(h.HotelName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colNights, 8, d.text(h.Nights), "1", 1, "C", false, 0, "")
	}
}

func (d *doc) costSection(q *quotation.Structured) {
	pdf := d.pdf
	pdf.AddPage()

	d.sectionTitle(d.icons.Pkg + " Package Cost")
	pdf.SetFont(d.family, "", 11)
	d.labeledLine(d.icons.Arrow, "Cost Per Head", joinCurrency(q.Currency, q.CostPerHead))
	d.labeledLine(d.icons.Arrow, "Total Pax", q.TotalPaxForCost)
	d.labeledLine(d.icons.Arrow, "Total Package Cost", joinCurrency(q.Currency, q.TotalPackageCost))
	pdf.Ln(2)

	if q.GSTNote != "" {
		d.callout(d.icons.Bang + " " + q.GSTNote)
		pdf.Ln(2)
	}

	if len(q.Inclusions) > 0 {
		d.sectionTitle("Inclusions")
		d.bulletList(d.icons.OK, q.Inclusions)
		pdf.Ln(2)
	}
	if len(q.Exclusions) > 0 {
		d.sectionTitle("Exclusions")
		d.bulletList(d.icons.X, q.Exclusions)
		pdf.Ln(2)
	}

	// Repeated after the exclusions so it is visible next to them too.
	if q.GSTNote != "" {
		d.callout(d.icons.Bang + " " + q.GSTNote)
	}
	if q.TCSNoteShort != "" {
		pdf.SetFont(d.family, "I", 10)
		pdf.MultiCell(d.contentWidth(), 6, d.text(q.TCSNoteShort), "", "L", false)
	}
}

func (d *doc) legalSection(q *quotation.Structured) {
	pdf := d.pdf
	_, pageH := pdf.GetPageSize()
	if pdf.GetY() > pageH-120 {
		pdf.AddPage()
	} else {
		pdf.Ln(6)
	}

	if len(q.ImportantNotes) > 0 {
		d.sectionTitle(d.icons.Bang + " Important Notes")
		d.bulletList(d.icons.Arrow, q.ImportantNotes)
		pdf.Ln(2)
	}
	if len(q.StandardExclusionsList) > 0 {
		d.sectionTitle("Standard Exclusions")
		d.bulletList(d.icons.X, q.StandardExclusionsList)
		pdf.Ln(2)
	}
	if q.TCSRulesFull != "" {
		pdf.SetFont(d.family, "", 8.5)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(d.contentWidth(), 4.5, d.text(q.TCSRulesFull), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	d.contactBlock(q)

	if logo, ok := d.assets.Logo(); ok {
		pdf.Ln(4)
		w, _ := pdf.GetPageSize()
		pdf.ImageOptions(logo, (w-40)/2, pdf.GetY(), 40, 0, false, fpdf.ImageOptions{}, 0, "")
	}
}

func (d *doc) contactBlock(q *quotation.Structured) {
	pdf := d.pdf
	d.sectionTitle(d.icons.Co + " Contact Us")
	pdf.SetFont(d.family, "", 11)

	if q.CompanyContactPerson != "" {
		pdf.MultiCell(d.contentWidth(), 6, d.text(q.CompanyContactPerson), "", "L", false)
	}
	if q.CompanyPhone != "" {
		tel := "tel:" + strings.NewReplacer(" ", "", "-", "").Replace(q.CompanyPhone)
		wa := "https://wa.me/" + strings.NewReplacer("+", "", "-", "", " ", "").Replace(q.CompanyPhone)
		pdf.SetTextColor(20, 60, 160)
		pdf.CellFormat(60, 6, d.text(d.icons.Tel+" "+q.CompanyPhone), "", 0, "L", false, 0, tel)
		pdf.CellFormat(60, 6, d.text("WhatsApp"), "", 1, "L", false, 0, wa)
		pdf.SetTextColor(0, 0, 0)
	}
	if q.CompanyEmail != "" {
		pdf.SetTextColor(20, 60, 160)
		pdf.CellFormat(d.contentWidth(), 6, d.text(q.CompanyEmail), "", 1, "L", false, 0, "mailto:"+q.CompanyEmail)
		pdf.SetTextColor(0, 0, 0)
	}
	if q.CompanyWebsite != "" {
		site := q.CompanyWebsite
		if !strings.HasPrefix(site, "http") {
			site = "https://" + site
		}
		pdf.SetTextColor(20, 60, 160)
		pdf.CellFormat(d.contentWidth(), 6, d.text(d.icons.Link+" "+q.CompanyWebsite), "", 1, "L", false, 0, site)
		pdf.SetTextColor(0, 0, 0)
	}
}

func (d *doc) sectionTitle(title string) {
	pdf := d.pdf
	pdf.SetFont(d.family, "B", 13)
	pdf.SetTextColor(20, 60, 120)
	pdf.MultiCell(d.contentWidth(), 8, d.text(title), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
}

func (d *doc) bulletList(bullet string, items []string) {
	pdf := d.pdf
	pdf.SetFont(d.family, "", 10.5)
	for _, item := range items {
		pdf.MultiCell(d.contentWidth(), 6, d.text(bullet+" "+item), "", "L", false)
	}
}

func (d *doc) callout(text string) {
	pdf := d.pdf
	pdf.SetFont(d.family, "B", 10.5)
	pdf.SetFillColor(255, 243, 205)
	pdf.MultiCell(d.contentWidth(), 7, d.text(text), "", "L", true)
}

func joinCurrency(currency, amount string) string {
	if amount == "" {
		return ""
	}
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}
