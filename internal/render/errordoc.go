// README: Error and fallback documents; these renderers never fail.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"tripquote/internal/modules/quotation"
)

const rawOutputLimit = 1000

var errorTitles = map[quotation.EnvelopeType]string{
	quotation.TypeConfigurationError: "Configuration Problem",
	quotation.TypeHTTPError:          "Provider Request Failed",
	quotation.TypeOutputParsingError: "Model Output Could Not Be Parsed",
	quotation.TypeJSONParsingError:   "Quotation Data Could Not Be Decoded",
	quotation.TypeProviderAPIError:   "Provider Reported An Error",
	quotation.TypeUpstreamError:      "An Earlier Step Failed",
	quotation.TypeGenericError:       "Quotation Generation Failed",
	quotation.TypeSystemError:        "Unexpected System Error",
}

// RenderError produces a document describing a pipeline failure. It always
// returns usable PDF bytes.
func (r *Renderer) RenderError(env *quotation.Envelope) []byte {
	d := r.newDoc()
	pdf := d.pdf
	pdf.AddPage()

	title := errorTitles[env.Type]
	if title == "" {
		title = errorTitles[quotation.TypeGenericError]
	}

	pdf.SetFont(d.family, "B", 16)
	pdf.SetTextColor(160, 30, 30)
	pdf.MultiCell(d.contentWidth(), 9, d.text(d.icons.Bang+" "+title), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	pdf.SetFont(d.family, "", 11)
	pdf.MultiCell(d.contentWidth(), 6, d.text(env.Message), "", "L", false)
	pdf.Ln(2)

	if env.StatusCode != 0 {
		pdf.SetFont(d.family, "B", 10)
		pdf.MultiCell(d.contentWidth(), 6, "Status code: "+strconv.Itoa(env.StatusCode), "", "L", false)
	}
	if env.Details != "" {
		pdf.SetFont(d.family, "", 10)
		pdf.MultiCell(d.contentWidth(), 6, d.text(env.Details), "", "L", false)
		pdf.Ln(2)
	}
	if env.RawOutput != "" {
		raw := env.RawOutput
		if len(raw) > rawOutputLimit {
			raw = raw[:rawOutputLimit] + "..."
		}
		pdf.SetFont(d.family, "B", 10)
		pdf.MultiCell(d.contentWidth(), 6, "Raw model output:", "", "L", false)
		pdf.SetFont("Courier", "", 8.5)
		pdf.SetTextColor(70, 70, 70)
		pdf.MultiCell(d.contentWidth(), 4.5, sanitizeASCII(raw), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fallbackPDF(env.Message)
	}
	return buf.Bytes()
}

// RenderCritical produces a bare one-line document for failures that happen
// outside the normal error path, rendering included.
func (r *Renderer) RenderCritical(message string) []byte {
	d := r.newDoc()
	pdf := d.pdf
	pdf.AddPage()

	pdf.SetFont(d.family, "B", 16)
	pdf.SetTextColor(160, 30, 30)
	pdf.MultiCell(d.contentWidth(), 9, d.text("Unexpected System Error"), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
	pdf.SetFont(d.family, "", 11)
	pdf.MultiCell(d.contentWidth(), 6, d.text(message), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fallbackPDF(message)
	}
	return buf.Bytes()
}

// sanitizeASCII keeps raw payload dumps within the core font's range.
func sanitizeASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 32 && r < 127:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// fallbackPDF hand-assembles a minimal single-page document. Last line of
// defense when the PDF library itself errors out.
func fallbackPDF(message string) []byte {
	msg := sanitizeASCII(message)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	msg = strings.NewReplacer(
		`\`, `\\`, "(", `\(`, ")", `\)`, "\n", " ", "\t", " ",
	).Replace(msg)
	stream := "BT /F1 12 Tf 40 760 Td (Quotation generation failed) Tj 0 -20 Td (" + msg + ") Tj ET"

	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, b.Len())
		b.WriteString(body)
	}
	writeObj("1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n")
	writeObj("2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n")
	writeObj("3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >> endobj\n")
	writeObj("4 0 obj << /Length " + strconv.Itoa(len(stream)) + " >> stream\n" + stream + "\nendstream endobj\n")
	writeObj("5 0 obj << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> endobj\n")

	xrefAt := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	b.WriteString("trailer << /Size 6 /Root 1 0 R >>\nstartxref\n" + strconv.Itoa(xrefAt) + "\n%%EOF\n")
	return b.Bytes()
}
