// README: Optional PDF-to-DOCX conversion hook.
package docx

// Converter turns a rendered PDF into a DOCX document. A nil return means
// the conversion failed or is unsupported for this input; callers treat
// that as "DOCX unavailable", never as a fatal error.
type Converter interface {
	Convert(pdf []byte) []byte
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(pdf []byte) []byte

func (f ConverterFunc) Convert(pdf []byte) []byte { return f(pdf) }
