// Package locale holds the translated diagnostic messages attached to
// colormap errors.
//
// Messages are keyed by the stable error code and resolved through a
// golang.org/x/text message catalog, so a caller can pick the language of
// the human-readable text without affecting error identity.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Error codes. These are the catalog keys.
const (
	CodeNullOrMissingInput = "NullOrMissingInput"
	CodeInvalidLength      = "InvalidLength"
	CodeOutOfRange         = "OutOfRange"
	CodeUnsupportedFormat  = "UnsupportedFormat"
	CodeSyntax             = "Syntax"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		CodeNullOrMissingInput: "required input is missing or empty",
		CodeInvalidLength:      "input has an invalid length",
		CodeOutOfRange:         "value is outside its valid range",
		CodeUnsupportedFormat:  "pixel format is not supported",
		CodeSyntax:             "color key is malformed",
	},
	language.German: {
		CodeNullOrMissingInput: "erforderliche Eingabe fehlt oder ist leer",
		CodeInvalidLength:      "Eingabe hat eine ungültige Länge",
		CodeOutOfRange:         "Wert liegt außerhalb des gültigen Bereichs",
		CodeUnsupportedFormat:  "Pixelformat wird nicht unterstützt",
		CodeSyntax:             "Farbschlüssel ist fehlerhaft",
	},
	language.French: {
		CodeNullOrMissingInput: "une entrée requise est absente ou vide",
		CodeInvalidLength:      "l'entrée a une longueur invalide",
		CodeOutOfRange:         "la valeur est hors de son domaine valide",
		CodeUnsupportedFormat:  "format de pixel non pris en charge",
		CodeSyntax:             "clé de couleur mal formée",
	},
}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for code, text := range msgs {
			if err := b.SetString(tag, code, text); err != nil {
				panic("locale: " + err.Error())
			}
		}
	}
	return b
}

// Messages resolves error codes to text in one language.
type Messages struct {
	printer *message.Printer
}

// New returns the messages for tag. Unsupported languages fall back to English.
func New(tag language.Tag) *Messages {
	return &Messages{printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// Default is the English message set.
var Default = New(language.English)

// Message returns the translated text for code.
// Unknown codes are returned unchanged.
func (m *Messages) Message(code string) string {
	return m.printer.Sprintf(code)
}

// Languages lists the languages with translations.
func Languages() []language.Tag {
	return cat.Languages()
}
