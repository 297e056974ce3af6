package entity

import (
	"github.com/pkg/errors"
)

// Language is a supported page locale.
type Language int

const (
	LanguageEN Language = iota
	LanguageNL
	LanguageDE
	LanguageFR

	languageCount
)

// LanguageProfile carries the per-locale strings used for slugs and copy.
// Templates use text/template syntax with .Device, .Location and .Price.
type LanguageProfile struct {
	Code                string
	BuybackService      string
	RepairService       string
	TitleTemplate       string
	DescriptionTemplate string
	UnpricedTitle       string
	UnpricedDescription string
}

var languageProfiles = [languageCount]LanguageProfile{
	LanguageEN: {
		Code:                "en",
		BuybackService:      "sell",
		RepairService:       "repair",
		TitleTemplate:       "Sell your {{.Device}} in {{.Location}} | up to €{{.Price}}",
		DescriptionTemplate: "Get up to €{{.Price}} for your {{.Device}}. Free shipping, payment within 48 hours, or repair it at our {{.Location}} store.",
		UnpricedTitle:       "Sell or repair your {{.Device}} in {{.Location}}",
		UnpricedDescription: "Request a personal quote for your {{.Device}} at our {{.Location}} store.",
	},
	LanguageNL: {
		Code:                "nl",
		BuybackService:      "verkopen",
		RepairService:       "reparatie",
		TitleTemplate:       "Verkoop je {{.Device}} in {{.Location}} | tot €{{.Price}}",
		DescriptionTemplate: "Ontvang tot €{{.Price}} voor je {{.Device}}. Gratis verzending, uitbetaling binnen 48 uur, of laat hem repareren in onze winkel in {{.Location}}.",
		UnpricedTitle:       "Verkoop of repareer je {{.Device}} in {{.Location}}",
		UnpricedDescription: "Vraag een persoonlijke offerte aan voor je {{.Device}} in onze winkel in {{.Location}}.",
	},
	LanguageDE: {
		Code:                "de",
		BuybackService:      "verkaufen",
		RepairService:       "reparatur",
		TitleTemplate:       "{{.Device}} verkaufen in {{.Location}} | bis zu €{{.Price}}",
		DescriptionTemplate: "Bis zu €{{.Price}} für dein {{.Device}}. Kostenloser Versand, Auszahlung innerhalb von 48 Stunden, oder Reparatur in unserem Geschäft in {{.Location}}.",
		UnpricedTitle:       "{{.Device}} verkaufen oder reparieren in {{.Location}}",
		UnpricedDescription: "Fordere ein persönliches Angebot für dein {{.Device}} in unserem Geschäft in {{.Location}} an.",
	},
	LanguageFR: {
		Code:                "fr",
		BuybackService:      "vendre",
		RepairService:       "reparation",
		TitleTemplate:       "Vendez votre {{.Device}} à {{.Location}} | jusqu'à {{.Price}} €",
		DescriptionTemplate: "Recevez jusqu'à {{.Price}} € pour votre {{.Device}}. Envoi gratuit, paiement sous 48 heures, ou réparation dans notre boutique de {{.Location}}.",
		UnpricedTitle:       "Vendez ou réparez votre {{.Device}} à {{.Location}}",
		UnpricedDescription: "Demandez un devis personnalisé pour votre {{.Device}} dans notre boutique de {{.Location}}.",
	},
}

// Languages returns every supported language in declaration order.
func Languages() []Language {
	out := make([]Language, 0, languageCount)
	for l := range languageCount {
		out = append(out, l)
	}

	return out
}

// Profile returns the locale strings for l.
func (l Language) Profile() LanguageProfile {
	if l < 0 || l >= languageCount {
		return languageProfiles[LanguageEN]
	}

	return languageProfiles[l]
}

// String returns the ISO 639-1 code.
func (l Language) String() string {
	return l.Profile().Code
}

// MarshalText lets Language be used as a JSON object key.
func (l Language) MarshalText() ([]byte, error) {
	if l < 0 || l >= languageCount {
		return nil, errors.Errorf("unknown language %d", int(l))
	}

	return []byte(languageProfiles[l].Code), nil
}

// UnmarshalText parses an ISO 639-1 code.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, ok := ParseLanguage(string(text))
	if !ok {
		return errors.Errorf("unsupported language %q", string(text))
	}
	*l = parsed

	return nil
}

// ParseLanguage maps a code such as "nl" to its Language.
func ParseLanguage(code string) (Language, bool) {
	for l := range languageCount {
		if languageProfiles[l].Code == code {
			return l, true
		}
	}

	return LanguageEN, false
}
