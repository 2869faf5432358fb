// Package localization resolves UI strings from embedded TOML catalogs.
package localization

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message IDs.
const (
	ListTitle    = "ListTitle"
	EmptyCase    = "EmptyCase"
	Loading      = "Loading"
	LoadFailed   = "LoadFailed"
	HeroNotFound = "HeroNotFound"
	AvengerLabel = "AvengerLabel"
	Avengers     = "Avengers"
	Others       = "Others"
	Total        = "Total"
	HeroSingular = "HeroSingular"
	HeroPlural   = "HeroPlural"
	HelpOpen     = "HelpOpen"
	HelpReload   = "HelpReload"
	HelpBack     = "HelpBack"
	PrintTip     = "PrintTip"
)

type Localizer struct {
	loc *i18n.Localizer
}

// New builds a localizer for lang, falling back to English for unknown
// languages and missing messages.
func New(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", f, err)
		}
	}
	return &Localizer{loc: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// MustNew is New that panics. Catalogs are embedded, so failure is a build bug.
func MustNew(lang string) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// T returns the message for id. Unknown ids come back unchanged.
func (l *Localizer) T(id string) string {
	return l.Tf(id, nil)
}

// Tf renders the message for id with template data.
func (l *Localizer) Tf(id string, data map[string]any) string {
	s, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}
