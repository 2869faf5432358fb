package localization

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestEnglish(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Super Heroes", l.T(ListTitle))
	assert.Equal(t, `¯\_(ツ)_/¯`, l.T(EmptyCase))
	assert.Equal(t, "No super hero named Hulk", l.Tf(HeroNotFound, map[string]any{"Name": "Hulk"}))
}

func TestSpanish(t *testing.T) {
	l, err := New("es-ES")
	require.NoError(t, err)

	assert.Equal(t, "Superhéroes", l.T(ListTitle))
	assert.Equal(t, `¯\_(ツ)_/¯`, l.T(EmptyCase))
}

func TestFallbacks(t *testing.T) {
	l := MustNew("fr")
	assert.Equal(t, "Super Heroes", l.T(ListTitle))
	assert.Equal(t, "NoSuchMessage", l.T("NoSuchMessage"))
}

var messageIDs = []string{
	ListTitle, EmptyCase, Loading, LoadFailed, HeroNotFound, AvengerLabel,
	Avengers, Others, Total, HeroSingular, HeroPlural, HelpOpen, HelpReload,
	HelpBack, PrintTip,
}

func catalogIDs(t *testing.T, path string) []string {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	mf, err := bundle.LoadMessageFileFS(locales, path)
	require.NoError(t, err)

	ids := make([]string, 0, len(mf.Messages))
	for _, m := range mf.Messages {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, path := range []string{"locales/active.en.toml", "locales/active.es.toml"} {
		assert.ElementsMatch(t, messageIDs, catalogIDs(t, path), path)
	}
}
