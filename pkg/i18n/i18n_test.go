package i18n_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestTranslationsPerLocale(t *testing.T) {
	en := i18n.T("en", "form.message.success")
	tr := i18n.T("tr", "form.message.success")
	require.NotEmpty(t, en)
	require.NotEmpty(t, tr)
	assert.NotEqual(t, en, tr)
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", i18n.T("en", "no.such.key"))
}

func TestUnknownLocaleFallsBackToDefault(t *testing.T) {
	assert.Equal(t, i18n.T("tr", "form.message.error"), i18n.T("fr", "form.message.error"))
}

func TestMatchLocale(t *testing.T) {
	cases := []struct {
		accept string
		want   string
	}{
		{"tr", "tr"},
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"tr-TR,tr;q=0.9,en;q=0.5", "tr"},
		{"de-DE", "tr"},
		{"", "tr"},
		{"garbage;;;", "tr"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, i18n.MatchLocale(tc.accept), tc.accept)
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, i18n.IsSupported("tr"))
	assert.True(t, i18n.IsSupported("EN"))
	assert.False(t, i18n.IsSupported("fr"))
	assert.False(t, i18n.IsSupported(""))
}
