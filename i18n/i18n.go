// Package i18n localizes mdtranslate's own diagnostic messages via gotext.
// Translations are embedded in the binary; with no matching locale, T is a
// passthrough.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the .po catalogs, one per language:
// locales/{lang}/LC_MESSAGES/mdtranslate.po
//
//go:embed all:locales
var locales embed.FS

const domain = "mdtranslate"

var locale *gotext.Locale

// Init loads the locale for the user's language. An empty lang auto-detects
// from LANGUAGE, LC_ALL, LC_MESSAGES, LANG, in GNU gettext order. Call once
// at startup.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}
	locale = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	locale.AddDomain(domain)
	locale.SetDomain(domain)
}

// T translates a message, returning it unchanged when no translation
// exists.
func T(msgid string) string {
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

// detectLanguage follows GNU gettext precedence for the message language.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			val = val[:idx]
		}
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
