// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n renders message keys (error codes and success messages) into
// user-facing text. Translations live in embedded YAML files under locales/.
package i18n

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init loads every embedded locale and sets the default language.
func Init(lang string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang)
	mu.Unlock()
}

func ensure() {
	mu.RLock()
	ready := bundle != nil
	mu.RUnlock()
	if !ready {
		Init("en")
	}
}

// T translates a message id using the default language. Unknown ids are
// returned unchanged.
func T(messageID string) string {
	ensure()
	mu.RLock()
	l := localizer
	mu.RUnlock()
	return localize(l, messageID)
}

// TFor translates a message id for the given language preferences, such as
// the raw value of an Accept-Language header. Falls back to English.
func TFor(messageID string, langs ...string) string {
	ensure()
	mu.RLock()
	b := bundle
	mu.RUnlock()
	return localize(i18n.NewLocalizer(b, langs...), messageID)
}

func localize(l *i18n.Localizer, messageID string) string {
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil || msg == "" {
		return messageID
	}
	return msg
}

// HasMessage reports whether the English catalog defines messageID.
func HasMessage(messageID string) bool {
	ensure()
	mu.RLock()
	b := bundle
	mu.RUnlock()
	_, err := i18n.NewLocalizer(b, "en").Localize(&i18n.LocalizeConfig{MessageID: messageID})
	return err == nil
}

// SetLang changes the default language.
func SetLang(lang string) {
	Init(lang)
}

// Languages returns the tags of all loaded catalogs.
func Languages() []language.Tag {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return bundle.LanguageTags()
}
