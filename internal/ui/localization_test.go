package ui

import (
	"strings"
	"testing"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_FormatVerbsMatch(t *testing.T) {
	l := NewLocalization()

	for _, key := range []string{KeyStatusTransferring, KeyETASeconds, KeyStatusError} {
		expected := strings.Count(l.texts["en"][key], "%")
		for lang, texts := range l.texts {
			if got := strings.Count(texts[key], "%"); got != expected {
				t.Errorf("%s/%s has %d format verbs, expected %d", lang, key, got, expected)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("pt")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected pt, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyDownload); got != "Baixar" {
		t.Errorf("Expected Baixar, got %s", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language to stay pt, got %s", l.GetCurrentLanguage())
	}

	// System resolves to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected en for system, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_SummaryLabels(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	labels := l.SummaryLabels()
	if labels.Title != "Название" || labels.Unknown != "Неизвестно" {
		t.Errorf("unexpected labels: %+v", labels)
	}
}
