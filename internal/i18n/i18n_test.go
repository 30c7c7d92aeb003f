package i18n

import (
	"testing"

	"github.com/mentorlink/mentorlink/internal/apperrors"
)

func TestT_KnownAndUnknown(t *testing.T) {
	Init("en")
	if got := T("TASK_DOES_NOT_EXIST"); got != "Task does not exist." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Fatalf("unknown ids should be returned unchanged, got %q", got)
	}
}

func TestTFor_AcceptLanguage(t *testing.T) {
	Init("en")
	if got := TFor("TASK_DOES_NOT_EXIST", "de-DE,de;q=0.9,en;q=0.8"); got != "Die Aufgabe existiert nicht." {
		t.Fatalf("expected German translation, got %q", got)
	}
	if got := TFor("TASK_DOES_NOT_EXIST", "fr"); got != "Task does not exist." {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestSetLang(t *testing.T) {
	SetLang("de")
	defer SetLang("en")
	if got := T("USER_DOES_NOT_EXIST"); got != "Benutzer existiert nicht." {
		t.Fatalf("expected German default, got %q", got)
	}
}

func TestCatalogCoversEveryErrorCode(t *testing.T) {
	Init("en")
	for _, c := range apperrors.Codes() {
		if !HasMessage(c.MessageID()) {
			t.Errorf("missing English message for %s", c)
		}
		if got := TFor(c.MessageID(), "de"); got == c.MessageID() {
			t.Errorf("missing German message for %s", c)
		}
	}
}

func TestLanguages(t *testing.T) {
	Init("en")
	if n := len(Languages()); n < 2 {
		t.Fatalf("expected at least two catalogs, got %d", n)
	}
}
