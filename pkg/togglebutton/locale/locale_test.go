package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestTextPreferredLanguage(t *testing.T) {
	tests := []struct {
		langs []string
		id    string
		want  string
	}{
		{langs: nil, id: MessageOptionProjects, want: "Projects"},
		{langs: []string{"de"}, id: MessageOptionProjects, want: "Projekte"},
		{langs: []string{"de-AT"}, id: MessageOptionUpcoming, want: "Anstehend"},
		{langs: []string{"es"}, id: MessageOptionUpcoming, want: "Próximos"},
		{langs: []string{"fr"}, id: MessageTitle, want: "Toggle Button"},
		{langs: []string{"fr", "de"}, id: MessageTitle, want: "Umschaltknopf"},
		{langs: []string{""}, id: MessageOptionProjects, want: "Projects"},
	}
	for _, tt := range tests {
		tr, err := New(tt.langs...)
		if err != nil {
			t.Fatalf("New(%v): %v", tt.langs, err)
		}
		if got := tr.Text(tt.id); got != tt.want {
			t.Errorf("New(%v).Text(%s) = %q, want %q", tt.langs, tt.id, got, tt.want)
		}
	}
}

func TestTextOrUnknownMessage(t *testing.T) {
	tr, err := New("de")
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.TextOr("Nope", "fallback"); got != "fallback" {
		t.Errorf("TextOr = %q, want fallback", got)
	}
	if got := tr.Text("Nope"); got != "Nope" {
		t.Errorf("Text = %q, want the id", got)
	}
}

func TestNewRejectsMalformedLocale(t *testing.T) {
	if _, err := New("not a locale!"); err == nil {
		t.Error("expected an error for a malformed locale")
	}
}

func TestLanguages(t *testing.T) {
	tr, err := New()
	if err != nil {
		t.Fatal(err)
	}
	have := map[language.Tag]bool{}
	for _, tag := range tr.Languages() {
		have[tag] = true
	}
	for _, want := range []language.Tag{language.English, language.German, language.Spanish} {
		if !have[want] {
			t.Errorf("missing %v in %v", want, tr.Languages())
		}
	}
}
