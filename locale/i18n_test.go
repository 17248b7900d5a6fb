package locale

import "testing"

func TestLoc(t *testing.T) {
	if err := Use("en"); err != nil {
		t.Fatal(err)
	}
	if got := Loc("script_loaded", Strmap{"Path": "a.js"}); got != "Loaded script a.js" {
		t.Fatalf("unexpected %q", got)
	}
	if err := Use("ja"); err != nil {
		t.Fatal(err)
	}
	if got := Loc("exiting", nil); got != "終了します" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Loc("no_such_message", nil); got != "failed to translate! no_such_message" {
		t.Fatalf("unexpected %q", got)
	}
	if err := Use("fr"); err == nil {
		t.Fatal("expected missing language error")
	}
}
