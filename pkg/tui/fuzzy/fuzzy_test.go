// ABOUTME: Tests for the fuzzy matching wrapper
// ABOUTME: Verifies ranking, case folding, dedupe and the result cap

package fuzzy

import "testing"

func TestFind_BasicMatch(t *testing.T) {
	t.Parallel()

	matches := Find("app", []string{"apple", "application", "banana", "apricot"})
	if len(matches) == 0 {
		t.Fatal("expected matches for 'app'")
	}
	for _, m := range matches {
		if m.Str == "banana" {
			t.Error("banana should not match 'app'")
		}
	}
}

func TestFind_EmptyPattern(t *testing.T) {
	t.Parallel()

	if got := Find("  ", []string{"a", "b"}); got != nil {
		t.Errorf("Find(blank) = %v; want nil", got)
	}
}

func TestTop(t *testing.T) {
	t.Parallel()

	items := []string{"Deploy.sh", "deploy_old.sh", "notes.md", "Deploy.sh", "dep.py"}
	got := Top("deploy", items, 2)
	if len(got) != 2 {
		t.Fatalf("Top = %q; want 2 results", got)
	}
	if got[0] != "Deploy.sh" {
		t.Errorf("best = %q; want Deploy.sh", got[0])
	}
	if got[1] == got[0] {
		t.Errorf("duplicate suggestion %q", got[1])
	}
	if got := Top("zzz", items, 3); len(got) != 0 {
		t.Errorf("Top(zzz) = %q; want none", got)
	}
}
