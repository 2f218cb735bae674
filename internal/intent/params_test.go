// ABOUTME: Tests for parameter extraction: target, file_type, scope, directory and extras.
// ABOUTME: Absent fields must be missing from the map, never empty strings.

package intent

import "testing"

func TestExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		wantTarget string
		wantParams map[string]string
	}{
		{"run organize_ai_scripts.py", "organize_ai_scripts.py", map[string]string{ParamFileType: "python"}},
		{"list python scripts", "", map[string]string{ParamFileType: "python"}},
		{"show me all python scripts", "", map[string]string{ParamFileType: "python", ParamScope: "all"}},
		{"search for todo items", "todo", map[string]string{ParamQuery: "todo items"}},
		{"search for todo in docs", "todo", map[string]string{ParamQuery: "todo", ParamDirectory: "docs", ParamFileType: "markdown"}},
		{"find files containing TODO", "TODO", map[string]string{ParamQuery: "TODO"}},
		{`search for "hello world"`, "hello", map[string]string{ParamQuery: "hello world"}},
		{"show README.md", "README.md", map[string]string{ParamFileType: "markdown"}},
		{"create a python script called hello", "hello", map[string]string{ParamFileType: "python"}},
		{"rename a.py to b.py", "a.py", map[string]string{ParamFileType: "python", ParamNewName: "b.py"}},
		{"move notes.md to archive", "notes.md", map[string]string{ParamFileType: "markdown", ParamDirectory: "archive"}},
		{"summarize the latest document", "", map[string]string{ParamScope: "latest"}},
		{"run deploy.sh --dry-run -v", "deploy.sh", map[string]string{ParamFileType: "shell", ParamArgs: "--dry-run -v"}},
		{"run greet.py world", "greet.py", map[string]string{ParamFileType: "python", ParamArgs: "world"}},
		{"run backup.sh /tmp now", "backup.sh", map[string]string{ParamFileType: "shell", ParamArgs: "/tmp now"}},
		{"run report.py text", "report.py", map[string]string{ParamFileType: "python", ParamArgs: "text"}},
		{"run the backup script", "backup", map[string]string{}},
		{"help search", "", map[string]string{ParamTopic: "search"}},
		{"how do i run a script", "", map[string]string{ParamTopic: "run"}},
		{"hello", "", map[string]string{}},
	}
	r, err := NewRecognizer(Config{Strategy: StrategyHeuristic})
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got := r.Recognize(tt.input)
			target, ok := got.Target()
			if target != tt.wantTarget || ok != (tt.wantTarget != "") {
				t.Errorf("Target() = %q, %v; want %q", target, ok, tt.wantTarget)
			}
			params := got.Params()
			if len(params) != len(tt.wantParams) {
				t.Errorf("Params() = %v; want %v", params, tt.wantParams)
			}
			for k, want := range tt.wantParams {
				if params[k] != want {
					t.Errorf("param %s = %q; want %q", k, params[k], want)
				}
			}
			for k, v := range params {
				if v == "" {
					t.Errorf("param %s present with empty value", k)
				}
			}
		})
	}
}

func TestIntentImmutability(t *testing.T) {
	t.Parallel()

	src := map[string]string{ParamScope: "all", ParamDirectory: ""}
	in := New(List, 1.7, "", src, "list all")

	src[ParamScope] = "latest"
	if v, _ := in.Param(ParamScope); v != "all" {
		t.Errorf("intent shares caller map: scope = %q", v)
	}
	p := in.Params()
	p[ParamScope] = "recent"
	if v, _ := in.Param(ParamScope); v != "all" {
		t.Errorf("Params() leaks internal map: scope = %q", v)
	}
	if _, ok := in.Param(ParamDirectory); ok {
		t.Error("empty value kept as a parameter")
	}
	if in.Confidence() != 1 {
		t.Errorf("Confidence() = %v; want clamp to 1", in.Confidence())
	}
	if _, ok := in.Target(); ok {
		t.Error("empty target reported present")
	}
}

func TestTypeNames(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		got, ok := ParseType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), got, ok)
		}
	}
	if AIChat.String() != "ai_chat" {
		t.Errorf("AIChat = %q", AIChat.String())
	}
	if _, ok := ParseType("dance"); ok {
		t.Error("ParseType accepted an unknown name")
	}
}

func TestExtraction_RunArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"run greet.py world", "world"},
		{"run backup.sh /tmp now", "/tmp now"},
		{"run scan.py --verbose", "--verbose"},
		{"run organize_ai_scripts.py", ""},
	}
	for name, r := range recognizers(t) {
		for _, tt := range tests {
			got := r.Recognize(tt.input)
			if got.Type() != Run {
				t.Errorf("%s: Recognize(%q) type = %s; want run", name, tt.input, got.Type())
				continue
			}
			args, ok := got.Param(ParamArgs)
			if args != tt.want || ok != (tt.want != "") {
				t.Errorf("%s: args of %q = %q, %v; want %q", name, tt.input, args, ok, tt.want)
			}
		}
	}
}
