package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"vesuvius/internal/diag"
)

func TestJSON_MaxAndNotes(t *testing.T) {
	bag := diag.NewBag(0)
	sp := spanOf(t, "/tmp/project/a.vs", "let x\nlet y", 6, 8)
	bag.Add(diag.Validator(diag.SemaName, diag.Global().Child("f", sp), sp, "Name `y` is already defined.").
		WithNote(sp, "first"))
	bag.Add(diag.Internal("boom"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, JSONOpts{PathMode: PathModeBasename, Max: 1, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Category != "ValidatorException" || d.Title != "Name" || d.Context != "Global::f" {
		t.Fatalf("unexpected %+v", d)
	}
	loc := d.Location
	if loc.File != "a.vs" || loc.StartLine != 2 || loc.StartCol != 1 || loc.EndCol != 3 || loc.StartIndex != 6 {
		t.Fatalf("unexpected location %+v", loc)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "first" {
		t.Fatalf("notes = %+v", d.Notes)
	}
}
