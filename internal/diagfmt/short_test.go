package diagfmt

import (
	"bytes"
	"testing"

	"vesuvius/internal/diag"
)

func TestShortNotesFollowPrimary(t *testing.T) {
	text := "let x = 1; let x = 2;"
	first := spanOf(t, "/work/src/dup.vs", text, 0, 9)
	second := spanOf(t, "/work/src/dup.vs", text, 11, 20)
	d := diag.Validator(diag.SemaName, diag.Global(), second, "Name `x` is already defined.").
		WithNote(first, "Previously defined here.")

	tests := []struct {
		name string
		opts BannerOpts
		want string
	}{
		{
			name: "basename with notes",
			opts: BannerOpts{PathMode: PathModeBasename, ShowNotes: true},
			want: "error SEM3001 dup.vs:1:12 Name `x` is already defined.\n" +
				"note SEM3001 dup.vs:1:1 Previously defined here.\n",
		},
		{
			name: "relative without notes",
			opts: BannerOpts{PathMode: PathModeRelative, BaseDir: "/work"},
			want: "error SEM3001 src/dup.vs:1:12 Name `x` is already defined.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Short(&buf, d, tt.opts); err != nil {
				t.Fatalf("Short: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestShortVoidFilename(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, diag.Internal("Invalid global node."), BannerOpts{PathMode: PathModeAbsolute}); err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "critical INT0100 <Void>:1:1 Invalid global node.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
