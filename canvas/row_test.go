package canvas

import (
	"errors"
	"testing"
)

func TestRow_New(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"Single cell", 1, "\n"},
		{"Narrow", 2, " \n"},
		{"Wide", 6, "     \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := NewRow(tt.width)
			if err != nil {
				t.Fatalf("NewRow(%d) error = %v", tt.width, err)
			}
			if row.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", row.Width(), tt.width)
			}
			if got := row.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}

	for _, width := range []int{0, -3} {
		if _, err := NewRow(width); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewRow(%d) error = %v, want ErrInvalidDimensions", width, err)
		}
	}
}

func TestRow_Fill(t *testing.T) {
	row, _ := NewRow(5)

	for i := 0; i < 2; i++ {
		if err := row.Fill('b'); err != nil {
			t.Fatalf("Fill() error = %v", err)
		}
		if got := row.String(); got != "bbbb\n" {
			t.Errorf("String() after Fill #%d = %q, want %q", i+1, got, "bbbb\n")
		}
	}

	if err := row.Fill('\n'); !errors.Is(err, ErrInvalidGlyph) {
		t.Errorf("Fill('\\n') error = %v, want ErrInvalidGlyph", err)
	}
	if got := row.Text(); got != "bbbb\n" {
		t.Errorf("rejected Fill changed row to %q", got)
	}
}

func TestRow_GetReplace(t *testing.T) {
	row, _ := NewRow(5)
	row.Fill('b')

	tests := []struct {
		name    string
		index   int
		wantErr error
	}{
		{"First", 0, nil},
		{"Last visible", 3, nil},
		{"Terminator", 4, ErrTerminatorProtected},
		{"Past width", 5, ErrIndexOutOfBounds},
		{"Negative", -1, ErrIndexOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, getErr := row.Get(tt.index)
			prev, err := row.Replace(tt.index, 'c')

			if tt.wantErr != nil {
				if !errors.Is(getErr, tt.wantErr) {
					t.Errorf("Get(%d) error = %v, want %v", tt.index, getErr, tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Replace(%d) error = %v, want %v", tt.index, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Replace(%d) error = %v", tt.index, err)
			}
			if prev != 'b' {
				t.Errorf("Replace(%d) = %c, want previous b", tt.index, prev)
			}
			if got, _ := row.Get(tt.index); got != 'c' {
				t.Errorf("Get(%d) = %c, want c", tt.index, got)
			}
		})
	}

	if got := row.Text(); got != "cbbc\n" {
		t.Errorf("Text() = %q, want %q", got, "cbbc\n")
	}
}

func TestRow_ReplaceRejectsInvalidGlyph(t *testing.T) {
	row, _ := NewRow(3)

	if _, err := row.Replace(0, '\n'); !errors.Is(err, ErrInvalidGlyph) {
		t.Errorf("Replace(0, '\\n') error = %v, want ErrInvalidGlyph", err)
	}
	if got := row.Text(); got != "  \n" {
		t.Errorf("Text() = %q, want %q", got, "  \n")
	}
}
