package main

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		dir  string
		ext  string
		want string
	}{
		{name: "same-dir", in: "tex/rock.dds", ext: "png", want: "tex/rock.png"},
		{name: "dotted-ext", in: "rock.dds", ext: ".TGA", want: "rock.tga"},
		{name: "out-dir", in: "tex/rock.dds", dir: "out", ext: "bmp", want: filepath.Join("out", "rock.bmp")},
		{name: "no-ext", in: "rock", ext: "dds", want: "rock.dds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := outputPath(tc.in, tc.dir, tc.ext); got != tc.want {
				t.Fatalf("outputPath(%q, %q, %q) = %q, want %q", tc.in, tc.dir, tc.ext, got, tc.want)
			}
		})
	}
}
