package frontmatter

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "frontmatter removed",
			input: "---\nfoo: bar\n---\nBODY",
			want:  "BODY",
		},
		{
			name:  "no frontmatter",
			input: "# Heading\n\nBody text.",
			want:  "# Heading\n\nBody text.",
		},
		{
			name:  "unterminated block passed through",
			input: "---\nfoo: bar\nBODY",
			want:  "---\nfoo: bar\nBODY",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "remainder is trimmed",
			input: "---\ntitle: x\n---\n\n\n# Heading\n",
			want:  "# Heading",
		},
		{
			name:  "delimiter only at start",
			input: "body with --- in the middle",
			want:  "body with --- in the middle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.input)
			if got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "closed block", input: "---\nfoo: bar\n---\nBODY", want: false},
		{name: "open block", input: "---\nfoo: bar\nBODY", want: true},
		{name: "no block", input: "BODY", want: false},
		{name: "bare delimiter", input: "---", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unterminated(tt.input); got != tt.want {
				t.Errorf("Unterminated(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	type meta struct {
		Title string `yaml:"title"`
		Draft bool   `yaml:"draft"`
	}

	t.Run("decodes block", func(t *testing.T) {
		var m meta
		ok, err := Decode("---\ntitle: Architect\ndraft: true\n---\nBODY", &m)
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}
		if !ok {
			t.Fatal("Decode returned ok=false, want true")
		}
		if m.Title != "Architect" || !m.Draft {
			t.Errorf("decoded %+v, want Title=Architect Draft=true", m)
		}
	})

	t.Run("no block", func(t *testing.T) {
		var m meta
		ok, err := Decode("BODY", &m)
		if err != nil {
			t.Fatalf("Decode returned error: %v", err)
		}
		if ok {
			t.Error("Decode returned ok=true for text without frontmatter")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		var m meta
		_, err := Decode("---\ntitle: [broken\n---\nBODY", &m)
		if err == nil {
			t.Error("Decode did not return an error for invalid YAML")
		}
	})
}
