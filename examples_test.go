package descript

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseExampleFiles(t *testing.T) {
	examplesDir := "testdata"

	examples := []struct {
		file    string
		charset Charset
		lines   int
	}{
		{"master.txt", CharsetShiftJIS, 39},
		{"dressup.txt", CharsetUTF8, 32},
		{"minimal.txt", CharsetDefault, 2},
	}

	for _, example := range examples {
		path := filepath.Join(examplesDir, example.file)
		t.Run(example.file, func(t *testing.T) {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Example file not found: %s", path)
			}

			parser := NewParser()
			_, charset, err := parser.DecodeBytes(content)
			if err != nil {
				t.Fatalf("Failed to decode %s: %v", example.file, err)
			}
			if charset != example.charset {
				t.Errorf("Expected charset %s, got %s", example.charset, charset)
			}

			doc, err := parser.ParseBytes(content)
			if err != nil {
				t.Fatalf("Failed to parse %s: %v", example.file, err)
			}

			if doc.Len() != example.lines {
				t.Errorf("Expected %d lines in %s, got %d", example.lines, example.file, doc.Len())
			}

			again, err := Parse(Format(doc))
			if err != nil {
				t.Fatalf("Formatted %s does not parse: %v", example.file, err)
			}
			if again.Len() != doc.Len() {
				t.Errorf("Round trip changed line count: %d != %d", again.Len(), doc.Len())
			}

			t.Logf("Successfully parsed %s with %d lines", example.file, doc.Len())
		})
	}
}

func TestUnmarshalExampleFile(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "dressup.txt"))
	if err != nil {
		t.Fatal(err)
	}

	var s Shell
	if err := Unmarshal(content, &s); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if s.Name != "dressup" {
		t.Errorf("Expected name dressup, got %q", s.Name)
	}
	if got := len(s.Characters[Sakura].BindGroups); got != 3 {
		t.Errorf("Expected 3 sakura bind groups, got %d", got)
	}
	if got := s.Characters[Char(2)].Name; got != "ちびキャラ" {
		t.Errorf("Expected char2 name, got %q", got)
	}
	if got := s.AnimationIDs().GetCardinality(); got != 7 {
		t.Errorf("Expected 7 animation ids, got %d", got)
	}
}
