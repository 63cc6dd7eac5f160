package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rickmorty/catalog/internal/domain"
	"rickmorty/catalog/internal/labels"

	"gopkg.in/yaml.v3"
)

var testCharacters = []domain.Character{
	{
		ID: 1, Name: "Rick Sanchez", Status: "Alive", Species: "Human", Gender: "Male",
		Origin:   domain.Place{Name: "Earth (C-137)"},
		Location: domain.Place{Name: "Citadel of Ricks"},
		Episode:  []string{"https://rickandmortyapi.com/api/episode/1", "https://rickandmortyapi.com/api/episode/2"},
	},
	{
		ID: 8, Name: "Adjudicator Rick", Status: "Dead", Species: "Human", Gender: "Male",
		Location: domain.Place{Name: "Citadel of Ricks"},
	},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"table", FormatTable, false},
		{"", "", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRows_TranslatesLabels(t *testing.T) {
	rows := Rows(testCharacters, labels.New("es"))

	if rows[0].Status != "Vivo" || rows[0].Gender != "Masculino" {
		t.Errorf("row 0 labels = %q/%q", rows[0].Status, rows[0].Gender)
	}
	if rows[1].Status != "Muerto" {
		t.Errorf("row 1 status = %q", rows[1].Status)
	}
	if rows[0].Episodes != 2 || rows[0].Origin != "Earth (C-137)" {
		t.Errorf("row 0 = %+v", rows[0])
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(FormatJSON, &buf).Render(Rows(testCharacters, labels.New("en"))); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got []Row
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[1].Name != "Adjudicator Rick" || got[1].Status != "Dead" {
		t.Errorf("unexpected rows: %+v", got)
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(FormatYAML, &buf).Render(Rows(testCharacters, labels.New("es"))); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got []Row
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].Location != "Citadel of Ricks" {
		t.Errorf("unexpected rows: %+v", got)
	}
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(FormatTable, &buf).Render(Rows(testCharacters, labels.New("es"))); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[1], "Rick Sanchez") || !strings.Contains(lines[2], "Muerto") {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}
