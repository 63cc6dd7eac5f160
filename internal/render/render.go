// Package render writes character lists for the non-interactive commands.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"rickmorty/catalog/internal/domain"
	"rickmorty/catalog/internal/labels"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a format string. An empty string is returned as "" so the caller can pick a default.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	case "yaml":
		return FormatYAML, nil
	case "":
		return "", nil
	default:
		return "", fmt.Errorf("invalid format: %q (must be json, table, or yaml)", s)
	}
}

// DefaultFormat is table on a terminal and json otherwise.
func DefaultFormat(f *os.File) Format {
	info, err := f.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return FormatTable
	}
	return FormatJSON
}

// Row is one character with its labels already translated.
type Row struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	Species  string `json:"species" yaml:"species"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Gender   string `json:"gender" yaml:"gender"`
	Origin   string `json:"origin" yaml:"origin"`
	Location string `json:"location" yaml:"location"`
	Episodes int    `json:"episodes" yaml:"episodes"`
	Image    string `json:"image" yaml:"image"`
}

func Rows(characters []domain.Character, tr *labels.Translator) []Row {
	rows := make([]Row, 0, len(characters))
	for _, c := range characters {
		rows = append(rows, Row{
			ID:       c.ID,
			Name:     c.Name,
			Status:   tr.Status(c.Status),
			Species:  c.Species,
			Type:     c.Type,
			Gender:   tr.Gender(c.Gender),
			Origin:   c.Origin.Name,
			Location: c.Location.Name,
			Episodes: len(c.Episode),
			Image:    c.Image,
		})
	}
	return rows
}

type Renderer struct {
	format Format
	out    io.Writer
}

func NewRenderer(format Format, out io.Writer) *Renderer {
	return &Renderer{format: format, out: out}
}

func (r *Renderer) Render(rows []Row) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		return r.renderTable(rows)
	default:
		return fmt.Errorf("unknown format: %s", r.format)
	}
}

func (r *Renderer) renderTable(rows []Row) error {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSPECIES\tGENDER\tLOCATION")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", row.ID, row.Name, row.Status, row.Species, row.Gender, row.Location)
	}
	return w.Flush()
}
