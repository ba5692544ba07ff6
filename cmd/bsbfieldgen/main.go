// Command bsbfieldgen reads a field registry CSV (id,name,prognr,data_type,path)
// and writes the generated Go table consumed by package field. It is a
// build-time tool, not part of the decode/encode hot path.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

var datatypeExpr = regexp.MustCompile(`^(\w+)(?:\((\d+)\))?$`)

type row struct {
	ID       uint32
	Name     string
	ProgNr   int
	DataType string // Go constructor expression, e.g. "Float(10)"
	Path     string
}

const tmplSrc = `// Code generated by cmd/bsbfieldgen from {{.Source}}. DO NOT EDIT.
package fielddb

import "github.com/go-bsb/bsb/datatype"

// Row is one field registry row, the generator's output shape.
type Row struct {
	ID       uint32
	Name     string
	ProgNr   int
	Datatype datatype.Datatype
	Path     string
}

// Table is the closed, read-only field registry, keyed by wire id. It
// plays the role of the original's perfect-hash map: built once at
// package init, never mutated, O(1) lookup.
var Table = map[uint32]Row{
{{- range .Rows}}
	0x{{printf "%08x" .ID}}: {ID: 0x{{printf "%08x" .ID}}, Name: {{printf "%q" .Name}}, ProgNr: {{.ProgNr}}, Datatype: datatype.{{.DataType}}, Path: {{printf "%q" .Path}}},
{{- end}}
}
`

func main() {
	in := flag.String("in", "testdata/fields.csv", "input CSV path")
	out := flag.String("out", "field/internal/fielddb/zz_generated.go", "output Go file path")
	flag.Parse()

	rows, err := readCSV(*in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsbfieldgen:", err)
		os.Exit(1)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	tmpl := template.Must(template.New("fielddb").Parse(tmplSrc))
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsbfieldgen:", err)
		os.Exit(1)
	}
	defer f.Close()

	err = tmpl.Execute(f, struct {
		Source string
		Rows   []row
	}{Source: *in, Rows: rows})
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsbfieldgen:", err)
		os.Exit(1)
	}
}

func readCSV(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty CSV")
	}

	var rows []row
	for i, rec := range records[1:] {
		id, err := parseFieldID(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: id: %w", i+2, err)
		}
		prognr, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: prognr: %w", i+2, err)
		}
		dt, err := goDatatypeExpr(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: data_type: %w", i+2, err)
		}
		rows = append(rows, row{ID: uint32(id), Name: rec[1], ProgNr: prognr, DataType: dt, Path: rec[4]})
	}
	return rows, nil
}

// parseFieldID accepts a decimal or 0x-prefixed hexadecimal id, per
// spec.md §6 ("id is a decimal or hexadecimal u32").
func parseFieldID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(hex, 16, 32)
	}
	if hex, ok := strings.CutPrefix(s, "0X"); ok {
		return strconv.ParseUint(hex, 16, 32)
	}
	return strconv.ParseUint(s, 10, 32)
}

// goDatatypeExpr turns a CSV datatype spelling ("Float(10)", "Number",
// "Setting(2)") into the matching datatype package constructor call.
func goDatatypeExpr(s string) (string, error) {
	m := datatypeExpr.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("unrecognised datatype %q", s)
	}
	name, param := m[1], m[2]
	switch name {
	case "Setting", "Float":
		if param == "" {
			return "", fmt.Errorf("%s requires a parameter", name)
		}
		return fmt.Sprintf("%s(%s)", name, param), nil
	case "Number", "DateTime", "Schedule":
		return fmt.Sprintf("%s()", name), nil
	default:
		return "", fmt.Errorf("unknown datatype %q", name)
	}
}
