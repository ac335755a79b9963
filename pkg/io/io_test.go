package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/gridlink/pkg/errors"
	"github.com/matzehuels/gridlink/pkg/grid"
	"github.com/matzehuels/gridlink/pkg/render/ascii"
)

const plantTOML = `
[[component]]
name = "TeslaBattery"
kind = "battery"
cell = "Lithium-ion"
power = 300
year = 2023

[[component]]
name = "RoofSolar"
kind = "solar"
power = 150
year_installed = 2020

[[connection]]
from = "TeslaBattery"
to = "RoofSolar"
direction = "source-to-target"
power = 200
`

func renderNetwork(t *testing.T, n *grid.Network) string {
	t.Helper()
	var buf bytes.Buffer
	if err := ascii.RenderAll(&buf, n.Components()); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestDecodeTOML(t *testing.T) {
	p, err := Decode(strings.NewReader(plantTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(p.Components) != 2 || len(p.Connections) != 1 {
		t.Fatalf("Decode() = %+v", p)
	}

	n, err := Build(p, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	roof, _ := n.Component("RoofSolar")
	if got := roof.Attributes().(grid.SolarPVAttributes).AverageHoursInYear; got != grid.DefaultAverageHoursInYear {
		t.Errorf("AverageHoursInYear = %d, want default %d", got, grid.DefaultAverageHoursInYear)
	}
	want := "---- TeslaBattery ----\nTeslaBattery --200W--> RoofSolar\n\n---- RoofSolar ----\nRoofSolar <--200W-- TeslaBattery\n"
	if got := renderNetwork(t, n); got != want {
		t.Errorf("render =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     Format
	}{
		{"toml", "[[component]]\nname = \"a\"\nkind = \"solar\"\nwatts = 3\n", FormatTOML},
		{"yaml", "component:\n  - name: a\n    kind: solar\n    watts: 3\n", FormatYAML},
		{"json", `{"component": [{"name": "a", "kind": "solar", "watts": 3}]}`, FormatJSON},
		{"yaml second document", "component:\n  - name: a\n    kind: battery\n    cell: lion\n---\nbogus: 1\n", FormatYAML},
		{"yaml extra valid document", "component: []\n---\ncomponent: []\n", FormatYAML},
		{"json second value", `{"component": []} {"garbage": 1}`, FormatJSON},
		{"json trailing garbage", `{"component": []} }`, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.f)
			if !errs.Is(err, errs.ErrCodeInvalidPlant) {
				t.Errorf("Decode() error = %v, want INVALID_PLANT", err)
			}
		})
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	for _, tt := range []struct {
		input string
		f     Format
	}{
		{"component:\n  - name: a\n    kind: solar\n\n\n", FormatYAML},
		{"{\"component\": [{\"name\": \"a\", \"kind\": \"solar\"}]}\n\n", FormatJSON},
	} {
		p, err := Decode(strings.NewReader(tt.input), tt.f)
		if err != nil {
			t.Errorf("Decode(%s) error = %v", tt.f, err)
			continue
		}
		if len(p.Components) != 1 || p.Components[0].Name != "a" {
			t.Errorf("Decode(%s) = %+v", tt.f, p)
		}
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	p, err := Decode(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(p.Components) != 0 {
		t.Errorf("Decode() = %+v, want empty plant", p)
	}
}

func TestBuildErrors(t *testing.T) {
	battery := Component{Name: "a", Kind: "battery", Cell: "Fuel Cell"}
	solar := Component{Name: "b", Kind: "solar"}

	tests := []struct {
		name     string
		plant    Plant
		wantCode errs.Code
		sentinel error
		wantMsg  string
	}{
		{
			name:     "missing name",
			plant:    Plant{Components: []Component{{Kind: "solar"}}},
			wantCode: errs.ErrCodeInvalidPlant,
			wantMsg:  "Name: field is required",
		},
		{
			name:     "unknown kind",
			plant:    Plant{Components: []Component{{Name: "x", Kind: "wind"}}},
			wantCode: errs.ErrCodeInvalidPlant,
			wantMsg:  "Kind: must be one of",
		},
		{
			name:     "battery without cell",
			plant:    Plant{Components: []Component{{Name: "x", Kind: "battery"}}},
			wantCode: errs.ErrCodeInvalidPlant,
			wantMsg:  "Cell: field is required",
		},
		{
			name:     "unknown cell",
			plant:    Plant{Components: []Component{{Name: "x", Kind: "battery", Cell: "lead acid"}}},
			wantCode: errs.ErrCodeInvalidPlant,
			wantMsg:  "unknown battery cell",
		},
		{
			name:     "duplicate name",
			plant:    Plant{Components: []Component{battery, battery}},
			wantCode: errs.ErrCodeInvalidPlant,
			sentinel: grid.ErrDuplicateName,
		},
		{
			name: "missing direction",
			plant: Plant{
				Components:  []Component{battery, solar},
				Connections: []Connection{{From: "a", To: "b", Power: 1}},
			},
			wantCode: errs.ErrCodeInvalidPlant,
			wantMsg:  "Direction: field is required",
		},
		{
			name: "bad direction",
			plant: Plant{
				Components:  []Component{battery, solar},
				Connections: []Connection{{From: "a", To: "b", Direction: "up", Power: 1}},
			},
			wantCode: errs.ErrCodeInvalidPlant,
			wantMsg:  "unknown direction",
		},
		{
			name: "unknown component",
			plant: Plant{
				Components:  []Component{battery},
				Connections: []Connection{{From: "a", To: "zzz", Direction: "both-ways"}},
			},
			wantCode: errs.ErrCodeInvalidPlant,
			sentinel: grid.ErrUnknownComponent,
		},
		{
			name: "self connection",
			plant: Plant{
				Components:  []Component{battery},
				Connections: []Connection{{From: "a", To: "a", Direction: "both-ways"}},
			},
			wantCode: errs.ErrCodeInvalidPlant,
			sentinel: grid.ErrSelfConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(&tt.plant, nil)
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !errs.Is(err, tt.wantCode) {
				t.Errorf("code = %v, want %v (%v)", errs.GetCode(err), tt.wantCode, err)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false, err = %v", tt.sentinel, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	loaded, err := LoadNetwork(filepath.Join("..", "..", "examples", "plant.toml"), nil)
	if err != nil {
		t.Fatalf("LoadNetwork() error = %v", err)
	}
	want := renderNetwork(t, loaded)

	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, FromNetwork(loaded), f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			p, err := Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			rebuilt, err := Build(p, nil)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := renderNetwork(t, rebuilt); got != want {
				t.Errorf("round trip render =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestLoadExamples(t *testing.T) {
	tests := []struct {
		file        string
		components  int
		connections int
	}{
		{"plant.toml", 5, 3},
		{"plant.yaml", 3, 2},
		{"plant.json", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			n, err := LoadNetwork(filepath.Join("..", "..", "examples", tt.file), nil)
			if err != nil {
				t.Fatalf("LoadNetwork() error = %v", err)
			}
			s := n.Stats()
			if s.Components != tt.components || s.Connections != tt.connections {
				t.Errorf("Stats() = %+v", s)
			}
			if err := n.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := Load("plant.ini"); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("unknown extension error = %v, want INVALID_FORMAT", err)
	}
	if _, err := Load(""); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("empty path error = %v, want INVALID_INPUT", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	p, err := Decode(strings.NewReader(plantTOML), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yml")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(back.Components) != 2 || back.Connections[0].Direction != "source-to-target" {
		t.Errorf("Load() = %+v", back)
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"toml", FormatTOML, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}

	for path, want := range map[string]Format{"a.toml": FormatTOML, "b.YAML": FormatYAML, "c.yml": FormatYAML, "d.json": FormatJSON} {
		if got, err := DetectFormat(path); err != nil || got != want {
			t.Errorf("DetectFormat(%q) = %q, %v", path, got, err)
		}
	}
}
