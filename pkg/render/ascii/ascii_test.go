package ascii

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/gridlink/pkg/grid"
)

func battery(t *testing.T, name string) *grid.Component {
	t.Helper()
	c, err := grid.NewBattery(name, grid.BatteryAttributes{Cell: grid.LithiumIon, Power: 300, Year: 2023})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func solar(t *testing.T, name string) *grid.Component {
	t.Helper()
	c, err := grid.NewSolarPV(name, grid.SolarPVAttributes{Power: 150, YearInstalled: 2020})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesSourceToTarget(t *testing.T) {
	tesla := battery(t, "TeslaBattery")
	roof := solar(t, "RoofSolar")
	_ = grid.Connect(tesla, roof, grid.LinkConfig{Direction: grid.SourceToTarget, Power: 200})

	assertLines(t, Lines(tesla), []string{
		"---- TeslaBattery ----",
		"TeslaBattery --200W--> RoofSolar",
	})
	assertLines(t, Lines(roof), []string{
		"---- RoofSolar ----",
		"RoofSolar <--200W-- TeslaBattery",
	})
}

func TestLinesBothWays(t *testing.T) {
	roof := solar(t, "RoofSolar")
	garden := solar(t, "GardenGrid")
	_ = grid.Connect(roof, garden, grid.LinkConfig{Direction: grid.BothWays, Power: 1000})

	assertLines(t, Lines(roof), []string{
		"---- RoofSolar ----",
		"RoofSolar <--1000W--> GardenGrid",
	})
	assertLines(t, Lines(garden), []string{
		"---- GardenGrid ----",
		"GardenGrid <--1000W--> RoofSolar",
	})
}

func TestLinesEmptyRegistry(t *testing.T) {
	volvo := battery(t, "Green Volvo")

	assertLines(t, Lines(volvo), []string{
		"---- Green Volvo ----",
		"Green Volvo |-- no connection --|",
	})
}

func TestLinesPreservesOrder(t *testing.T) {
	a := battery(t, "A")
	b := solar(t, "B")
	c := solar(t, "C")
	_ = grid.Connect(a, b, grid.LinkConfig{Direction: grid.SourceToTarget, Power: 1})
	_ = grid.Connect(a, c, grid.LinkConfig{Direction: grid.SourceToTarget, Power: 2})

	assertLines(t, Lines(a), []string{
		"---- A ----",
		"A --1W--> B",
		"A --2W--> C",
	})
}

func TestLineUnknownDirection(t *testing.T) {
	a := battery(t, "A")
	b := solar(t, "B")
	_ = grid.Connect(a, b, grid.LinkConfig{Direction: grid.Direction(99), Power: 5})

	if got := Line(a, a.Links()[0]); got != "A <-- unknown -->" {
		t.Errorf("Line() = %q", got)
	}
	if got := Line(b, b.Links()[0]); got != "B <-- unknown -->" {
		t.Errorf("Line() = %q", got)
	}
}

func TestLinesDoesNotMutate(t *testing.T) {
	a := battery(t, "A")
	b := solar(t, "B")
	_ = grid.Connect(a, b, grid.LinkConfig{Direction: grid.SourceToTarget, Power: 1})

	first := Lines(a)
	second := Lines(a)
	assertLines(t, second, first)
	if a.LinkCount() != 1 || b.LinkCount() != 1 {
		t.Errorf("render changed registries: %d/%d", a.LinkCount(), b.LinkCount())
	}
}

func TestRenderAll(t *testing.T) {
	a := battery(t, "A")
	b := solar(t, "B")
	c := solar(t, "C")
	_ = grid.Connect(a, b, grid.LinkConfig{Direction: grid.TargetToSource, Power: 150})

	var buf bytes.Buffer
	if err := RenderAll(&buf, []*grid.Component{a, b, c}); err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}

	want := strings.Join([]string{
		"---- A ----",
		"A <--150W-- B",
		"",
		"---- B ----",
		"B --150W--> A",
		"",
		"---- C ----",
		"C |-- no connection --|",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("RenderAll() =\n%s\nwant\n%s", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderPropagatesWriteErrors(t *testing.T) {
	a := battery(t, "A")
	if err := Render(failingWriter{}, a); err == nil {
		t.Error("Render() should return the writer's error")
	}
	if err := RenderAll(failingWriter{}, []*grid.Component{a}); err == nil {
		t.Error("RenderAll() should return the writer's error")
	}
}
