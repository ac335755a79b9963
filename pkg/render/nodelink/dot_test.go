package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/gridlink/pkg/grid"
)

func testNetwork(t *testing.T) *grid.Network {
	t.Helper()
	n := grid.NewNetwork(nil)
	_, _ = n.AddBattery("Blue Tesla", grid.BatteryAttributes{Cell: grid.LithiumIon, Power: 300, Year: 2023})
	_, _ = n.AddBattery("Red Golf", grid.BatteryAttributes{Cell: grid.FuelCell, Power: 210, Year: 2021})
	_, _ = n.AddSolarPV("Barn Roof", grid.SolarPVAttributes{Power: 150, YearInstalled: 2020, AverageHoursInYear: 1500})
	_, _ = n.AddSolarPV("Garden Solar Grid", grid.SolarPVAttributes{Power: 1200, YearInstalled: 2015, AverageHoursInYear: 1350})
	_, _ = n.AddBattery("Green Volvo", grid.BatteryAttributes{Cell: grid.FuelCell, Power: 210, Year: 2021})

	for _, c := range []struct {
		from, to string
		cfg      grid.LinkConfig
	}{
		{"Blue Tesla", "Barn Roof", grid.LinkConfig{Direction: grid.SourceToTarget, Power: 200}},
		{"Red Golf", "Barn Roof", grid.LinkConfig{Direction: grid.TargetToSource, Power: 150}},
		{"Barn Roof", "Garden Solar Grid", grid.LinkConfig{Direction: grid.BothWays, Power: 1000}},
	} {
		if err := n.Connect(c.from, c.to, c.cfg); err != nil {
			t.Fatal(err)
		}
	}
	return n
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, name := range []string{"Blue Tesla", "Red Golf", "Barn Roof", "Garden Solar Grid", "Green Volvo"} {
		if !strings.Contains(dot, `"`+name+`" [`) {
			t.Errorf("ToDOT() output missing node %s", name)
		}
	}
}

func TestToDOT_Edges(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	want := []string{
		`"Blue Tesla" -> "Barn Roof" [label="200W", dir=forward];`,
		`"Red Golf" -> "Barn Roof" [label="150W", dir=back];`,
		`"Barn Roof" -> "Garden Solar Grid" [label="1000W", dir=both];`,
	}
	for _, w := range want {
		if !strings.Contains(dot, w) {
			t.Errorf("ToDOT() output missing edge %s\n%s", w, dot)
		}
	}
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("edge count = %d, want one per connection (3)", got)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{Detailed: true})

	if !strings.Contains(dot, `kind: battery\ncell: Lithium-ion`) {
		t.Error("ToDOT() detailed output missing battery attributes")
	}
	if !strings.Contains(dot, `sun hours: 1350`) {
		t.Error("ToDOT() detailed output missing solar attributes")
	}
}

func TestToDOT_Unconnected(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, `"Green Volvo" [`) {
			if !strings.Contains(line, "dashed") {
				t.Errorf("unconnected component should be dashed: %s", line)
			}
			return
		}
	}
	t.Error("Green Volvo node not found")
}

func TestFmtLabel_Simple(t *testing.T) {
	c, _ := grid.NewSolarPV("roof", grid.SolarPVAttributes{Power: 1})
	if label := fmtLabel(c, false); label != "roof" {
		t.Errorf("fmtLabel() simple mode = %q, want %q", label, "roof")
	}
}

func TestEdgeDir(t *testing.T) {
	tests := []struct {
		d    grid.Direction
		want string
	}{
		{grid.SourceToTarget, "forward"},
		{grid.TargetToSource, "back"},
		{grid.BothWays, "both"},
		{grid.Direction(0), "none"},
	}
	for _, tt := range tests {
		if got := edgeDir(tt.d); got != tt.want {
			t.Errorf("edgeDir(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.25" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.50 200.25" width="100" height="200"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}
