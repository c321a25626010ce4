package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenOfLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.css")
	defer teardown()
	//
	d := DimenOf(Length{N: 10, Unit: UnitPx})
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected 10px to be a fixed dimension, isn't: %#v", d)
	}

	pcnt := DimenOf(Length{N: 50, Unit: UnitPercent})
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected 50%% to be a percentage dimension, isn't: %#v", pcnt)
	}
}

func TestDimenOfKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wren.css")
	defer teardown()
	//
	auto := DimenOf(Keyword("auto"))
	switch m := auto.Match(); m {
	case m.IsKind(Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected keyword auto to match kind auto, isn't: %#v", auto)
	}
	if !DimenOf(Keyword("powderblue")).IsNone() {
		t.Errorf("expected unknown keyword to convert to None")
	}
	if !DimenOf(Color{A: 255}).IsNone() {
		t.Errorf("expected color value to convert to None")
	}
}
