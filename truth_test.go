package pybat_test

import (
	"testing"

	"github.com/pybat/pybat"
)

func TestTruthInt(t *testing.T) {
	cases := map[string]struct {
		n    int
		want bool
	}{
		"zero":     {0, false},
		"positive": {3, true},
		"negative": {-1, true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := pybat.Truth(c.n); got != c.want {
				t.Errorf("Truth(%d) = %v, want %v", c.n, got, c.want)
			}
		})
	}
}

func TestTruthString(t *testing.T) {
	if pybat.TruthString("") {
		t.Error("empty string is true")
	}
	if !pybat.TruthString(" ") {
		t.Error("nonempty string is false")
	}
}

func TestTruthList(t *testing.T) {
	if pybat.TruthList([]int(nil)) {
		t.Error("nil list is true")
	}
	if pybat.TruthList([]string{}) {
		t.Error("empty list is true")
	}
	if !pybat.TruthList([]string{"x"}) {
		t.Error("nonempty list is false")
	}
}

func TestTruthDict(t *testing.T) {
	var nildict *pybat.Dict[string, int]
	if pybat.TruthDict(nildict) {
		t.Error("nil dict is true")
	}
	d := pybat.NewDict[string, int]()
	if pybat.TruthDict(d) {
		t.Error("empty dict is true")
	}
	d.Put("k", 1)
	if !pybat.TruthDict(d) {
		t.Error("nonempty dict is false")
	}
}
