package palette

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func keys(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("m%d", i)
	}
	return out
}

func TestAssignDeterministicWithSeed(t *testing.T) {
	k := []string{"ygcy", "GCAUG", "catag", "YYYYYYYYYY"}
	a, err := Assign(k, Options{Seed: 42, Seeded: true})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Assign(k, Options{Seed: 42, Seeded: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed gave different colors:\n%v\n%v", a, b)
	}
	if !reflect.DeepEqual(a.Keys(), k) {
		t.Fatalf("Keys() = %v, want insertion order %v", a.Keys(), k)
	}
}

func TestAssignDistinct(t *testing.T) {
	a, err := Assign(keys(200), Options{Seed: 1, Seeded: true})
	if err != nil {
		t.Fatal(err)
	}
	ks := a.Keys()
	for i := range ks {
		ci, _ := a.Get(ks[i])
		for _, ch := range []float64{ci.R, ci.G, ci.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("%s channel out of range: %v", ks[i], ci)
			}
		}
		for j := i + 1; j < len(ks); j++ {
			cj, _ := a.Get(ks[j])
			if !Distinct(ci, cj) {
				t.Fatalf("%s %s and %s %s are not distinct", ks[i], ci.Hex(), ks[j], cj.Hex())
			}
		}
	}
}

func TestAssignDuplicatesAndExhaustion(t *testing.T) {
	a, err := Assign([]string{"A", "A", "C"}, Options{Seeded: true})
	if err != nil || a.Len() != 2 {
		t.Fatalf("dups: len=%d err=%v", a.Len(), err)
	}
	if _, err := Assign(keys(600), Options{Seeded: true}); !errors.Is(err, ErrExhausted) {
		t.Fatalf("600 motifs: err = %v, want ErrExhausted", err)
	}
}

func TestDistinctAndHex(t *testing.T) {
	black := RGB{}
	if Distinct(black, RGB{R: 31.0 / 255}) {
		t.Error("31/255 apart should not be distinct")
	}
	if !Distinct(black, RGB{B: 32.0 / 255}) {
		t.Error("32/255 apart should be distinct")
	}
	if got := (RGB{R: 1, G: 128.0 / 255, B: 0}).Hex(); got != "#ff8000" {
		t.Errorf("Hex = %q", got)
	}
}
