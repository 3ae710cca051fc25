package semantic_test

import (
	"testing"

	"github.com/inductiveautomation/versioncmp/pkg/semantic"
)

func FuzzParse(f *testing.F) {
	f.Add("1.0", "1")
	f.Add("1.0-alpha-1", "1.0-SNAPSHOT")
	f.Add("6.1.0rc3", "6.1H.5-beta")
	f.Add("1-0.alpha", "1-0.beta")
	f.Add("12345678901234567890", "1234567890")
	f.Add("", "-")
	f.Add("1--1", "1-ga.1")
	f.Add("..", "0.0.0")
	f.Add("1a1", "1-alpha-1")
	f.Add("\xff", "1.İ")

	f.Fuzz(func(t *testing.T, a, b string) {
		va := semantic.Parse(a)
		vb := semantic.Parse(b)

		ab := va.Compare(vb)
		ba := vb.Compare(va)

		if ab < -1 || ab > 1 {
			t.Fatalf("Compare(%q, %q) = %d, which is not -1, 0 or +1", a, b, ab)
		}

		if ab != -ba {
			t.Errorf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", a, b, ab, b, a, ba)
		}

		if ab == 0 && va.Hash() != vb.Hash() {
			t.Errorf("%q and %q are equal but hash differently", a, b)
		}

		if ab != 0 && va.Hash() == vb.Hash() {
			t.Errorf("%q and %q are not equal but hash the same", a, b)
		}

		canonical := va.Canonical()
		reparsed := semantic.Parse(canonical)

		if va.Compare(reparsed) != 0 || va.Tokens() != reparsed.Tokens() {
			t.Errorf("%q does not equal its canonical form %q", a, canonical)
		}

		if reparsed.Canonical() != canonical {
			t.Errorf("canonical form %q of %q is not stable, got %q", canonical, a, reparsed.Canonical())
		}
	})
}
