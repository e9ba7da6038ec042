// Copyright (c) 2023, Luke Chambers.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import "testing"

// FuzzOrderLaws checks that the ordering stays a total order no matter which
// well-typed inputs versions are constructed from.
func FuzzOrderLaws(f *testing.F) {
	f.Add(0, 8, 0, 0, 9, 0, 2023, 1, 30, 4)
	f.Add(0, 0, 1, 1, 0, 0, 2023, 3, 21, 0)
	f.Add(0, 1, 0, 0, 1, 0, 2022, 12, 31, 99)
	f.Add(3, 2, 1, 0, 11, 1, 2024, 6, 15, 7)

	f.Fuzz(func(t *testing.T, aMaj, aMin, aPat, bMaj, bMin, bPat, year, month, day, revision int) {
		// Constructors are total over well-typed non-negative input; clamp
		// the fuzzed values into the caller contract.
		norm := func(v, limit int) int {
			v %= limit
			if v < 0 {
				v += limit
			}
			return v
		}

		a := Semantic(norm(aMaj, 100), norm(aMin, 100), norm(aPat, 100))
		b := Semantic(norm(bMaj, 100), norm(bMin, 100), norm(bPat, 100))
		d := Dated(2020+norm(year, 10), 1+norm(month, 12), 1+norm(day, 28))
		p := Post(a, TargetTriple(norm(aMaj, 100)+1, 0, 0), norm(revision, 1<<20))

		values := []Version{a, b, d, p}

		// Antisymmetry and reflexive consistency for every pair.
		for _, x := range values {
			for _, y := range values {
				if x.Compare(y) != -y.Compare(x) {
					t.Errorf("Compare not antisymmetric for %s vs %s", x, y)
				}
				if (x.Compare(y) == 0) != x.Equal(y) {
					t.Errorf("Compare and Equal disagree for %s vs %s", x, y)
				}
			}
			if x.Compare(x) != 0 {
				t.Errorf("Compare(%s, %s) != 0", x, x)
			}
		}

		// Transitivity over every triple.
		for _, x := range values {
			for _, y := range values {
				for _, z := range values {
					if x.Compare(y) <= 0 && y.Compare(z) <= 0 && x.Compare(z) > 0 {
						t.Errorf("order not transitive: %s, %s, %s", x, y, z)
					}
				}
			}
		}

		// A snapshot stays inside its bounds for every fuzzed revision.
		if !a.Less(p) {
			t.Errorf("snapshot %s should order after its base %s", p, a)
		}
		if !p.Less(Semantic(norm(aMaj, 100)+1, 0, 0)) {
			t.Errorf("snapshot %s should order before its target", p)
		}

		// Derived views stay deterministic.
		if p.String() != p.String() {
			t.Errorf("String is not deterministic for %v", p.Key())
		}
		if p.Key() != p.Key() {
			t.Errorf("Key is not deterministic")
		}
	})
}
