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

import "fmt"

// Kind discriminates the three numbering schemes the compiler used over its
// history. The set is closed; every method on Version switches over it
// exhaustively.
type Kind uint8

const (
	// KindSemantic is a classic major.minor.patch release.
	KindSemantic Kind = iota
	// KindDated is a release identified by its calendar ship date, used
	// during the beta period that had no semantic numbering.
	KindDated
	// KindPost is a development snapshot built after a semantic release,
	// identified by the release it is working toward plus a revision counter.
	KindPost
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSemantic:
		return "semantic"
	case KindDated:
		return "dated"
	case KindPost:
		return "post"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Key is the comparison key derived from a Version. Keys compare
// lexicographically and induce a total order that matches the compiler's real
// release timeline across all three numbering schemes.
//
// Slot 0 is an era discriminant: semantic releases that predate the dated
// beta period, then the dated era, then semantic releases from the switch
// back to release numbering. The remaining slots are the variant's own
// lexicographic tuple within its era.
type Key [5]int64

// Compare returns -1, 0, or 1 as k orders before, equal to, or after other.
func (k Key) Compare(other Key) int {
	for i := range k {
		if k[i] < other[i] {
			return -1
		}
		if k[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Era discriminants for Key slot 0.
const (
	eraEarly  int64 = iota // semantic releases before the dated beta period
	eraDated               // date-identified beta releases
	eraModern              // semantic releases from the switch back onward
)

// revisionBias keeps every post key strictly below the key of the release it
// targets: the final slot of a post key is revision-revisionBias, which stays
// negative for any realistic revision counter, while released versions carry
// zero there.
const revisionBias = int64(1) << 32

// Version is a single point on the compiler's release timeline. It is an
// immutable value: the comparison key is computed once at construction and
// instances are safe to share and compare across goroutines without
// synchronization.
//
// Use the Semantic, Dated, and Post constructors; the zero Version is the
// semantic release 0.0.0.
type Version struct {
	kind Kind

	// Semantic: the release triple. Post: the resolved target triple.
	major, minor, patch int

	// Dated only.
	year, month, day int

	// Post only.
	baseMajor, baseMinor, basePatch int
	revision                        int

	key Key
}

// Semantic returns the release with the given major.minor.patch number.
// Components must be non-negative; that is a caller contract, not a runtime
// check, since no parsing is involved.
func Semantic(major, minor, patch int) Version {
	return Version{
		kind:  KindSemantic,
		major: major,
		minor: minor,
		patch: patch,
		key:   semanticKey(major, minor, patch),
	}
}

// Dated returns the release that shipped on the given calendar date. Callers
// must supply a calendar-valid date; an invalid one is a contract violation,
// not a checked error.
func Dated(year, month, day int) Version {
	return Version{
		kind:  KindDated,
		year:  year,
		month: month,
		day:   day,
		key:   Key{eraDated, int64(year), int64(month), int64(day), 0},
	}
}

// Target names the semantic release a development snapshot is working toward.
// The flat form (TargetTo) inherits its major number from the snapshot's base
// release when the Post constructor resolves it; the triple form
// (TargetTriple) spells the whole group out. Both forms yield identical
// ordering given equivalent numeric content.
type Target struct {
	major, minor, patch int
	explicit            bool
}

// TargetTo returns the flat (minor, patch) target form. The major number is
// taken from the base release at construction time.
func TargetTo(minor, patch int) Target {
	return Target{minor: minor, patch: patch}
}

// TargetTriple returns the fully spelled ((major, minor), patch) target form.
func TargetTriple(major, minor, patch int) Target {
	return Target{major: major, minor: minor, patch: patch, explicit: true}
}

// Post returns the development snapshot built after base, working toward
// target, with revision disambiguating successive snapshots aimed at the same
// target. The snapshot orders strictly after base and strictly before the
// semantic release equal to target; against anything else it orders exactly
// as that bounding interval does.
//
// base must itself be a semantic release and target must resolve strictly
// after base; violating either panics, since a silently wrong ordering key
// would be a correctness bug rather than a recoverable condition.
func Post(base Version, target Target, revision int) Version {
	if base.kind != KindSemantic {
		panic(fmt.Sprintf("version: Post base must be a semantic release, got %s (%s)", base.kind, base))
	}
	tMajor := target.major
	if !target.explicit {
		tMajor = base.major
	}
	targetKey := semanticKey(tMajor, target.minor, target.patch)
	if targetKey.Compare(base.key) <= 0 {
		panic(fmt.Sprintf("version: Post target %d.%d.%d does not follow base %s",
			tMajor, target.minor, target.patch, base))
	}
	key := targetKey
	key[4] = int64(revision) - revisionBias
	return Version{
		kind:      KindPost,
		major:     tMajor,
		minor:     target.minor,
		patch:     target.patch,
		baseMajor: base.major,
		baseMinor: base.minor,
		basePatch: base.patch,
		revision:  revision,
		key:       key,
	}
}

func semanticKey(major, minor, patch int) Key {
	era := eraModern
	if major == 0 && minor < 1 {
		// Everything below 0.1.0 predates the dated beta period; 0.1.0 is
		// the documented switch back to release numbering.
		era = eraEarly
	}
	return Key{era, int64(major), int64(minor), int64(patch), 0}
}

// Kind reports which numbering scheme the version belongs to.
func (v Version) Kind() Kind { return v.kind }

// Key returns the precomputed comparison key. It never re-derives state.
func (v Version) Key() Key { return v.key }

// Compare returns -1, 0, or 1 as v orders before, equal to, or after other on
// the release timeline.
func (v Version) Compare(other Version) int { return v.key.Compare(other.key) }

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether v and other occupy the same point on the timeline.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// AtLeast reports whether v is other or anything newer. This is the branch
// most callers want when gating behavior on a milestone.
func (v Version) AtLeast(other Version) bool { return v.Compare(other) >= 0 }

// String returns the deterministic, locale-independent display form:
// "0.8.0" for semantic releases, "2023-01-30" for dated ones, and
// "post-v0.8.0 nightly N" for development snapshots. The display form is for
// presentation only and never participates in ordering.
func (v Version) String() string {
	switch v.kind {
	case KindSemantic:
		return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	case KindDated:
		return fmt.Sprintf("%04d-%02d-%02d", v.year, v.month, v.day)
	case KindPost:
		return fmt.Sprintf("post-v%d.%d.%d nightly %d", v.baseMajor, v.baseMinor, v.basePatch, v.revision)
	default:
		panic(fmt.Sprintf("version: unknown kind %d", v.kind))
	}
}

// Components returns the version's numeric components for structural
// inspection. The layout is fixed per kind:
//
//	semantic: [major, minor, patch]
//	dated:    [year, month, day]
//	post:     [target major, target minor, target patch, revision]
//
// Indices carry no meaning across kinds beyond the layouts above. The slice
// is a fresh copy on every call.
func (v Version) Components() []int {
	switch v.kind {
	case KindSemantic:
		return []int{v.major, v.minor, v.patch}
	case KindDated:
		return []int{v.year, v.month, v.day}
	case KindPost:
		return []int{v.major, v.minor, v.patch, v.revision}
	default:
		panic(fmt.Sprintf("version: unknown kind %d", v.kind))
	}
}
