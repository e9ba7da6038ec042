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

// Milestone catalog. One constant per historical release of the compiler,
// constructed once at package initialization and never mutated. Adding a new
// milestone is a source edit here, not a runtime registration.
var (
	// The dated beta line. These shipped before any semantic release and
	// V2023_03_21 marks the documented transition point back to release
	// numbering: 0.1.0 is the first release after it.
	V2023_01_30 = Dated(2023, 1, 30)
	V2023_02_25 = Dated(2023, 2, 25)
	V2023_03_21 = Dated(2023, 3, 21)

	// The semantic line from the switch back onward.
	V0_1_0  = Semantic(0, 1, 0)
	V0_2_0  = Semantic(0, 2, 0)
	V0_3_0  = Semantic(0, 3, 0)
	V0_4_0  = Semantic(0, 4, 0)
	V0_5_0  = Semantic(0, 5, 0)
	V0_6_0  = Semantic(0, 6, 0)
	V0_7_0  = Semantic(0, 7, 0)
	V0_8_0  = Semantic(0, 8, 0)
	V0_9_0  = Semantic(0, 9, 0)
	V0_10_0 = Semantic(0, 10, 0)
	V0_11_0 = Semantic(0, 11, 0)
	V0_11_1 = Semantic(0, 11, 1)
	V0_12_0 = Semantic(0, 12, 0)
)

// PostV0_8_0 returns a nightly built after the 0.8.0 release, working toward
// target with the given revision counter.
func PostV0_8_0(target Target, revision int) Version {
	return Post(V0_8_0, target, revision)
}

// PostV0_12_0 returns a nightly built after the 0.12.0 release.
func PostV0_12_0(target Target, revision int) Version {
	return Post(V0_12_0, target, revision)
}

// Milestones returns the full catalog in chronological order. The slice is a
// fresh copy on every call; the constants themselves are never exposed for
// mutation through it.
func Milestones() []Version {
	return []Version{
		V2023_01_30,
		V2023_02_25,
		V2023_03_21,
		V0_1_0,
		V0_2_0,
		V0_3_0,
		V0_4_0,
		V0_5_0,
		V0_6_0,
		V0_7_0,
		V0_8_0,
		V0_9_0,
		V0_10_0,
		V0_11_0,
		V0_11_1,
		V0_12_0,
	}
}
