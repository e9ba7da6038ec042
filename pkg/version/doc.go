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

// Package version models the compiler's release history across its three
// historical numbering schemes and orders any two versions by their real
// position on that timeline.
//
// # Numbering schemes
//
// The compiler went through three eras:
//
//   - early semantic releases (anything below 0.1.0)
//   - dated betas identified only by ship date (2023-01-30 through 2023-03-21)
//   - semantic releases again, from 0.1.0 onward
//
// A fourth shape, the post snapshot, represents a nightly built after a
// semantic release and before the release it targets.
//
// # Ordering
//
// Every Version derives a fixed Key at construction. Keys compare
// lexicographically, so versions drawn from different eras still order by
// when they actually shipped:
//
//	version.V2023_01_30.Less(version.V0_1_0)        // true
//	version.V0_3_0.Less(version.V0_8_0)             // true
//	version.Semantic(0, 0, 9).Less(version.V2023_01_30) // true
//
// A post snapshot sits strictly between its base and its target, with the
// revision counter breaking ties between snapshots aimed at the same target:
//
//	n := version.PostV0_8_0(version.TargetTo(9, 0), 4)
//	version.V0_8_0.Less(n) // true
//	n.Less(version.V0_9_0) // true
//
// # Registry
//
// The package-level milestone constants (V2023_01_30 ... V0_12_0) form the
// fixed catalog of known releases. They are plain immutable values built at
// init; client code gates behavior by comparing the running compiler's
// version against them:
//
//	if current.AtLeast(version.V0_7_0) {
//	    // use the layout introduced in 0.7.0
//	}
//
// The package performs no I/O and never parses version strings; the host
// supplies the current version as an already constructed value.
package version
