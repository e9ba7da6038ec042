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

package executor

import "github.com/TheLukeGuy/backtrack/pkg/errors"

// Op identifies which operation a run performs against each compiler.
type Op string

const (
	// OpGenRefs compiles the sample with each compiler and stores the
	// result as that compiler's reference document.
	OpGenRefs Op = "gen-refs"
	// OpTest compiles the sample with each compiler and compares the result
	// against the stored reference document.
	OpTest Op = "test"
)

// Status classifies the outcome of one compiler run.
type Status string

const (
	// StatusOK means the operation completed and, for tests, matched.
	StatusOK Status = "ok"
	// StatusError means the operation failed before a comparison happened.
	StatusError Status = "error"
	// StatusMismatch means the compiled document differs from the reference.
	StatusMismatch Status = "mismatch"
)

// Result is the outcome of one compiler run within a report.
type Result struct {
	Compiler string `json:"compiler" yaml:"compiler"`
	// Version is the milestone the binary corresponds to, in display form.
	Version string `json:"version" yaml:"version"`
	// Reported is what the binary printed for --version, when supported.
	Reported string           `json:"reported,omitempty" yaml:"reported,omitempty"`
	Status   Status           `json:"status" yaml:"status"`
	Code     errors.ErrorCode `json:"code,omitempty" yaml:"code,omitempty"`
	Detail   string           `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Digests are populated on mismatches so failures can be chased down
	// from the serialized report alone.
	RefDigest string `json:"refDigest,omitempty" yaml:"refDigest,omitempty"`
	CmpDigest string `json:"cmpDigest,omitempty" yaml:"cmpDigest,omitempty"`
}

// Report is the outcome of a whole run, in compiler timeline order.
type Report struct {
	RunID   string   `json:"runId" yaml:"runId"`
	Op      Op       `json:"op" yaml:"op"`
	Results []Result `json:"results" yaml:"results"`
	Success bool     `json:"success" yaml:"success"`
}
