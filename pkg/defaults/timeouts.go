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

package defaults

import "time"

// Executor timeouts for compiler runs.
const (
	// CompileTimeout bounds a single compile of the sample document. Old
	// compilers are slow on cold caches, so this is generous.
	CompileTimeout = 2 * time.Minute

	// VersionProbeTimeout bounds the --version query against a compiler.
	VersionProbeTimeout = 10 * time.Second

	// ExtractTimeout bounds unpacking the compiler archive.
	ExtractTimeout = 5 * time.Minute
)

// Concurrency limits.
const (
	// RunConcurrency is the default number of compilers exercised in
	// parallel. Compiles are CPU-bound, so this stays modest.
	RunConcurrency = 4
)
