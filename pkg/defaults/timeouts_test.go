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

import "testing"

func TestTimeoutsSane(t *testing.T) {
	if CompileTimeout <= VersionProbeTimeout {
		t.Errorf("a compile should be allowed more time than a version probe")
	}
	if RunConcurrency < 1 {
		t.Errorf("RunConcurrency must be at least 1, got %d", RunConcurrency)
	}
}
