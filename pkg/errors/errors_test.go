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

package errors

import (
	stderrors "errors"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeMismatch, "documents differ"),
			want: "[MISMATCH] documents differ",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeCompileFailed, "compile failed", stderrors.New("exit status 1")),
			want: "[COMPILE_FAILED] compile failed: exit status 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := stderrors.New("exit status 1")
	err := Wrap(ErrCodeCompileFailed, "compile failed", cause)
	if !stderrors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}

	var se *StructuredError
	if !stderrors.As(err, &se) || se.Code != ErrCodeCompileFailed {
		t.Errorf("errors.As should recover the structured error")
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeMismatch, "documents differ", map[string]any{
		"refDigest": "abc",
		"cmpDigest": "def",
	})
	if err.Context["refDigest"] != "abc" {
		t.Errorf("context not preserved: %v", err.Context)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeTimeout, "deadline")); got != ErrCodeTimeout {
		t.Errorf("CodeOf = %v, want %v", got, ErrCodeTimeout)
	}
	if got := CodeOf(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf(plain) = %v, want %v", got, ErrCodeInternal)
	}
}
