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

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// TerminalWidth returns the width of the attached terminal, or 80 when
// stdout is not a terminal.
func TerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// Render writes the human-readable run summary: a banner and one padded line
// per compiler, in timeline order.
func Render(w io.Writer, report *Report, width int) {
	if width < 16 {
		width = 16
	}
	separator := strings.Repeat("-", width)

	fmt.Fprintln(w, separator)
	if report.Success {
		fmt.Fprintln(w, successBanner.Render("RUN SUCCESS"))
	} else {
		fmt.Fprintln(w, failureBanner.Render("RUN FAILURE"))
	}
	fmt.Fprintln(w, separator)

	longest := 0
	for _, r := range report.Results {
		if len(r.Compiler) > longest {
			longest = len(r.Compiler)
		}
	}
	for _, r := range report.Results {
		fmt.Fprintf(w, "%-*s | %s\n", longest, r.Compiler, renderStatus(r))
	}

	if hasMismatch(report) {
		fmt.Fprintln(w, separator)
		fmt.Fprintln(w, "Compiled documents from the failed tests are kept in the run directory.")
	}
}

func renderStatus(r Result) string {
	switch r.Status {
	case StatusOK:
		return okStyle.Render("OK")
	case StatusMismatch:
		return mismatchStyle.Render("Mismatch")
	default:
		if r.Code != "" {
			return errorStyle.Render(fmt.Sprintf("Error (%s)", r.Code))
		}
		return errorStyle.Render("Error")
	}
}

func hasMismatch(report *Report) bool {
	for _, r := range report.Results {
		if r.Status == StatusMismatch {
			return true
		}
	}
	return false
}
