// Copyright 2025 Naren Yellavula
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

package main

import "testing"

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		theme     string
		want      TerminalMode
	}{
		{"dark background", "15;0", "", TerminalModeDark},
		{"light background", "0;15", "", TerminalModeLight},
		{"theme variable", "", "Solarized-Light", TerminalModeLight},
		{"nothing set", "", "", TerminalModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfgbg)
			t.Setenv("TERM_THEME", tt.theme)
			t.Setenv("THEME", "")
			if got := detectTerminalMode(); got != tt.want {
				t.Errorf("detectTerminalMode() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestGetANSIColorsFollowsMode(t *testing.T) {
	defer func(mode TerminalMode) { detectedMode = mode }(detectedMode)

	detectedMode = TerminalModeLight
	success, _, _, _, reset := GetANSIColors()
	if success != "\033[32m" || reset != "\033[0m" {
		t.Errorf("light mode success = %q", success)
	}

	detectedMode = TerminalModeDark
	if success, _, _, _, _ := GetANSIColors(); success != "\033[92m" {
		t.Errorf("dark mode success = %q", success)
	}
}
