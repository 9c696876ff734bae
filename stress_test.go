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

import (
	"bytes"
	"context"
	"testing"
)

func TestRunStress(t *testing.T) {
	var out bytes.Buffer
	report, err := runStress(context.Background(), StressOptions{
		Ops:           5000,
		Readers:       3,
		MaxValue:      200,
		Seed:          7,
		ValidateEvery: 250,
		ShowProgress:  true,
		Out:           &out,
	})
	if err != nil {
		t.Fatalf("runStress() returned error: %v", err)
	}

	if report.Inserts+report.Deletes+report.Misses != 5000 {
		t.Errorf("ops do not add up: %+v", report)
	}
	if report.Size != report.Inserts-report.Deletes {
		t.Errorf("size %d; want %d", report.Size, report.Inserts-report.Deletes)
	}
	if report.Checks != 20 {
		t.Errorf("checks = %d; want 20", report.Checks)
	}
	if out.Len() == 0 {
		t.Error("no progress written")
	}
}

func TestRunStressRejectsNoOps(t *testing.T) {
	if _, err := runStress(context.Background(), StressOptions{}); err == nil {
		t.Error("expected error for zero ops")
	}
}

func TestRunStressRejectsNegativeReaders(t *testing.T) {
	if _, err := runStress(context.Background(), StressOptions{Ops: 10, Readers: -1}); err == nil {
		t.Error("expected error for negative readers")
	}
}

func TestRunStressCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := runStress(ctx, StressOptions{Ops: 1000, Readers: 2}); err == nil {
		t.Error("expected the cancelled context to stop the run")
	}
}
