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
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/cybrota/arbor/avl"
)

type StressOptions struct {
	Ops           int
	Readers       int
	MaxValue      int64
	Seed          int64
	ValidateEvery int
	ShowProgress  bool
	Out           io.Writer
}

type StressReport struct {
	Inserts  int
	Deletes  int
	Misses   int
	Reads    int64
	Size     int
	Height   int
	Checks   int
	Expected int
}

// runStress drives one writer that inserts and deletes random values while
// opts.Readers goroutines search and traverse the same tree. The writer
// validates the tree every ValidateEvery operations and stops at the first
// violation.
func runStress(ctx context.Context, opts StressOptions) (*StressReport, error) {
	if opts.Ops <= 0 {
		return nil, fmt.Errorf("ops must be positive, got %d", opts.Ops)
	}
	if opts.Readers < 0 {
		return nil, fmt.Errorf("readers must not be negative, got %d", opts.Readers)
	}
	if opts.MaxValue <= 0 {
		opts.MaxValue = 1000
	}
	if opts.ValidateEvery <= 0 {
		opts.ValidateEvery = 1000
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	tree := avl.NewSync[int64]()
	report := &StressReport{}
	counts := make(map[int64]int)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(opts.Ops,
			progressbar.OptionSetWriter(opts.Out),
			progressbar.OptionSetDescription("🌳 Rebalancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	reads := make([]int64, opts.Readers)

	g.Go(func() error {
		defer close(done)
		rng := rand.New(rand.NewSource(opts.Seed))

		for i := 1; i <= opts.Ops; i++ {
			if err := gctx.Err(); err != nil {
				return err
			}

			v := rng.Int63n(opts.MaxValue)
			if rng.Intn(3) == 0 {
				found := tree.Delete(v)
				if found != (counts[v] > 0) {
					return fmt.Errorf("op %d: delete(%d) reported %t with %d copies stored", i, v, found, counts[v])
				}
				if found {
					counts[v]--
					report.Deletes++
				} else {
					report.Misses++
				}
			} else {
				tree.Insert(v)
				counts[v]++
				report.Inserts++
			}

			if i%opts.ValidateEvery == 0 || i == opts.Ops {
				report.Checks++
				if err := tree.Validate(); err != nil {
					return fmt.Errorf("op %d: %w", i, err)
				}
			}
			if bar != nil {
				bar.Add(1)
			}
		}
		return nil
	})

	for r := range opts.Readers {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.Seed + int64(r) + 1))
			for {
				select {
				case <-done:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if rng.Intn(64) == 0 {
					tree.Traverse(avl.InOrder)
				} else {
					tree.Search(rng.Int63n(opts.MaxValue))
				}
				reads[r]++
			}
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("stress run failed")
		return report, err
	}
	if bar != nil {
		bar.Finish()
	}

	for _, n := range reads {
		report.Reads += n
	}
	for _, n := range counts {
		report.Expected += n
	}
	report.Size = tree.Len()
	if report.Size != report.Expected {
		return report, fmt.Errorf("tree holds %d values, expected %d", report.Size, report.Expected)
	}
	report.Height = tree.Height()

	log.Info().
		Int("inserts", report.Inserts).
		Int("deletes", report.Deletes).
		Int64("reads", report.Reads).
		Int("size", report.Size).
		Int("height", report.Height).
		Msg("stress run finished")
	return report, nil
}
