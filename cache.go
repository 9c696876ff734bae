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
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/cybrota/arbor/console"
)

const (
	// Rendered pages depend on the terminal width, so keep them briefly
	helpCacheExpiration = 30 * time.Minute
	helpCacheCleanup    = 5 * time.Minute
)

// NewOptimizedHelpCache creates a cache optimized for help text storage
func NewOptimizedHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func CacheHelpPage(c *cache.Cache, name string, helpTxt string) {
	c.Set(name, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, name string) string {
	val, ok := c.Get(name)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillHelp returns the rendered help page for h, rendering and caching
// it on a miss. A nil renderer or a render failure yields the raw markdown.
func GetOrFillHelp(c *cache.Cache, h console.Handler, r *glamour.TermRenderer) string {
	if page := GetHelpPage(c, h.Name()); page != "" {
		return page
	}

	page, err := getStructureHelp(h)
	if err != nil {
		return err.Error()
	}
	if r != nil {
		if rendered, err := r.Render(page); err == nil {
			page = rendered
		} else {
			log.Debug().Err(err).Str("structure", h.Name()).Msg("help page left as markdown")
		}
	}

	CacheHelpPage(c, h.Name(), page)
	return page
}
