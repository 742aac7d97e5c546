// Copyright 2025 Poiesic Systems
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


package merge

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/docmerge/ai"
	"github.com/poiesic/docmerge/core"
	"github.com/poiesic/docmerge/extract"
)

// setPipeline processes a single document set end to end.
type setPipeline struct {
	normalizer *extract.Normalizer
	gateway    *ai.Gateway
	maxLength  int
	logger     *slog.Logger
}

// run normalizes the set's documents in parallel, concatenates them in
// set order, summarizes when requested, and assembles the section.
// Any error means the whole set failed.
func (p *setPipeline) run(ctx context.Context, set core.DocumentSet, ordinal int, providerUp bool) (core.Section, error) {
	content, err := p.normalizeAll(ctx, set)
	if err != nil {
		return core.Section{}, err
	}

	summary, note, err := p.summarize(ctx, set, content, providerUp)
	if err != nil {
		return core.Section{}, err
	}

	section := Assemble(set, content, summary, ordinal)
	if section.Note == "" {
		section.Note = note
	}
	return section, nil
}

// normalizeAll fans the set's documents out over an errgroup with
// indexed result slots so document order survives the concurrency.
func (p *setPipeline) normalizeAll(ctx context.Context, set core.DocumentSet) (core.NormalizedContent, error) {
	contents := make([]core.NormalizedContent, len(set.Documents))

	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range set.Documents {
		g.Go(func() error {
			normalized, err := p.normalizer.Normalize(gctx, doc.Path)
			if err != nil {
				return err
			}
			contents[i] = normalized
			return nil
		})
	}

	var combined core.NormalizedContent
	if err := g.Wait(); err != nil {
		return combined, err
	}

	for _, content := range contents {
		combined.Append(content.Blocks...)
	}
	return combined, nil
}

// summarize runs the optional summarization step. An unavailable or
// failing provider fails the set only when the summary is mandatory;
// otherwise the section carries a note instead.
func (p *setPipeline) summarize(ctx context.Context, set core.DocumentSet, content core.NormalizedContent, providerUp bool) (*core.SummaryResult, string, error) {
	if !set.WantsSummary() || p.gateway == nil {
		return nil, "", nil
	}

	if !providerUp {
		if set.SummaryRequired {
			return nil, "", &core.ProviderUnavailableError{Provider: p.gateway.Provider()}
		}
		p.logger.Warn("skipping optional summary, provider unavailable",
			"set", set.Name, "provider", p.gateway.Provider())
		return nil, fmt.Sprintf("summary skipped: provider %s unavailable", p.gateway.Provider()), nil
	}

	summary, err := p.gateway.Summarize(ctx, content, set.SummaryType, p.maxLength)
	if err != nil {
		if set.SummaryRequired {
			return nil, "", err
		}
		p.logger.Warn("optional summary failed", "set", set.Name, "err", err)
		return nil, fmt.Sprintf("summary unavailable: %v", err), nil
	}
	return summary, "", nil
}
