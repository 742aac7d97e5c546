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


// Package ai provides the summarization provider gateway for docmerge.
//
// The package defines the Summarizer capability interface, a retry
// policy value object with transient/permanent failure classification,
// and a Gateway that wraps one configured provider with retry and
// backoff. It follows the dependency inversion principle: the merge
// pipeline depends on these abstractions, never on a concrete backend.
//
// # Implementation Packages
//
//   - ai/openai: hosted OpenAI and local OpenAI-compatible servers
//   - ai/googleai: hosted Gemini with a direct-HTTP fallback
//   - ai/mock: test doubles for unit testing without network access
//
// Provider constructors return the Summarizer interface to enforce
// abstraction; mock constructors return concrete types so tests can
// inject behavior and assert call counts.
//
// # Usage
//
//	cfg := ai.NewConfig(ai.WithProvider(ai.ProviderLocal))
//	summarizer, err := openai.NewSummarizer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gateway, err := ai.NewGateway(summarizer)
//	result, err := gateway.Summarize(ctx, content, core.SummaryExecutive, 1000)
package ai
