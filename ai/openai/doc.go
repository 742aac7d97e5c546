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


// Package openai provides summarization using OpenAI-compatible APIs.
//
// This package implements the ai.Summarizer interface using the
// langchaingo library. One configuration covers two provider
// identifiers: "openai" for the hosted API (credential required) and
// "local" for OpenAI-compatible inference servers such as Ollama,
// LocalAI, or vLLM (no credential, base URL required).
//
// # Usage
//
//	config := ai.NewConfig(
//	    ai.WithProvider(ai.ProviderLocal),
//	    ai.WithHost("http://localhost:11434"), // /v1 added automatically
//	    ai.WithModel("qwen2.5:3b"),
//	)
//
//	summarizer, err := openai.NewSummarizer(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer summarizer.Close()
package openai
