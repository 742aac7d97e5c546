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


// Package merge runs document sets through normalization,
// summarization and assembly, concurrently and with per-set failure
// isolation.
//
// The Orchestrator fans document sets out over a bounded worker pool.
// Each set runs an independent pipeline: its documents are normalized
// in parallel, concatenated in order, optionally summarized through
// the gateway, and assembled into a numbered Section. A failing set
// lands in MergeResult.Failures and never disturbs its siblings.
package merge
