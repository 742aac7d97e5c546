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


// Package extract turns source documents into normalized content.
//
// Extraction happens in two stages. A Reader pulls raw content out of
// the on-disk format: plain text directly, PDF text via the pdf
// library, and the zip-packaged Office formats (docx, pptx) as an HTML
// intermediate. An Extractor then walks the raw content and produces
// the ordered block sequence the rest of the pipeline consumes.
//
// Styling, fonts, images and embedded media are discarded; only
// headings, paragraphs and tables survive normalization.
package extract
