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


package extract

import (
	"context"
	"log/slog"

	"github.com/poiesic/docmerge/core"
)

// Normalizer routes a source document through the reader and the
// extractor registered for its format.
type Normalizer struct {
	reader     Reader
	extractors map[core.Format]Extractor
	logger     *slog.Logger
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithReader replaces the filesystem reader. Tests use this to feed
// in-memory content through the pipeline.
func WithReader(reader Reader) NormalizerOption {
	return func(n *Normalizer) {
		n.reader = reader
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if logger == nil {
			logger = slog.Default()
		}
		n.logger = logger
	}
}

// NewNormalizer creates a Normalizer with the standard format
// registry.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		reader: OSReader{},
		extractors: map[core.Format]Extractor{
			core.FormatTxt:  TextExtractor{},
			core.FormatPDF:  PDFExtractor{},
			core.FormatDocx: HTMLExtractor{},
			core.FormatPptx: HTMLExtractor{},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize reads and extracts a single document. Unsupported
// extensions return *core.UnsupportedFormatError; read or parse
// failures return *core.DocumentReadError. An empty document yields
// empty content, not an error.
func (n *Normalizer) Normalize(ctx context.Context, path string) (core.NormalizedContent, error) {
	var content core.NormalizedContent

	if err := ctx.Err(); err != nil {
		return content, err
	}

	format, err := core.ParseFormat(path)
	if err != nil {
		return content, err
	}

	raw, err := n.reader.Read(path, format)
	if err != nil {
		n.logger.Debug("document read failed", "path", path, "err", err)
		return content, &core.DocumentReadError{Path: path, Err: err}
	}

	extractor, ok := n.extractors[format]
	if !ok {
		return content, &core.UnsupportedFormatError{Ext: format.String()}
	}

	blocks, err := extractor.ExtractBlocks(raw)
	if err != nil {
		return content, &core.DocumentReadError{Path: path, Err: err}
	}

	content.Append(blocks...)
	return content, nil
}
