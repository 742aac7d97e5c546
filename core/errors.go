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


package core

import (
	"errors"
	"fmt"
)

// Structural request errors. These fail the whole merge before any
// pipeline starts.
var (
	// ErrNoDocumentSets indicates a request with an empty set list.
	ErrNoDocumentSets = errors.New("merge request has no document sets")

	// ErrNoOutputFile indicates a request without an output file name.
	ErrNoOutputFile = errors.New("merge request has no output file")

	// ErrEmptySetName indicates a document set with an empty name.
	ErrEmptySetName = errors.New("document set name cannot be empty")

	// ErrNoDocuments indicates a document set with no documents.
	ErrNoDocuments = errors.New("document set has no documents")

	// ErrDuplicateSetName indicates two sets share a name.
	ErrDuplicateSetName = errors.New("duplicate document set name")

	// ErrInvalidSummaryType indicates an unknown summary type name.
	ErrInvalidSummaryType = errors.New("invalid summary type")
)

// ErrPipelineTimeout marks a set pipeline abandoned at the global
// deadline.
var ErrPipelineTimeout = errors.New("pipeline abandoned at deadline")

// UnsupportedFormatError is a permanent per-document failure for file
// extensions outside the supported set.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q", e.Ext)
}

// DocumentReadError is a permanent per-document failure carrying the
// offending path.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("reading document %s: %v", e.Path, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// SummarizationError is the terminal failure of a summarization call,
// either immediately for a permanent cause or after retries exhausted
// a transient one.
type SummarizationError struct {
	Attempts int
	Cause    error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization failed after %d attempt(s): %v", e.Attempts, e.Cause)
}

func (e *SummarizationError) Unwrap() error {
	return e.Cause
}

// ProviderUnavailableError indicates the configured summarization
// provider failed its availability probe.
type ProviderUnavailableError struct {
	Provider string
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("summarization provider %q is not available", e.Provider)
}
