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

import "fmt"

// ValidateRequest validates a merge request according to domain rules.
//
// Validation rules:
//   - OutputFile must not be empty
//   - DocumentSets must not be empty
//   - every set must pass ValidateDocumentSet
//   - set names must be unique within the request
//
// Per-document problems (missing files, unreadable content) are NOT
// validated here; they surface as per-set failures inside the pipeline.
func ValidateRequest(req MergeRequest) error {
	if req.OutputFile == "" {
		return ErrNoOutputFile
	}
	if len(req.DocumentSets) == 0 {
		return ErrNoDocumentSets
	}

	seen := make(map[string]struct{}, len(req.DocumentSets))
	for _, set := range req.DocumentSets {
		if err := ValidateDocumentSet(set); err != nil {
			return err
		}
		if _, ok := seen[set.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateSetName, set.Name)
		}
		seen[set.Name] = struct{}{}
	}
	return nil
}

// ValidateDocumentSet validates a single document set.
func ValidateDocumentSet(set DocumentSet) error {
	if set.Name == "" {
		return ErrEmptySetName
	}
	if len(set.Documents) == 0 {
		return fmt.Errorf("%w: set %q", ErrNoDocuments, set.Name)
	}
	return nil
}
