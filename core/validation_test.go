package core

import (
	"errors"
	"testing"
)

func validSet(name string) DocumentSet {
	return DocumentSet{
		Name: name,
		Documents: []SourceDocument{
			{Path: "a.txt", Format: FormatTxt},
		},
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     MergeRequest
		wantErr error
	}{
		{
			name: "valid request",
			req: MergeRequest{
				OutputFile:   "merged.md",
				DocumentSets: []DocumentSet{validSet("Intro"), validSet("Body")},
			},
			wantErr: nil,
		},
		{
			name: "missing output file",
			req: MergeRequest{
				DocumentSets: []DocumentSet{validSet("Intro")},
			},
			wantErr: ErrNoOutputFile,
		},
		{
			name:    "no document sets",
			req:     MergeRequest{OutputFile: "merged.md"},
			wantErr: ErrNoDocumentSets,
		},
		{
			name: "empty set name",
			req: MergeRequest{
				OutputFile:   "merged.md",
				DocumentSets: []DocumentSet{validSet("")},
			},
			wantErr: ErrEmptySetName,
		},
		{
			name: "set without documents",
			req: MergeRequest{
				OutputFile:   "merged.md",
				DocumentSets: []DocumentSet{{Name: "Empty"}},
			},
			wantErr: ErrNoDocuments,
		},
		{
			name: "duplicate set names",
			req: MergeRequest{
				OutputFile:   "merged.md",
				DocumentSets: []DocumentSet{validSet("Intro"), validSet("Intro")},
			},
			wantErr: ErrDuplicateSetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateRequest() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateRequest() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
