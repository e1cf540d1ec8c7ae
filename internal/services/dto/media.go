package dto

import "io"

// UploadFile abstracts a file source so the multipart upload handler and the
// directory importer share one pipeline.
type UploadFile struct {
	OriginalName string
	Size         int64
	Open         func() (io.ReadCloser, error)
}

// UploadItem is one file plus its optional metadata overrides.
type UploadItem struct {
	File        UploadFile
	Title       string
	Description string
	AltText     string
	IsFeatured  bool
	SortOrder   int
}

// UploadRequest is a batch of files sharing one category.
type UploadRequest struct {
	Category string `json:"category" validate:"required,media-category"`
	Items    []UploadItem
}

// UploadResult summarizes a batch upload. A partially failed batch is still
// an HTTP success; Errors carries the per-file reasons.
type UploadResult struct {
	Uploaded int      `json:"uploaded"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// UpdateMediaRequest is the metadata-edit payload. Category and type are not
// represented here: the allow-list is the struct itself.
type UpdateMediaRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	AltText     *string `json:"alt_text" validate:"omitempty,max=255"`
	IsFeatured  *bool   `json:"is_featured"`
	SortOrder   *int    `json:"sort_order"`
}

// BulkDeleteRequest carries the ids to delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// BulkDeleteResult summarizes a bulk deletion.
type BulkDeleteResult struct {
	Deleted int      `json:"deleted"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportRequest points the importer at a server-local directory.
type ImportRequest struct {
	DirectoryPath string `json:"directory_path" validate:"required"`
	Category      string `json:"category" validate:"required,media-category"`
}

// BulkImportRequest imports category subdirectories of a base directory.
type BulkImportRequest struct {
	BaseDirectory string `json:"base_directory" validate:"required"`
}

// ImportResult summarizes a directory import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// BulkImportResult summarizes a bulk import across categories.
type BulkImportResult struct {
	Categories int      `json:"categories"`
	Imported   int      `json:"imported"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}
