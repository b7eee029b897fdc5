package models

type BulkImportRequest struct {
	Products       []ProductInput `json:"products" validate:"required,dive"`
	SkipDuplicates *bool          `json:"skipDuplicates,omitempty"`
}

// ShouldSkipDuplicates defaults to true when the flag is omitted.
func (r BulkImportRequest) ShouldSkipDuplicates() bool {
	return r.SkipDuplicates == nil || *r.SkipDuplicates
}

type BulkImportError struct {
	SKU   string `json:"sku"`
	Error string `json:"error"`
}

type BulkImportResults struct {
	Total    int               `json:"total"`
	Inserted int               `json:"inserted"`
	Skipped  int               `json:"skipped"`
	Errors   []BulkImportError `json:"errors"`
}

type BulkImportResponse struct {
	OK      bool              `json:"ok"`
	Count   int               `json:"count"`
	Results BulkImportResults `json:"results"`
}
