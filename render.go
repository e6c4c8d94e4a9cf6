package promptprune

import "github.com/vippsas/promptprune/internal/render"

// RenderImage rasterizes an already-compressed CompressionResult to a PNG
// image, setting Format and ImageBytes. It is a separate, explicit step
// from Compress — the core text pipeline never produces image output on
// its own (spec.md §1 names rasterization an out-of-scope external
// collaborator) — and returns RenderError, the one error kind §7 scopes to
// this path, on failure.
func RenderImage(result CompressionResult) (CompressionResult, error) {
	data, err := render.PNG(result.Compressed)
	if err != nil {
		return CompressionResult{}, RenderError{Cause: err}
	}
	result.Format = FormatImage
	result.ImageBytes = data
	return result, nil
}
