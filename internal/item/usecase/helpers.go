package usecase

import (
	"context"
	"mime/multipart"
)

// coalesce returns the first non-empty string — used for partial updates.
// If new value is provided, use it; otherwise fall back to the existing value.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// saveImages stores each uploaded file and returns the resulting refs in
// upload order.
func (uc *implUseCase) saveImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	refs := make([]string, 0, len(files))
	for _, f := range files {
		ref, err := uc.images.Save(ctx, f)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
