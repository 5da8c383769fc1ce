package usecase

import (
	"home-inventory/internal/item/repository"
	"home-inventory/pkg/imagestore"
	"home-inventory/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo   repository.Repository
	images imagestore.Store
	l      log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, images imagestore.Store, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		images: images,
		l:      l,
	}
}
