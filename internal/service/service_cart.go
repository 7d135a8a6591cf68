package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/store"
	"github.com/MKhiriev/culinary-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cartService struct {
	cartRepository store.CartRepository
	logger         *logger.Logger
}

func NewCartService(cartRepository store.CartRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository: cartRepository,
		logger:         logger,
	}
}

// AddItem stores item under a fresh id. The class it refers to travels in
// ClassID.
func (s *cartService) AddItem(ctx context.Context, item models.CartItem) (models.InsertResult, error) {
	item.ID = primitive.NilObjectID

	res, err := s.cartRepository.AddCartItem(ctx, item)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("error adding cart item: %w", err)
	}

	return res, nil
}

func (s *cartService) GetItems(ctx context.Context, email string) ([]models.CartItem, error) {
	items, err := s.cartRepository.FindCartItems(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing cart items: %w", err)
	}

	return items, nil
}

func (s *cartService) RemoveItem(ctx context.Context, id, email string) (models.DeleteResult, error) {
	res, err := s.cartRepository.DeleteCartItem(ctx, id, email)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("error removing cart item: %w", err)
	}

	return res, nil
}
