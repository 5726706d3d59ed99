package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"foodrush/config"
	"foodrush/models"
	"foodrush/repositories"

	"golang.org/x/sync/singleflight"
)

const menuCacheTTL = 5 * time.Minute

type MenuService struct {
	menuRepo *repositories.MenuRepository
	sfg      singleflight.Group
}

func NewMenuService() *MenuService {
	return &MenuService{
		menuRepo: repositories.NewMenuRepository(),
	}
}

// GetMenu serves a restaurant's menu from Redis when possible, falling back to
// the database behind a singleflight group so one restaurant's cache miss
// results in a single query no matter how many readers arrive at once.
func (s *MenuService) GetMenu(restaurantID int) ([]models.MenuItem, error) {
	key := menuCacheKey(restaurantID)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(context.Background(), key).Result()
		if err == nil {
			var items []models.MenuItem
			if jsonErr := json.Unmarshal([]byte(cached), &items); jsonErr == nil {
				return items, nil
			}
		}
	}

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		items, err := s.menuRepo.FindByRestaurant(restaurantID)
		if err != nil {
			return nil, err
		}

		if config.RedisClient != nil {
			if payload, jsonErr := json.Marshal(items); jsonErr == nil {
				if setErr := config.RedisClient.Set(context.Background(), key, payload, menuCacheTTL).Err(); setErr != nil {
					log.Printf("menu cache set error: %v", setErr)
				}
			}
		}

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.MenuItem), nil
}

func (s *MenuService) GetItem(id int) (*models.MenuItem, error) {
	return s.menuRepo.FindItemByID(id)
}

func (s *MenuService) CreateItem(item *models.MenuItem) error {
	if err := s.menuRepo.CreateItem(item); err != nil {
		return err
	}
	s.invalidateMenu(item.RestaurantID)
	return nil
}

func (s *MenuService) UpdateItem(item *models.MenuItem) error {
	if err := s.menuRepo.UpdateItem(item); err != nil {
		return err
	}
	s.invalidateMenu(item.RestaurantID)
	return nil
}

func (s *MenuService) DeleteItem(item *models.MenuItem) error {
	if err := s.menuRepo.DeleteItem(item.ID); err != nil {
		return err
	}
	s.invalidateMenu(item.RestaurantID)
	return nil
}

func (s *MenuService) invalidateMenu(restaurantID int) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(context.Background(), menuCacheKey(restaurantID)).Err(); err != nil {
		log.Printf("menu cache invalidate error: %v", err)
	}
}

func menuCacheKey(restaurantID int) string {
	return fmt.Sprintf("menu:%d", restaurantID)
}
