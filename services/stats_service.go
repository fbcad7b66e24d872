package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistroboss/models"
)

// StatsService computes the administrative rollups. Counts are cheap
// cardinality estimates, not exact locked counts.
type StatsService struct {
	Users    UserRepo
	Menus    MenuRepo
	Payments PaymentRepo
}

func NewStatsService(users UserRepo, menus MenuRepo, payments PaymentRepo) *StatsService {
	return &StatsService{Users: users, Menus: menus, Payments: payments}
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Payments  int64   `json:"payments"`
	Revenue   float64 `json:"revenue"`
}

func (s *StatsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	users, err := s.Users.CountEstimate(ctx)
	if err != nil {
		return nil, err
	}
	menus, err := s.Menus.CountEstimate(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.CountEstimate(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Payments.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{Users: users, MenuItems: menus, Payments: payments, Revenue: revenue}, nil
}

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// OrderStats expands every payment's menuItemIds against the menu collection
// and groups the joined rows by category. Revenue is the menu item's current
// price, not the price paid at transaction time, so editing a menu item
// shifts historical category revenue. Ids whose menu item no longer exists
// are dropped from the rollup.
func (s *StatsService) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	payments, err := s.Payments.All(ctx)
	if err != nil {
		return nil, err
	}
	menus, err := s.Menus.All(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.MenuItem, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	grouped := make(map[string]*CategoryStat)
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			item, ok := byID[id]
			if !ok {
				continue
			}
			stat, ok := grouped[item.Category]
			if !ok {
				stat = &CategoryStat{Category: item.Category}
				grouped[item.Category] = stat
			}
			stat.Quantity++
			stat.Revenue += item.Price
		}
	}

	result := make([]CategoryStat, 0, len(grouped))
	for _, stat := range grouped {
		result = append(result, *stat)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result, nil
}
