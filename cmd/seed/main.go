package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hawkerhero/internal/config"
	"hawkerhero/internal/db"
	"hawkerhero/internal/logger"
	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
)

//go:embed catalog.json
var defaultCatalog []byte

const fetchTimeout = 30 * time.Second

// Catalog is the seed document: hawker centers with their stalls and menus.
type Catalog struct {
	Centers []SeedCenter `json:"centers"`
}

// SeedCenter is one hawker center in the seed document.
type SeedCenter struct {
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Facilities string      `json:"facilities"`
	ImageURL   string      `json:"image_url"`
	Stalls     []SeedStall `json:"stalls"`
}

// SeedStall is one stall in the seed document.
type SeedStall struct {
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Cuisine   string     `json:"cuisine"`
	ImageURL  string     `json:"image_url"`
	FoodItems []SeedFood `json:"food_items"`
}

// SeedFood is one dish in the seed document. Price is a decimal string.
type SeedFood struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type counts struct {
	created int
	updated int
}

type seeder struct {
	centers repository.HawkerCenterRepository
	stalls  repository.StallRepository
	foods   repository.FoodItemRepository
	log     *zap.Logger

	centerCounts, stallCounts, foodCounts counts
}

func main() {
	source := flag.String("source", os.Getenv("SEED_SOURCE"), "catalog JSON file path or http(s) URL; the bundled sample when empty")
	adminUser := flag.String("admin-username", envOr("ADMIN_USERNAME", "admin"), "admin username")
	adminEmail := flag.String("admin-email", envOr("ADMIN_EMAIL", "admin@hawkerhero.sg"), "admin email")
	adminPass := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "admin password (required)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Must(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	if *adminPass == "" {
		log.Fatal("admin password required: set ADMIN_PASSWORD or -admin-password")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(gormDB, false, log); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	ctx := context.Background()

	authService := service.NewAuthService(repository.NewUserRepository(gormDB))
	admin, err := authService.EnsureAdmin(ctx, *adminUser, *adminEmail, *adminPass)
	if err != nil {
		log.Fatal("ensure admin", zap.Error(err))
	}
	log.Info("admin ready", zap.Uint("id", admin.ID), zap.String("email", admin.Email))

	catalog, err := loadCatalog(ctx, *source)
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}

	s := &seeder{
		centers: repository.NewHawkerCenterRepository(gormDB),
		stalls:  repository.NewStallRepository(gormDB),
		foods:   repository.NewFoodItemRepository(gormDB),
		log:     log,
	}
	if err := s.seed(ctx, catalog); err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("centers_created", s.centerCounts.created),
		zap.Int("centers_updated", s.centerCounts.updated),
		zap.Int("stalls_created", s.stallCounts.created),
		zap.Int("stalls_updated", s.stallCounts.updated),
		zap.Int("food_items_created", s.foodCounts.created),
		zap.Int("food_items_updated", s.foodCounts.updated),
	)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadCatalog reads the seed document from a URL, a file or the bundled sample.
func loadCatalog(ctx context.Context, source string) (*Catalog, error) {
	var (
		body []byte
		err  error
	)
	switch {
	case source == "":
		body = defaultCatalog
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		body, err = fetch(ctx, source)
	default:
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &catalog, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return body, nil
}

// seed creates or updates every center, stall and dish, matching existing
// rows by name.
func (s *seeder) seed(ctx context.Context, catalog *Catalog) error {
	for _, sc := range catalog.Centers {
		center, err := s.upsertCenter(ctx, sc)
		if err != nil {
			return err
		}
		for _, ss := range sc.Stalls {
			stall, err := s.upsertStall(ctx, center.ID, ss)
			if err != nil {
				return err
			}
			for _, sf := range ss.FoodItems {
				if err := s.upsertFood(ctx, stall.ID, sf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *seeder) upsertCenter(ctx context.Context, sc SeedCenter) (*model.HawkerCenter, error) {
	existing, err := s.centers.FindByName(ctx, sc.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find center %q: %w", sc.Name, err)
	}
	if existing != nil {
		existing.Address = sc.Address
		existing.Facilities = sc.Facilities
		existing.ImageURL = sc.ImageURL
		if err := s.centers.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update center %q: %w", sc.Name, err)
		}
		s.centerCounts.updated++
		return existing, nil
	}

	center := &model.HawkerCenter{
		Name:       sc.Name,
		Address:    sc.Address,
		Facilities: sc.Facilities,
		ImageURL:   sc.ImageURL,
	}
	if err := s.centers.Create(ctx, center); err != nil {
		return nil, fmt.Errorf("create center %q: %w", sc.Name, err)
	}
	s.centerCounts.created++
	return center, nil
}

func (s *seeder) upsertStall(ctx context.Context, centerID uint, ss SeedStall) (*model.Stall, error) {
	existing, err := s.stalls.FindByName(ctx, ss.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find stall %q: %w", ss.Name, err)
	}
	if existing != nil {
		existing.Location = ss.Location
		existing.Cuisine = ss.Cuisine
		existing.ImageURL = ss.ImageURL
		existing.CenterID = &centerID
		if err := s.stalls.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update stall %q: %w", ss.Name, err)
		}
		s.stallCounts.updated++
		return existing, nil
	}

	stall := &model.Stall{
		Name:     ss.Name,
		Location: ss.Location,
		Cuisine:  ss.Cuisine,
		ImageURL: ss.ImageURL,
		CenterID: &centerID,
	}
	if err := s.stalls.Create(ctx, stall); err != nil {
		return nil, fmt.Errorf("create stall %q: %w", ss.Name, err)
	}
	s.stallCounts.created++
	return stall, nil
}

func (s *seeder) upsertFood(ctx context.Context, stallID uint, sf SeedFood) error {
	price, err := decimal.NewFromString(sf.Price)
	if err != nil || price.IsNegative() {
		s.log.Warn("skipping food item with invalid price", zap.String("name", sf.Name), zap.String("price", sf.Price))
		return nil
	}
	price = price.Round(2)

	existing, err := s.foods.FindByStallAndName(ctx, stallID, sf.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find food item %q: %w", sf.Name, err)
	}
	if existing != nil {
		existing.Price = price
		existing.Description = sf.Description
		existing.ImageURL = sf.ImageURL
		if err := s.foods.Update(ctx, existing); err != nil {
			return fmt.Errorf("update food item %q: %w", sf.Name, err)
		}
		s.foodCounts.updated++
		return nil
	}

	item := &model.FoodItem{
		Name:        sf.Name,
		Price:       price,
		Description: sf.Description,
		StallID:     stallID,
		ImageURL:    sf.ImageURL,
	}
	if err := s.foods.Create(ctx, item); err != nil {
		return fmt.Errorf("create food item %q: %w", sf.Name, err)
	}
	s.foodCounts.created++
	return nil
}
