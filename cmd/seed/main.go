package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bistro/internal/config"
	"bistro/internal/db"
	"bistro/internal/logging"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// SeedMenuItem is one dish in a menu export.
type SeedMenuItem struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Recipe   string          `json:"recipe"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// SeedReview is one testimonial in a reviews export.
type SeedReview struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

func main() {
	menuSrc := flag.String("menu", "", "menu items JSON (file path or http(s) URL)")
	reviewsSrc := flag.String("reviews", "", "reviews JSON (file path or http(s) URL)")
	adminEmail := flag.String("admin", "", "email of an existing user to promote to admin")
	flag.Parse()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if *menuSrc == "" && *reviewsSrc == "" && *adminEmail == "" {
		flag.Usage()
		os.Exit(2)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := db.Migrate(gormDB, false, log); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	ctx := context.Background()

	if *menuSrc != "" {
		var items []SeedMenuItem
		if err := load(ctx, *menuSrc, &items); err != nil {
			log.WithError(err).Fatal("Failed to load menu items")
		}
		n, err := seedMenu(ctx, repository.NewMenuRepository(gormDB), items)
		if err != nil {
			log.WithError(err).Fatal("Failed to seed menu items")
		}
		log.WithFields(logrus.Fields{"source": *menuSrc, "count": n}).Info("menu items seeded")
	}

	if *reviewsSrc != "" {
		var reviews []SeedReview
		if err := load(ctx, *reviewsSrc, &reviews); err != nil {
			log.WithError(err).Fatal("Failed to load reviews")
		}
		n, err := seedReviews(ctx, repository.NewReviewRepository(gormDB), reviews)
		if err != nil {
			log.WithError(err).Fatal("Failed to seed reviews")
		}
		log.WithFields(logrus.Fields{"source": *reviewsSrc, "count": n}).Info("reviews seeded")
	}

	if *adminEmail != "" {
		if err := promote(ctx, repository.NewUserRepository(gormDB), *adminEmail); err != nil {
			log.WithError(err).WithField("email", *adminEmail).Fatal("Failed to promote admin")
		}
		log.WithField("email", *adminEmail).Info("user promoted to admin")
	}
}

// load reads src from disk or over HTTP and decodes it into dest.
func load(ctx context.Context, src string, dest any) error {
	var body []byte
	var err error
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		body, err = fetch(ctx, src)
	} else {
		body, err = os.ReadFile(src)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status code: %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// seedID keeps UUID ids and maps any other export id to a stable UUID, so
// re-running the seed updates rows instead of duplicating them.
func seedID(raw string) uuid.UUID {
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	if raw == "" {
		return uuid.New()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(raw))
}

func seedMenu(ctx context.Context, repo repository.MenuRepository, items []SeedMenuItem) (int, error) {
	for _, item := range items {
		m := &model.MenuItem{
			ID:       seedID(item.ID),
			Name:     item.Name,
			Recipe:   item.Recipe,
			Image:    item.Image,
			Category: item.Category,
			Price:    item.Price,
		}
		if err := repo.Save(ctx, m); err != nil {
			return 0, fmt.Errorf("error saving menu item %s: %w", item.Name, err)
		}
	}
	return len(items), nil
}

func seedReviews(ctx context.Context, repo repository.ReviewRepository, reviews []SeedReview) (int, error) {
	for _, r := range reviews {
		review := &model.Review{
			ID:      seedID(r.ID),
			Name:    r.Name,
			Details: r.Details,
			Rating:  r.Rating,
		}
		if err := repo.Save(ctx, review); err != nil {
			return 0, fmt.Errorf("error saving review by %s: %w", r.Name, err)
		}
	}
	return len(reviews), nil
}

func promote(ctx context.Context, repo repository.UserRepository, email string) error {
	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no user with email %s, sign in once first", email)
		}
		return err
	}
	if _, _, err := repo.SetRole(ctx, user.ID, model.RoleAdmin); err != nil {
		return err
	}
	return nil
}
