package store

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ohJeez/e-commerece-website/internal/client/hash"
	"github.com/ohJeez/e-commerece-website/internal/client/kvstore"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
)

// SeedLocal populates an empty on-device store with the default admin
// account and a small starter catalog. Non-empty collections are left alone,
// so seeding is idempotent.
func SeedLocal(kv *kvstore.Store, log zerolog.Logger) {
	users := kvstore.Get(kv, keyUsers, []localUser{})
	if len(users) == 0 {
		users = append(users, localUser{
			ID:           uuid.NewString(),
			Name:         "Admin",
			Email:        "admin@gmail.com",
			PasswordHash: hash.Digest("admin123"),
			Role:         domain.RoleAdmin,
		})
		kvstore.Set(kv, keyUsers, users)
		log.Info().Msg("seeded local admin account")
	}

	products := kvstore.Get(kv, keyProducts, []domain.Product{})
	if len(products) == 0 {
		seed := []domain.Product{
			{
				Name:        "Lush Indoor Plant",
				Price:       79,
				Description: "Bring nature home with our curated indoor planters.",
				ImageURL:    "https://images.unsplash.com/photo-1459411552884-841db9b3cc2a?auto=format&fit=crop&w=600&q=60",
			},
			{
				Name:        "Minimal Desk Lamp",
				Price:       120,
				Description: "Soft, warm lighting with sustainable materials.",
				ImageURL:    "https://images.unsplash.com/photo-1505691938895-1758d7feb511?auto=format&fit=crop&w=600&q=60",
			},
			{
				Name:        "Woven Cotton Throw",
				Price:       55,
				Description: "Muted green palette throw blanket for cozy evenings.",
				ImageURL:    "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&w=600&q=60",
			},
		}
		for i := range seed {
			seed[i].ID = uuid.NewString()
		}
		kvstore.Set(kv, keyProducts, seed)
		log.Info().Int("count", len(seed)).Msg("seeded local product catalog")
	}
}
