// Package seed populates the store with demo accounts for local
// evaluation. Seeding is idempotent: it does nothing once any user exists.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/user"
	"baleconnect/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// demoPassword is shared by every demo account.
const demoPassword = "123456"

type demoUser struct {
	role    user.Role
	name    string
	phone   string
	email   string
	address string
}

var demoUsers = []demoUser{
	{user.Customer, "สมชาย ใจดี (Demo Customer)", "0811111111", "customer@test.com", "99 Moo 4, San Sai, Chiang Mai"},
	{user.Farmer, "สมศักดิ์ รักนา (Demo Farmer)", "0822222222", "farmer@test.com", "12 Moo 2, Mae Rim, Chiang Mai"},
	{user.Baler, "บุญมา อัดฟาง (Demo Baler)", "0833333333", "baler@test.com", "7 Moo 9, Doi Saket, Chiang Mai"},
}

// Seeder creates the demo accounts.
type Seeder struct {
	ids      ports.Store
	userRepo ports.UserRepository
	logger   *slog.Logger
}

// NewSeeder creates a seeder minting IDs from the store.
func NewSeeder(ids ports.Store, userRepo ports.UserRepository, logger *slog.Logger) *Seeder {
	return &Seeder{
		ids:      ids,
		userRepo: userRepo,
		logger:   logger.With("component", "seeder"),
	}
}

// Run inserts the demo users unless the store already holds any user.
func (s *Seeder) Run(ctx context.Context) error {
	existing, err := s.userRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: listing users: %w", err)
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "Store already has users, skipping demo seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hashing demo password: %w", err)
	}

	for _, d := range demoUsers {
		id, err := kernel.IDFromString(s.ids.NextID())
		if err != nil {
			return fmt.Errorf("seed: minting id: %w", err)
		}

		aggregate, err := user.NewUser(id, d.role, d.name, d.phone, d.email, string(hash), d.address)
		if err != nil {
			return fmt.Errorf("seed: building user %s: %w", d.email, err)
		}

		if err := s.userRepo.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("seed: adding user %s: %w", d.email, err)
		}
	}

	s.logger.InfoContext(ctx, "Seeded demo users", "count", len(demoUsers))
	return nil
}
