// Command migrate applies the database schema for every persistence model.
// It is meant for development and CI environments; production schemas are
// managed with reviewed SQL migrations.
package main

import (
	"fmt"
	"os"

	"capsule/config"
	"capsule/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to PostgreSQL:", err)
		os.Exit(1)
	}

	models := []any{
		model.UserModel{},
		model.ProductModel{},
		model.DropModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.WishlistItemModel{},
		model.AddressModel{},
		model.BannerModel{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		fmt.Fprintln(os.Stderr, "failed to migrate schema:", err)
		os.Exit(1)
	}

	fmt.Println("schema migrated")
}
