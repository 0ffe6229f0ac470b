package handler

import (
	"log/slog"
	"net/http"
	"time"

	"capsule/internal/delivery/http/response"
	"capsule/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SeedHandler populates a development database with a small sample catalog.
// Its route is only registered when seeding is enabled in configuration.
type SeedHandler struct {
	catalog usecase.CatalogUsecase
	drops   usecase.DropUsecase
	logger  *slog.Logger
}

// NewSeedHandler is the constructor for SeedHandler, injected by Fx.
func NewSeedHandler(catalog usecase.CatalogUsecase, drops usecase.DropUsecase, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{catalog: catalog, drops: drops, logger: logger}
}

// Seed inserts the sample drop and products. Re-running reports the rows
// that already exist instead of failing the whole request.
func (h *SeedHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()
	created, skipped := 0, 0

	if _, err := h.drops.CreateDrop(ctx, &usecase.SaveDropInput{
		Code:        1,
		Name:        "Capsule 001",
		Description: "First sample release wave.",
		ReleasedAt:  time.Now().UTC(),
	}); err != nil {
		skipped++
	} else {
		created++
	}

	for _, input := range sampleProducts() {
		if _, err := h.catalog.CreateProduct(ctx, input); err != nil {
			skipped++

			continue
		}
		created++
	}

	h.logger.Info("Seed completed", slog.Int("created", created), slog.Int("skipped", skipped))

	return response.Success(c, http.StatusOK, map[string]int{
		"created": created,
		"skipped": skipped,
	}, "Seed completed")
}

func sampleProducts() []*usecase.SaveProductInput {
	return []*usecase.SaveProductInput{
		{
			Name:        "Core Hoodie",
			Slug:        "core-hoodie",
			Description: "Heavyweight fleece hoodie.",
			Price:       8900,
			Category:    "hoodies",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors: []usecase.ColorVariantInput{
				{Name: "BLACK", Hex: "#111111", Images: []string{"https://cdn.example.com/seed/core-hoodie-black.jpg"}},
			},
			Stock:      50,
			DropCode:   1,
			Bestseller: true,
		},
		{
			Name:        "Box Tee",
			Slug:        "box-tee",
			Description: "Boxy fit cotton tee.",
			Price:       3400,
			Category:    "tees",
			Sizes:       []string{"S", "M", "L"},
			Colors: []usecase.ColorVariantInput{
				{Name: "WHITE", Hex: "#FFFFFF", Images: []string{"https://cdn.example.com/seed/box-tee-white.jpg"}},
				{Name: "BLACK", Hex: "#111111", Images: []string{"https://cdn.example.com/seed/box-tee-black.jpg"}},
			},
			Stock:    120,
			DropCode: 1,
		},
		{
			Name:        "Cargo Pant",
			Slug:        "cargo-pant",
			Description: "Wide cargo pant with taped seams.",
			Price:       12800,
			Category:    "pants",
			Sizes:       []string{"30", "32", "34"},
			Colors: []usecase.ColorVariantInput{
				{Name: "OLIVE", Hex: "#4B5320", Images: []string{"https://cdn.example.com/seed/cargo-pant-olive.jpg"}},
			},
			Stock:    35,
			DropCode: 1,
		},
	}
}
