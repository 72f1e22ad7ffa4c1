// Command seed fills the configured store with a handful of demo
// recipes so a fresh checkout has something to browse.
package main

import (
	"context"
	"log"

	"github.com/fruitstand/backend/config"
	"github.com/fruitstand/backend/internal/model"
	"github.com/fruitstand/backend/internal/service"
	"github.com/fruitstand/backend/internal/store"
)

var seedAuthor = &model.Identity{ID: "seed-user", Handle: "Fruitstand Kitchen"}

func intp(v int) *int { return &v }

var seedRecipes = []service.CreateRecipeInput{
	{
		Title:      "Apple Pie",
		Summary:    "Classic double-crust pie with orchard apples.",
		Servings:   intp(8),
		Minutes:    intp(90),
		Difficulty: "medium",
		Ingredients: model.Lines{
			"6 tart apples, peeled and sliced",
			"1 cup sugar",
			"2 tbsp flour",
			"1 tsp cinnamon",
			"2 pie crusts",
		},
		Steps: model.Lines{
			"Toss apples with sugar, flour and cinnamon",
			"Fill the bottom crust and cover with the top crust",
			"Bake at 220C for 15 minutes, then 175C for 45 minutes",
		},
	},
	{
		Title:      "Strawberry Lemonade",
		Summary:    "Stand favorite for hot market days.",
		Servings:   intp(4),
		Minutes:    intp(15),
		Difficulty: "easy",
		Ingredients: model.Lines{
			"2 cups strawberries, hulled",
			"1 cup fresh lemon juice",
			"1/2 cup sugar",
			"4 cups cold water",
		},
		Steps: model.Lines{
			"Blend strawberries with sugar",
			"Stir in lemon juice and water",
			"Serve over ice",
		},
	},
	{
		Title:      "Peach Galette",
		Summary:    "Free-form tart, forgiving with bruised fruit.",
		Servings:   intp(6),
		Minutes:    intp(60),
		Difficulty: "hard",
		Ingredients: model.Lines{
			"4 ripe peaches, sliced",
			"1/3 cup brown sugar",
			"1 rough puff pastry sheet",
			"1 egg, beaten",
		},
		Steps: model.Lines{
			"Pile peaches in the center of the pastry",
			"Fold the edges over and brush with egg",
			"Bake at 200C until golden",
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Seeding an in-process store would vanish on exit.
	if cfg.StoreBackend == config.BackendMemory {
		log.Fatalf("Cannot seed the %s backend; set STORE_BACKEND to %s or %s",
			config.BackendMemory, config.BackendFile, config.BackendBolt)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open recipe store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	recipes := service.NewRecipeService(st, nil)

	for _, input := range seedRecipes {
		recipe, err := recipes.Create(ctx, seedAuthor, input)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", input.Title, err)
		}
		log.Printf("Seeded %q as %s (%s)", recipe.Title, recipe.ID, recipe.Slug)
	}
}
