package memstore

import "github.com/herocorp-io/recipes-api/internal/domain"

// SeedUsers returns the static user records the service is loaded with.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:        1,
			Email:     "bouclierman@herocorp.io",
			Password:  "jennifer",
			Username:  "Bouclierman",
			Favorites: []int{1, 3},
		},
		{
			ID:        2,
			Email:     "acidman@herocorp.io",
			Password:  "fructis",
			Username:  "Acidman",
			Favorites: []int{2},
		},
		{
			ID:        3,
			Email:     "captain.sportsextremes@herocorp.io",
			Password:  "pingpong",
			Username:  "Captain Sports Extremes",
			Favorites: []int{},
		},
	}
}

// SeedRecipes returns the static recipe catalog. Slice order is catalog
// order and is part of the API contract for list responses.
func SeedRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          1,
			Title:       "Crêpes sucrées",
			Slug:        "crepes-sucrees",
			Thumbnail:   "https://images.herocorp.io/recipes/crepes.jpg",
			Author:      "Jean Dupont",
			Difficulty:  "Facile",
			Description: "Une pâte à crêpes simple et rapide pour des crêpes légères.",
			Instructions: []string{
				"Mettre la farine dans un saladier avec le sel et le sucre.",
				"Faire un puits au milieu et y verser les œufs.",
				"Ajouter le lait progressivement en fouettant.",
				"Laisser reposer la pâte une heure puis cuire les crêpes.",
			},
			Ingredients: []domain.Ingredient{
				{ID: 1, Name: "Farine", Quantity: 250, Unit: "g"},
				{ID: 2, Name: "Œufs", Quantity: 4, Unit: ""},
				{ID: 3, Name: "Lait", Quantity: 0.5, Unit: "l"},
				{ID: 4, Name: "Sucre", Quantity: 2, Unit: "cuillères à soupe"},
			},
		},
		{
			ID:          2,
			Title:       "Gratin dauphinois",
			Slug:        "gratin-dauphinois",
			Thumbnail:   "https://images.herocorp.io/recipes/gratin.jpg",
			Author:      "Marie Martin",
			Difficulty:  "Moyen",
			Description: "Le gratin de pommes de terre fondant du Dauphiné.",
			Instructions: []string{
				"Éplucher et couper les pommes de terre en fines rondelles.",
				"Frotter le plat avec l'ail et le beurrer.",
				"Disposer les pommes de terre en couches avec la crème.",
				"Cuire 1 h 15 au four à 160 °C.",
			},
			Ingredients: []domain.Ingredient{
				{ID: 1, Name: "Pommes de terre", Quantity: 1, Unit: "kg"},
				{ID: 2, Name: "Crème fraîche", Quantity: 40, Unit: "cl"},
				{ID: 3, Name: "Ail", Quantity: 1, Unit: "gousse"},
				{ID: 4, Name: "Beurre", Quantity: 30, Unit: "g"},
			},
		},
		{
			ID:          3,
			Title:       "Salade niçoise",
			Slug:        "salade-nicoise",
			Thumbnail:   "https://images.herocorp.io/recipes/nicoise.jpg",
			Author:      "Lucie Bernard",
			Difficulty:  "Facile",
			Description: "La salade fraîche du sud, tomates, thon et olives.",
			Instructions: []string{
				"Faire durcir les œufs 10 minutes dans l'eau bouillante.",
				"Couper les tomates en quartiers et émincer les oignons.",
				"Assembler tous les ingrédients dans un saladier.",
				"Assaisonner d'huile d'olive et servir frais.",
			},
			Ingredients: []domain.Ingredient{
				{ID: 1, Name: "Tomates", Quantity: 4, Unit: ""},
				{ID: 2, Name: "Thon", Quantity: 160, Unit: "g"},
				{ID: 3, Name: "Œufs", Quantity: 3, Unit: ""},
				{ID: 4, Name: "Olives noires", Quantity: 50, Unit: "g"},
			},
		},
		{
			ID:          4,
			Title:       "Bœuf bourguignon",
			Slug:        "boeuf-bourguignon",
			Thumbnail:   "https://images.herocorp.io/recipes/bourguignon.jpg",
			Author:      "Paul Rousseau",
			Difficulty:  "Difficile",
			Description: "Un classique mijoté au vin rouge de Bourgogne.",
			Instructions: []string{
				"Faire revenir les lardons et la viande coupée en cubes.",
				"Ajouter les carottes, l'oignon et saupoudrer de farine.",
				"Mouiller au vin rouge et laisser mijoter 3 heures.",
				"Servir avec des pommes vapeur.",
			},
			Ingredients: []domain.Ingredient{
				{ID: 1, Name: "Bœuf à braiser", Quantity: 800, Unit: "g"},
				{ID: 2, Name: "Vin rouge", Quantity: 75, Unit: "cl"},
				{ID: 3, Name: "Lardons", Quantity: 150, Unit: "g"},
				{ID: 4, Name: "Carottes", Quantity: 3, Unit: ""},
			},
		},
		{
			ID:          5,
			Title:       "Tarte aux pommes",
			Slug:        "tarte-aux-pommes",
			Thumbnail:   "https://images.herocorp.io/recipes/tarte-pommes.jpg",
			Author:      "Jean Dupont",
			Difficulty:  "Facile",
			Description: "Tarte fine aux pommes caramélisées sur pâte brisée.",
			Instructions: []string{
				"Étaler la pâte brisée dans un moule à tarte.",
				"Éplucher les pommes et les couper en lamelles.",
				"Disposer les pommes en rosace et saupoudrer de sucre.",
				"Cuire 35 minutes au four à 180 °C.",
			},
			Ingredients: []domain.Ingredient{
				{ID: 1, Name: "Pâte brisée", Quantity: 1, Unit: ""},
				{ID: 2, Name: "Pommes", Quantity: 5, Unit: ""},
				{ID: 3, Name: "Sucre", Quantity: 80, Unit: "g"},
				{ID: 4, Name: "Beurre", Quantity: 40, Unit: "g"},
			},
		},
	}
}
