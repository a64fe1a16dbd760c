package domain

// Ingredient is a single ingredient line of a recipe.
type Ingredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe represents one entry of the recipe catalog.
// Recipes are loaded once at startup and never mutated, so values can be
// shared freely between concurrent requests.
type Recipe struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Thumbnail    string       `json:"thumbnail"`
	Author       string       `json:"author"`
	Difficulty   string       `json:"difficulty"`
	Description  string       `json:"description"`
	Instructions []string     `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
}
