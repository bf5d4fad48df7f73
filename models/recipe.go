package models

// Recipe is the suggestion returned by the recipe assistant.
type Recipe struct {
	Name            string   `json:"name"`
	Time            string   `json:"time"`
	Difficulty      string   `json:"difficulty"`
	Servings        string   `json:"servings"`
	IngredientsList []string `json:"ingredients_list"`
	Instructions    []string `json:"instructions"`
	Tips            string   `json:"tips"`
}
