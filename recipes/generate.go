// Package recipes suggests a recipe for a set of ingredients picked from the
// catalog. The suggestion is a fixed template.
package recipes

import (
	"errors"
	"strings"

	"freshbasket/models"
)

var ErrNoIngredients = errors.New("no ingredients selected")

var steps = []string{
	"Wash all ingredients",
	"Chop into pieces",
	"Cook or mix",
	"Season to taste",
	"Serve hot or cold",
}

// Generate builds the recipe for ingredients. Blank names are ignored.
func Generate(ingredients []string) (models.Recipe, error) {
	picked := make([]string, 0, len(ingredients))
	for _, i := range ingredients {
		if i = strings.TrimSpace(i); i != "" {
			picked = append(picked, i)
		}
	}
	if len(picked) == 0 {
		return models.Recipe{}, ErrNoIngredients
	}

	list := make([]string, len(picked))
	for n, i := range picked {
		list[n] = i + " - 200g"
	}
	return models.Recipe{
		Name:            "🥗 " + strings.Join(picked, " & ") + " Recipe",
		Time:            "20 min",
		Difficulty:      "Easy",
		Servings:        "3-4",
		IngredientsList: list,
		Instructions:    append([]string(nil), steps...),
		Tips:            "Fresh ingredients make the best dishes!",
	}, nil
}
