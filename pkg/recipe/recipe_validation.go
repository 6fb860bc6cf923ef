package recipe

import (
	"context"
	"fmt"
	"strings"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils/storage"

	"github.com/google/uuid"
)

// validateRecipe checks a write request against the stored data and returns
// the tags, ingredient rows and decoded image to persist. existing is nil on
// create, where every field is required.
func (s *recipeService) validateRecipe(ctx context.Context, req domain.RecipeRequest, existing *entities.Recipe) ([]*entities.Tag, []*entities.IngredientInRecipe, []byte, error) {
	fieldErrs := domain.FieldErrors{}
	creating := existing == nil

	if creating {
		if strings.TrimSpace(req.Name) == "" {
			fieldErrs.Add("name", domain.MessageFieldRequired)
		}
		if strings.TrimSpace(req.Text) == "" {
			fieldErrs.Add("text", domain.MessageFieldRequired)
		}
		if req.Image == "" {
			fieldErrs.Add("image", domain.MessageFieldRequired)
		}
		if req.CookingTime == nil {
			fieldErrs.Add("cooking_time", domain.MessageFieldRequired)
		}
	}

	if req.CookingTime != nil && (*req.CookingTime < domain.MinCookingTime || *req.CookingTime > domain.MaxCookingTime) {
		fieldErrs.Add("cooking_time", domain.MessageCookingTimeRange)
	}

	var image []byte
	if req.Image != "" {
		decoded, err := storage.DecodeBase64File(req.Image)
		if err != nil {
			fieldErrs.Add("image", domain.MessageInvalidImage)
		}
		image = decoded
	}

	if req.Name != "" {
		excludeID := ""
		if existing != nil {
			excludeID = existing.ID.String()
		}
		taken, err := s.recipeRepository.IsNameTaken(ctx, req.Name, excludeID)
		if err != nil {
			return nil, nil, nil, err
		}
		if taken {
			fieldErrs.Add("name", domain.MessageRecipeNameTaken)
		}
	}

	tags, err := s.validateTags(ctx, req.Tags, fieldErrs)
	if err != nil {
		return nil, nil, nil, err
	}

	ingredients, err := s.validateIngredients(ctx, req.Ingredients, fieldErrs)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(fieldErrs) > 0 {
		return nil, nil, nil, fieldErrs
	}
	return tags, ingredients, image, nil
}

func (s *recipeService) validateTags(ctx context.Context, ids []string, fieldErrs domain.FieldErrors) ([]*entities.Tag, error) {
	if len(ids) == 0 {
		fieldErrs.Add("tags", domain.MessageTagsRequired)
		return nil, nil
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			fieldErrs.Add("tags", fmt.Sprintf("invalid tag id %q", id))
			return nil, nil
		}
		if seen[id] {
			fieldErrs.Add("tags", domain.MessageTagsUnique)
			return nil, nil
		}
		seen[id] = true
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(tags))
	for _, t := range tags {
		found[t.ID.String()] = true
	}
	for _, id := range ids {
		if !found[id] {
			fieldErrs.Add("tags", fmt.Sprintf("tag %s does not exist", id))
		}
	}
	return tags, nil
}

func (s *recipeService) validateIngredients(ctx context.Context, items []domain.IngredientAmountRequest, fieldErrs domain.FieldErrors) ([]*entities.IngredientInRecipe, error) {
	if len(items) == 0 {
		fieldErrs.Add("ingredients", domain.MessageIngredientsRequired)
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	valid, duplicated := true, false
	for i, item := range items {
		if _, err := uuid.Parse(item.ID); err != nil {
			fieldErrs.Add(fmt.Sprintf("ingredients[%d].id", i), fmt.Sprintf("invalid ingredient id %q", item.ID))
			valid = false
			continue
		}
		if seen[item.ID] {
			if !duplicated {
				fieldErrs.Add("ingredients", domain.MessageIngredientsUnique)
			}
			valid, duplicated = false, true
			continue
		}
		seen[item.ID] = true
		ids = append(ids, item.ID)

		if item.Amount < domain.MinAmount || item.Amount > domain.MaxAmount {
			fieldErrs.Add(fmt.Sprintf("ingredients[%d].amount", i), domain.MessageAmountRange)
			valid = false
		}
	}
	if !valid {
		return nil, nil
	}

	stored, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[string]*entities.Ingredient, len(stored))
	for _, ing := range stored {
		found[ing.ID.String()] = ing
	}

	rows := make([]*entities.IngredientInRecipe, 0, len(items))
	for i, item := range items {
		ing, ok := found[item.ID]
		if !ok {
			fieldErrs.Add(fmt.Sprintf("ingredients[%d].id", i), fmt.Sprintf("ingredient %s does not exist", item.ID))
			continue
		}
		rows = append(rows, &entities.IngredientInRecipe{
			IngredientID: ing.ID,
			Amount:       item.Amount,
		})
	}
	return rows, nil
}
