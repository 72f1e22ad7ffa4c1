package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fruitstand/backend/internal/model"
	"github.com/fruitstand/backend/internal/store"
)

// CreateRecipeInput carries the client-supplied fields for a new recipe.
// Ingredients and steps arrive as free-text lines and are normalized
// into positional tuples here, in input order.
type CreateRecipeInput struct {
	Title       string      `json:"title"`
	Summary     string      `json:"summary"`
	CoverURL    string      `json:"coverUrl"`
	Servings    *int        `json:"servings"`
	Minutes     *int        `json:"minutes"`
	Difficulty  string      `json:"difficulty"`
	Ingredients model.Lines `json:"ingredients"`
	Steps       model.Lines `json:"steps"`
}

// RecipeService implements every operation on the recipe aggregate.
//
// Each mutating operation is a load-mutate-flush cycle against the
// store. The whole cycle runs under one mutex scoped to the collection:
// the store itself gives no atomicity across two calls, and without the
// gate two concurrent cycles could each load a stale snapshot and
// silently drop the other's change on flush.
type RecipeService struct {
	mu    sync.Mutex
	store store.Store
	log   *zap.Logger
	now   func() time.Time
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(s store.Store, log *zap.Logger) *RecipeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecipeService{
		store: s,
		log:   log,
		now:   time.Now,
	}
}

// List returns all recipes newest-first. A non-empty query filters by
// case-insensitive substring match on the title.
func (s *RecipeService) List(ctx context.Context, query string) ([]*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Recipe, 0, len(recipes))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, r := range recipes {
		if needle != "" && !strings.Contains(strings.ToLower(r.Title), needle) {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Create validates the input, builds the aggregate and persists it.
func (s *RecipeService) Create(ctx context.Context, ident *model.Identity, input CreateRecipeInput) (*model.Recipe, error) {
	if ident == nil {
		return nil, model.ErrAuthRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, model.ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	recipe := &model.Recipe{
		ID:          uuid.NewString(),
		Slug:        Slugify(input.Title),
		Title:       input.Title,
		Summary:     input.Summary,
		CoverURL:    input.CoverURL,
		Servings:    input.Servings,
		Minutes:     input.Minutes,
		Difficulty:  model.ParseDifficulty(input.Difficulty),
		Ingredients: make([]model.Ingredient, 0, len(input.Ingredients)),
		Steps:       make([]model.Step, 0, len(input.Steps)),
		Reviews:     []model.Review{},
		Likes:       []string{},
		AuthorID:    ident.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, line := range input.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.Ingredient{
			ID:   uuid.NewString(),
			Line: line,
			Pos:  i,
		})
	}
	for i, instruction := range input.Steps {
		recipe.Steps = append(recipe.Steps, model.Step{
			ID:          uuid.NewString(),
			Instruction: instruction,
			Pos:         i,
		})
	}

	recipes[recipe.ID] = recipe
	if err := s.store.Flush(ctx, recipes); err != nil {
		return nil, err
	}

	s.log.Info("recipe created",
		zap.String("recipe_id", recipe.ID),
		zap.String("slug", recipe.Slug),
		zap.String("author_id", recipe.AuthorID))
	return recipe, nil
}

// Get looks a recipe up by exact id first, then by slug. Slugs are not
// unique: on collision the earliest-created recipe wins, ties broken by
// smallest id, so repeated lookups always return the same document.
func (s *RecipeService) Get(ctx context.Context, idOrSlug string) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return findRecipe(recipes, idOrSlug)
}

// Like idempotently adds the caller to the recipe's like set and returns
// the resulting like count.
func (s *RecipeService) Like(ctx context.Context, ident *model.Identity, id string) (int, error) {
	return s.mutateLikes(ctx, ident, id, func(r *model.Recipe, userID string) {
		r.AddLike(userID)
	})
}

// Unlike removes the caller from the like set. Removing an absent
// member is not an error.
func (s *RecipeService) Unlike(ctx context.Context, ident *model.Identity, id string) (int, error) {
	return s.mutateLikes(ctx, ident, id, func(r *model.Recipe, userID string) {
		r.RemoveLike(userID)
	})
}

func (s *RecipeService) mutateLikes(ctx context.Context, ident *model.Identity, id string, apply func(*model.Recipe, string)) (int, error) {
	if ident == nil {
		return 0, model.ErrAuthRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	recipe, ok := recipes[id]
	if !ok {
		return 0, model.ErrRecipeNotFound
	}

	apply(recipe, ident.ID)
	recipe.UpdatedAt = s.now().UTC()

	if err := s.store.Flush(ctx, recipes); err != nil {
		return 0, err
	}
	return len(recipe.Likes), nil
}

// AddReview appends a review to the recipe. Ratings outside [1,5] are
// clamped, not rejected.
func (s *RecipeService) AddReview(ctx context.Context, ident *model.Identity, id string, rating int, body string) (*model.Review, error) {
	if ident == nil {
		return nil, model.ErrAuthRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	recipe, ok := recipes[id]
	if !ok {
		return nil, model.ErrRecipeNotFound
	}

	now := s.now().UTC()
	review := model.Review{
		ID:        uuid.NewString(),
		UserID:    ident.ID,
		Rating:    clampRating(rating),
		Body:      body,
		CreatedAt: now,
	}
	recipe.Reviews = append(recipe.Reviews, review)
	recipe.UpdatedAt = now

	if err := s.store.Flush(ctx, recipes); err != nil {
		return nil, err
	}
	return &review, nil
}

// RemoveReview deletes a review. Only the review's author or the
// recipe's author may do so.
func (s *RecipeService) RemoveReview(ctx context.Context, ident *model.Identity, id, reviewID string) error {
	if ident == nil {
		return model.ErrAuthRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	recipe, ok := recipes[id]
	if !ok {
		return model.ErrRecipeNotFound
	}

	review := recipe.Review(reviewID)
	if review == nil {
		return model.ErrReviewNotFound
	}
	if ident.ID != review.UserID && ident.ID != recipe.AuthorID {
		return model.ErrForbidden
	}

	recipe.RemoveReview(reviewID)
	recipe.UpdatedAt = s.now().UTC()

	return s.store.Flush(ctx, recipes)
}

// Delete removes the aggregate permanently. Only the author may delete.
func (s *RecipeService) Delete(ctx context.Context, ident *model.Identity, id string) error {
	if ident == nil {
		return model.ErrAuthRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	recipe, ok := recipes[id]
	if !ok {
		return model.ErrRecipeNotFound
	}
	if recipe.AuthorID != ident.ID {
		return model.ErrForbidden
	}

	delete(recipes, id)
	if err := s.store.Flush(ctx, recipes); err != nil {
		return err
	}

	s.log.Info("recipe deleted",
		zap.String("recipe_id", id),
		zap.String("author_id", ident.ID))
	return nil
}

func findRecipe(recipes store.Collection, idOrSlug string) (*model.Recipe, error) {
	if r, ok := recipes[idOrSlug]; ok {
		return r, nil
	}

	var match *model.Recipe
	for _, r := range recipes {
		if r.Slug != idOrSlug {
			continue
		}
		if match == nil || r.CreatedAt.Before(match.CreatedAt) ||
			(r.CreatedAt.Equal(match.CreatedAt) && r.ID < match.ID) {
			match = r
		}
	}
	if match == nil {
		return nil, model.ErrRecipeNotFound
	}
	return match, nil
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
