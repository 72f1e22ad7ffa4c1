package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Difficulty is the coarse effort rating attached to a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps arbitrary input onto a known difficulty.
// Anything unrecognized falls back to easy.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// Lines is a list of free-text lines that decodes from either a JSON
// array of strings or a single string split on newlines. Clients send
// both shapes; this is the one place that normalizes them.
type Lines []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lines) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	*l = out
	return nil
}

// Ingredient is one line of a recipe's ingredient list. Pos is the
// authoritative order, assigned from input order at creation.
type Ingredient struct {
	ID   string `json:"id"`
	Line string `json:"line"`
	Pos  int    `json:"pos"`
}

// Step is one instruction in a recipe's method, ordered by Pos.
type Step struct {
	ID          string `json:"id"`
	Instruction string `json:"instruction"`
	Pos         int    `json:"pos"`
}

// Review is a rating plus optional text left by a user.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Recipe is the aggregate root: the document plus all of its nested
// ingredients, steps, reviews and likes, persisted as one unit.
type Recipe struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	CoverURL    string       `json:"coverUrl"`
	Servings    *int         `json:"servings"`
	Minutes     *int         `json:"minutes"`
	Difficulty  Difficulty   `json:"difficulty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	Reviews     []Review     `json:"reviews"`
	Likes       []string     `json:"likes"`
	AuthorID    string       `json:"authorId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Liked reports whether userID is in the like set.
func (r *Recipe) Liked(userID string) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// AddLike inserts userID into the like set. Adding an existing member
// leaves the set unchanged.
func (r *Recipe) AddLike(userID string) {
	if !r.Liked(userID) {
		r.Likes = append(r.Likes, userID)
	}
}

// RemoveLike deletes userID from the like set if present.
func (r *Recipe) RemoveLike(userID string) {
	for i, id := range r.Likes {
		if id == userID {
			r.Likes = append(r.Likes[:i], r.Likes[i+1:]...)
			return
		}
	}
}

// Review returns the review with the given id, or nil.
func (r *Recipe) Review(reviewID string) *Review {
	for i := range r.Reviews {
		if r.Reviews[i].ID == reviewID {
			return &r.Reviews[i]
		}
	}
	return nil
}

// RemoveReview deletes the review with the given id and reports whether
// it was present.
func (r *Recipe) RemoveReview(reviewID string) bool {
	for i := range r.Reviews {
		if r.Reviews[i].ID == reviewID {
			r.Reviews = append(r.Reviews[:i], r.Reviews[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hand out recipes without
// sharing the store's backing slices.
func (r *Recipe) Clone() *Recipe {
	out := *r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Steps = append([]Step(nil), r.Steps...)
	out.Reviews = append([]Review(nil), r.Reviews...)
	out.Likes = append([]string(nil), r.Likes...)
	if r.Servings != nil {
		v := *r.Servings
		out.Servings = &v
	}
	if r.Minutes != nil {
		v := *r.Minutes
		out.Minutes = &v
	}
	return &out
}
