package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesDecodeArray(t *testing.T) {
	var l Lines
	require.NoError(t, json.Unmarshal([]byte(`["apples","sugar"]`), &l))
	assert.Equal(t, Lines{"apples", "sugar"}, l)
}

func TestLinesDecodeString(t *testing.T) {
	var l Lines
	require.NoError(t, json.Unmarshal([]byte(`"apples\nsugar\n\n  butter  "`), &l))
	assert.Equal(t, Lines{"apples", "sugar", "butter"}, l)
}

func TestLinesDecodeRejectsObjects(t *testing.T) {
	var l Lines
	assert.Error(t, json.Unmarshal([]byte(`{"line":"apples"}`), &l))
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyMedium, ParseDifficulty("Medium"))
	assert.Equal(t, DifficultyHard, ParseDifficulty(" hard "))
	assert.Equal(t, DifficultyEasy, ParseDifficulty("easy"))
	assert.Equal(t, DifficultyEasy, ParseDifficulty("impossible"))
	assert.Equal(t, DifficultyEasy, ParseDifficulty(""))
}

func TestLikeSetSemantics(t *testing.T) {
	r := &Recipe{}

	r.AddLike("alice")
	r.AddLike("alice")
	assert.Equal(t, []string{"alice"}, r.Likes)
	assert.True(t, r.Liked("alice"))

	r.RemoveLike("alice")
	r.RemoveLike("alice")
	assert.Empty(t, r.Likes)
	assert.False(t, r.Liked("alice"))
}

func TestCloneIsDeep(t *testing.T) {
	servings := 4
	r := &Recipe{
		Servings:    &servings,
		Ingredients: []Ingredient{{ID: "i1", Line: "apples", Pos: 0}},
		Likes:       []string{"alice"},
	}

	clone := r.Clone()
	clone.Ingredients[0].Line = "pears"
	clone.AddLike("bob")
	*clone.Servings = 8

	assert.Equal(t, "apples", r.Ingredients[0].Line)
	assert.Equal(t, []string{"alice"}, r.Likes)
	assert.Equal(t, 4, *r.Servings)
}
