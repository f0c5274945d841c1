package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_StartsEmpty(t *testing.T) {
	history := NewHistory()

	assert.Equal(t, 0, history.Len())
	assert.Empty(t, history.Titles())
}

func TestHistory_AppendsInOrder(t *testing.T) {
	history := NewHistory()

	history.Add("first")
	history.Add("second")

	assert.Equal(t, 2, history.Len())
	assert.Equal(t, []string{"first", "second"}, history.Titles())
}

func TestHistory_TitlesReturnsCopy(t *testing.T) {
	history := NewHistory()
	history.Add("original")

	titles := history.Titles()
	titles[0] = "mutated"

	assert.Equal(t, []string{"original"}, history.Titles())
}
