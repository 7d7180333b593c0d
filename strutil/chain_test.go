package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redrye/core-utils/strutil"
)

func TestChain_Transforms(t *testing.T) {
	t.Parallel()

	t.Run("camel pipeline", func(t *testing.T) {
		t.Parallel()
		got := strutil.New(" This is a tesT ").Camel().String()
		assert.Equal(t, "thisIsATest", got)
	})

	t.Run("snake then title", func(t *testing.T) {
		t.Parallel()
		got := strutil.New("userProfilePage").Snake().String()
		assert.Equal(t, "user_profile_page", got)

		assert.Equal(t, "User Profile Page", strutil.New("userProfilePage").Title().String())
	})

	t.Run("trim upper", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "HELLO", strutil.New("  hello  ").Trim().Upper().String())
	})

	t.Run("slugify default separator", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "this-is-a-test", strutil.New(" This is a tesT ").Slugify().String())
	})

	t.Run("slugify custom separator", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "this:is:a:test", strutil.New(" This is a tesT ").Slugify(":").String())
	})
}

func TestChain_Coercion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123", strutil.New(123).String())
	assert.Equal(t, 3, strutil.New(123).Count())
	assert.Equal(t, "", strutil.New(nil).String())
}

func TestChain_Checks(t *testing.T) {
	t.Parallel()

	c := strutil.New("test")
	assert.True(t, c.StartsWith("te"))
	assert.False(t, c.StartsWith("st"))
	assert.True(t, c.StartsWith("st", 2))
	assert.True(t, c.EndsWith("st"))
	assert.False(t, c.EndsWith("te"))
	assert.True(t, c.EndsWith("te", 2))
}

func TestChain_Immutable(t *testing.T) {
	t.Parallel()

	original := strutil.New("  Hello World  ")
	trimmed := original.Trim()
	upper := trimmed.Upper()

	assert.Equal(t, "  Hello World  ", original.String())
	assert.Equal(t, "Hello World", trimmed.String())
	assert.Equal(t, "HELLO WORLD", upper.String())
}
