package controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/inclusion/config"
	"github.com/neuronlabs/inclusion/query"
)

// TestNewController tests creating the controller with provided configs.
func TestNewController(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		c, err := NewController(&config.Controller{NamingConvention: "snake"})
		require.NoError(t, err)

		require.NotNil(t, c.NamerFunc)
		assert.Equal(t, "user_posts", c.NamerFunc("UserPosts"))
	})

	t.Run("NamingConventions", func(t *testing.T) {
		conventions := map[string]string{
			"camel":       "UserPosts",
			"lower_camel": "userPosts",
			"kebab":       "user-posts",
			"snake":       "user_posts",
		}
		for convention, expected := range conventions {
			c, err := NewController(&config.Controller{NamingConvention: convention})
			require.NoError(t, err, convention)
			assert.Equal(t, expected, c.NamerFunc("user_posts"), convention)
		}
	})

	t.Run("NilConfig", func(t *testing.T) {
		_, err := NewController(nil)
		assert.Error(t, err)
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		_, err := NewController(&config.Controller{LogLevel: "verbose"})
		assert.Error(t, err)
	})

	t.Run("InvalidNamingConvention", func(t *testing.T) {
		_, err := NewController(&config.Controller{NamingConvention: "screaming"})
		assert.Error(t, err)
	})
}

// TestQueryIncluded tests creating the included parameter from the url query.
func TestQueryIncluded(t *testing.T) {
	c, err := NewController(&config.Controller{})
	require.NoError(t, err)

	q := url.Values{}
	q.Set(query.QueryParamInclude, "posts.comments,author")

	included := c.QueryIncluded(q)
	assert.Equal(t, []string{"posts.comments", "author"}, included.IncludedResources())

	included = c.QueryIncluded(url.Values{})
	assert.False(t, included.HasIncludedResources())
}

// TestIncludedCollections tests mapping the top level included resources
// into their collection names.
func TestIncludedCollections(t *testing.T) {
	c, err := NewController(&config.Controller{NamingConvention: "camel"})
	require.NoError(t, err)

	value := "user_post.comment,author,star.*"
	included := c.NewIncluded(&value)

	assert.Equal(t, []string{"UserPosts", "Authors"}, c.IncludedCollections(included))
}

// TestDefault tests the default controller.
func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, c, Default())
	assert.NotNil(t, c.NamerFunc)
}
