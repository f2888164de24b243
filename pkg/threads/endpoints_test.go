package threads

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowingURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "default base",
			baseURL:  BaseURL,
			expected: "https://www.threads.net/api/v1/users/following",
		},
		{
			name:     "trailing slash",
			baseURL:  "http://127.0.0.1:8080/api/",
			expected: "http://127.0.0.1:8080/api/users/following",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FollowingURL(tt.baseURL))
		})
	}
}

func TestDestroyFriendshipURL(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		expected  string
	}{
		{
			name:      "numeric id",
			accountID: "12345",
			expected:  BaseURL + "/friendships/destroy/12345",
		},
		{
			name:      "id with slash is escaped",
			accountID: "a/b",
			expected:  BaseURL + "/friendships/destroy/a%2Fb",
		},
		{
			name:      "id with space is escaped",
			accountID: "a b",
			expected:  BaseURL + "/friendships/destroy/a%20b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DestroyFriendshipURL(BaseURL, tt.accountID)
			assert.Equal(t, tt.expected, result)

			_, err := url.Parse(result)
			require.NoError(t, err)
		})
	}
}
