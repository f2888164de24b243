package threads

import (
	"net/url"
	"strings"
)

const (
	// BaseURL is the root of the Threads API
	BaseURL = "https://www.threads.net/api/v1"

	// FollowingEndpoint lists the accounts the token owner follows
	FollowingEndpoint = "/users/following"

	// DestroyFriendshipEndpoint is the unfollow endpoint prefix; the account
	// identifier is appended as the last path segment
	DestroyFriendshipEndpoint = "/friendships/destroy/"
)

// FollowingURL constructs the URL of the "list following" endpoint
func FollowingURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + FollowingEndpoint
}

// DestroyFriendshipURL constructs the unfollow URL for one account
func DestroyFriendshipURL(baseURL, accountID string) string {
	return strings.TrimRight(baseURL, "/") + DestroyFriendshipEndpoint + url.PathEscape(accountID)
}
