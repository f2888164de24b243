// Package threads provides a minimal client for the Threads follow API.
//
// Two calls are supported:
//   - FetchFollowing: GET /users/following, returning the identifiers in data[].id
//   - DestroyFriendship: POST /friendships/destroy/{id}
//
// Only HTTP 200 counts as success. Any other status is returned as an
// *errors.Error whose Code is the status and whose Type classifies it
// (auth, not_found, rate_limit, server_error, remote_call_failed). Transport
// failures use ErrorTypeNetwork with Code 0.
//
// Example usage:
//
//	client := threads.NewClient(threads.BaseURL, token, 0, log)
//	following, err := client.FetchFollowing()
//	if err != nil {
//	    fmt.Println("status:", errors.StatusCode(err))
//	}
package threads
