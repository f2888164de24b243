// Package audit tracks which accounts the user follows and detects drift
// between a locally cached follow list and the live one.
//
// FollowAudit holds the credential, the cached follow set and its
// collaborators. Remote failures never surface as errors from FetchLive,
// ComputeDrift or Unfollow: they are reported through the Notifier and the
// operation degrades to an empty or partial result. LastFetchError tells an
// empty live list apart from a failed fetch.
package audit
