package audit

import (
	"fmt"

	"followaudit/pkg/errors"
	"followaudit/pkg/followset"
	"followaudit/pkg/logger"
)

// Notice texts shared with the presentation layer
const (
	NoticeStartingFresh = "No existing follow list found, starting fresh"
	NoticeDriftHeader   = "Accounts no longer in your live follow list:"
	NoticeNoDrift       = "No drift detected"
	NoticeCacheUpdated  = "Follow list updated"

	// NoticeLiveUnavailable is shown instead of offering to unfollow when
	// the live list could not be fetched
	NoticeLiveUnavailable = "Live follow list unavailable; nothing to unfollow"
)

// RemoteClient is the part of the Threads API the audit needs
type RemoteClient interface {
	FetchFollowing() (followset.Set, error)
	DestroyFriendship(accountID string) error
}

// Store persists the cached follow set
type Store interface {
	Load() (followset.Set, error)
	Save(set followset.Set) error
}

// UnfollowReport lists the outcome of each unfollow request
type UnfollowReport struct {
	Succeeded followset.Set
	Failed    map[string]error
}

// HasFailures reports whether any unfollow request failed
func (r UnfollowReport) HasFailures() bool {
	return len(r.Failed) > 0
}

// FollowAudit compares a cached follow list with the live one and unfollows
// drifted accounts. It is used from one goroutine at a time.
type FollowAudit struct {
	token    string
	cache    followset.Set
	client   RemoteClient
	store    Store
	notifier Notifier
	logger   logger.Logger

	lastFetchErr error
}

// Option configures a FollowAudit
type Option func(*FollowAudit)

// WithLogger sets the logger used for diagnostics
func WithLogger(l logger.Logger) Option {
	return func(a *FollowAudit) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCache seeds the in-memory cache without reading the store
func WithCache(set followset.Set) Option {
	return func(a *FollowAudit) {
		a.cache = set.Clone()
	}
}

// New creates a FollowAudit. An empty token is rejected with a
// missing_credential error before anything else happens.
func New(token string, client RemoteClient, store Store, notifier Notifier, opts ...Option) (*FollowAudit, error) {
	if token == "" {
		return nil, errors.New(errors.ErrorTypeMissingCredential, 0, "an access token is required")
	}
	if client == nil {
		return nil, fmt.Errorf("remote client is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}

	a := &FollowAudit{
		token:    token,
		cache:    followset.New(),
		client:   client,
		store:    store,
		notifier: notifier,
		logger:   logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Token returns the credential the audit was constructed with
func (a *FollowAudit) Token() string {
	return a.token
}

// Cache returns a copy of the cached follow set
func (a *FollowAudit) Cache() followset.Set {
	return a.cache.Clone()
}

// LastFetchError returns the failure of the most recent FetchLive, or nil
// when it succeeded
func (a *FollowAudit) LastFetchError() error {
	return a.lastFetchErr
}

// Load replaces the cache with the stored follow set. A missing store starts
// from an empty cache with a warning. Unreadable content is returned as an
// error and the cache is left untouched.
func (a *FollowAudit) Load() error {
	set, err := a.store.Load()
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeStorageAbsent) {
			a.cache = followset.New()
			a.notifier.Warn(NoticeStartingFresh)
			a.logger.Info("No cached follow list, starting with an empty cache")
			return nil
		}
		a.logger.WithError(err).Error("Failed to load cached follow list")
		return fmt.Errorf("failed to load follow list: %w", err)
	}

	a.cache = set
	a.logger.InfoWithFields("Cached follow list loaded", map[string]interface{}{
		"count": set.Len(),
	})
	return nil
}

// FetchLive returns the live follow set. On any failure it reports the
// status code, records the error for LastFetchError and returns an empty set.
func (a *FollowAudit) FetchLive() followset.Set {
	live, err := a.client.FetchFollowing()
	if err != nil {
		a.lastFetchErr = err
		a.notifier.Error(fmt.Sprintf("Failed to fetch following list. Status code: %d", errors.StatusCode(err)))
		a.logger.WithError(err).Warn("Live follow list unavailable")
		return followset.New()
	}

	a.lastFetchErr = nil
	if live == nil {
		live = followset.New()
	}
	a.logger.DebugWithFields("Live follow list fetched", map[string]interface{}{
		"count": live.Len(),
	})
	return live
}

// ComputeDrift returns the cached identifiers missing from the live follow
// list, reporting each of them
func (a *FollowAudit) ComputeDrift() followset.Set {
	live := a.FetchLive()
	drift := a.cache.Difference(live)

	if drift.IsEmpty() {
		a.notifier.Info(NoticeNoDrift)
		return drift
	}

	a.notifier.Info(NoticeDriftHeader)
	for _, id := range drift.Sorted() {
		a.notifier.Info("- " + id)
	}
	a.logger.InfoWithFields("Drift computed", map[string]interface{}{
		"cached":  a.cache.Len(),
		"live":    live.Len(),
		"drifted": drift.Len(),
	})
	return drift
}

// Unfollow sends one unfollow request per identifier. Each success removes
// the identifier from the cache immediately; failures leave it cached. The
// cache is not persisted: call Persist for that.
func (a *FollowAudit) Unfollow(ids followset.Set) UnfollowReport {
	report := UnfollowReport{
		Succeeded: followset.New(),
		Failed:    make(map[string]error),
	}

	for _, id := range ids.Sorted() {
		err := a.client.DestroyFriendship(id)
		logger.LogUnfollow(a.logger, id, err)
		if err != nil {
			report.Failed[id] = err
			a.notifier.Error(fmt.Sprintf("Failed to unfollow %s. Status code: %d", id, errors.StatusCode(err)))
			continue
		}

		a.cache.Remove(id)
		report.Succeeded.Add(id)
		a.notifier.Success(fmt.Sprintf("Unfollowed %s", id))
	}

	return report
}

// RefreshCache overwrites the cache with the live follow list and persists
// it. A failed fetch still overwrites the cache with the empty set.
func (a *FollowAudit) RefreshCache() error {
	a.cache = a.FetchLive()
	if err := a.Persist(); err != nil {
		return err
	}
	a.notifier.Success(NoticeCacheUpdated)
	return nil
}

// Persist writes the whole cache to the store
func (a *FollowAudit) Persist() error {
	if err := a.store.Save(a.cache); err != nil {
		a.notifier.Error("Failed to save follow list")
		a.logger.WithError(err).Error("Failed to persist follow list")
		return fmt.Errorf("failed to persist follow list: %w", err)
	}
	a.logger.DebugWithFields("Follow list persisted", map[string]interface{}{
		"count": a.cache.Len(),
	})
	return nil
}
