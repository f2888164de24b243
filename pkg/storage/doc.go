// Package storage keeps the local snapshot of the follow list.
//
// The snapshot is a single JSON file holding an array of account
// identifiers. Order carries no meaning and duplicates collapse on load.
//
// Features:
//   - Atomic writes using a temporary file in the same directory and rename
//   - Parent directory created on first save
//   - Typed errors: storage_absent for a missing file, storage for anything
//     unreadable or malformed
//
// Usage:
//
//	store := storage.NewFollowStore(cfg.Storage.CacheFile, log)
//	cached, err := store.Load()
//	if errors.IsType(err, errors.ErrorTypeStorageAbsent) {
//	    cached = followset.New()
//	}
//	err = store.Save(cached)
package storage
