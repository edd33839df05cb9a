package services

import (
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/moby/locker"
)

// keyedLocker serialises work on contention keys. Several keys are always
// acquired in sorted order so overlapping callers cannot deadlock.
type keyedLocker struct {
	names *locker.Locker
}

func newKeyedLocker() *keyedLocker {
	return &keyedLocker{names: locker.New()}
}

// Lock blocks until every key is held and returns the matching release func.
func (k *keyedLocker) Lock(keys ...string) (unlock func()) {
	ordered := uniqueSorted(keys)
	for _, key := range ordered {
		k.names.Lock(key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(ordered) - 1; i >= 0; i-- {
				// Only fails for keys that are not held, which ordered never contains.
				_ = k.names.Unlock(ordered[i])
			}
		})
	}
}

func uniqueSorted(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func userDayKey(userID string, date time.Time) string {
	return "user:" + userID + ":" + domain.FormatDate(date)
}

func workspaceDayKey(workspaceID string, date time.Time) string {
	return "workspace:" + workspaceID + ":" + domain.FormatDate(date)
}

func buildingDayKey(buildingID string, date time.Time) string {
	return "building:" + buildingID + ":" + domain.FormatDate(date)
}

func reservationKey(reservationID string) string {
	return "reservation:" + reservationID
}
