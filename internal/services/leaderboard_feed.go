package services

import (
	"sync"

	"github.com/calrank/calrank/internal/models"
)

// TopStatesSource is the query behind the leaderboard feed.
type TopStatesSource interface {
	TopByRankPoints(limit int) ([]models.RankedUserState, error)
}

// LeaderboardFeed is the standing top-N subscription: every state save
// triggers a broadcast and each subscriber receives the freshest
// snapshot. Slow subscribers never block a broadcast; a stale snapshot
// waiting in the channel is replaced by the new one.
type LeaderboardFeed struct {
	source TopStatesSource
	limit  int

	mu          sync.Mutex
	nextID      uint64
	subscribers map[uint64]chan []models.RankedUserState
	closed      bool
}

type LeaderboardSubscription struct {
	id      uint64
	feed    *LeaderboardFeed
	updates chan []models.RankedUserState
}

func NewLeaderboardFeed(source TopStatesSource, limit int) *LeaderboardFeed {
	if limit <= 0 {
		limit = LeaderboardLimit
	}
	return &LeaderboardFeed{
		source:      source,
		limit:       limit,
		subscribers: map[uint64]chan []models.RankedUserState{},
	}
}

// Subscribe registers a listener and immediately queues the current
// snapshot so new sessions render without waiting for the next save.
func (feed *LeaderboardFeed) Subscribe() (*LeaderboardSubscription, error) {
	snapshot, err := feed.source.TopByRankPoints(feed.limit)
	if err != nil {
		return nil, err
	}

	feed.mu.Lock()
	defer feed.mu.Unlock()
	if feed.closed {
		updates := make(chan []models.RankedUserState, 1)
		close(updates)
		return &LeaderboardSubscription{feed: feed, updates: updates}, nil
	}

	feed.nextID++
	updates := make(chan []models.RankedUserState, 1)
	updates <- snapshot
	feed.subscribers[feed.nextID] = updates
	return &LeaderboardSubscription{id: feed.nextID, feed: feed, updates: updates}, nil
}

// Broadcast pushes a fresh snapshot to every subscriber. Failures to
// read the source are swallowed here on purpose: a missed leaderboard
// push must never affect ranking state, and the next save retries.
func (feed *LeaderboardFeed) Broadcast() {
	snapshot, err := feed.source.TopByRankPoints(feed.limit)
	if err != nil {
		return
	}

	feed.mu.Lock()
	defer feed.mu.Unlock()
	for _, updates := range feed.subscribers {
		select {
		case updates <- snapshot:
		default:
			// Drop the stale queued snapshot, then queue the fresh one.
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- snapshot:
			default:
			}
		}
	}
}

// Close releases all subscriptions, ending their update streams.
func (feed *LeaderboardFeed) Close() {
	feed.mu.Lock()
	defer feed.mu.Unlock()
	if feed.closed {
		return
	}
	feed.closed = true
	for id, updates := range feed.subscribers {
		close(updates)
		delete(feed.subscribers, id)
	}
}

// Updates yields fresh snapshots until the subscription is released.
func (subscription *LeaderboardSubscription) Updates() <-chan []models.RankedUserState {
	return subscription.updates
}

// Unsubscribe releases the subscription. It is idempotent: calling it
// again, or on a subscription the feed already dropped, is a no-op.
func (subscription *LeaderboardSubscription) Unsubscribe() {
	feed := subscription.feed
	if feed == nil {
		return
	}

	feed.mu.Lock()
	defer feed.mu.Unlock()
	updates, exists := feed.subscribers[subscription.id]
	if !exists {
		return
	}
	delete(feed.subscribers, subscription.id)
	close(updates)
}
