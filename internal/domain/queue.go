package domain

import (
	"fmt"
	"slices"
	"time"
)

// PeerQueue holds peer staleness values, most stale first.
type PeerQueue []time.Duration

type PeerFilter func(Agent) bool

// ExcludeUsername drops the named agent from the queue. An empty name
// keeps everyone.
func ExcludeUsername(username string) PeerFilter {
	return func(a Agent) bool {
		return username == "" || a.Username != username
	}
}

func BuildPeerQueue(peers []Agent, now time.Time, filters ...PeerFilter) (PeerQueue, error) {
	queue := make(PeerQueue, 0, len(peers))

	for _, peer := range peers {
		if !peer.InDispatchQueue() || !keepPeer(peer, filters) {
			continue
		}

		staleness, err := ComputeStaleness(peer.LastContactEnd, now)
		if err != nil {
			return nil, fmt.Errorf("peer %q staleness: %w", peer.Username, err)
		}
		queue = append(queue, staleness)
	}

	slices.SortFunc(queue, func(a, b time.Duration) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	return queue, nil
}

// Rank returns the 1-based position staleness would take in the queue.
// Only strictly staler peers count as ahead of it. ok is false when the
// queue is empty.
func (q PeerQueue) Rank(staleness time.Duration) (rank int, ok bool) {
	if len(q) == 0 {
		return 0, false
	}

	ahead := 0
	for _, peer := range q {
		if peer > staleness {
			ahead++
		}
	}

	return ahead + 1, true
}

func keepPeer(peer Agent, filters []PeerFilter) bool {
	for _, filter := range filters {
		if filter != nil && !filter(peer) {
			return false
		}
	}
	return true
}
