package mcts

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/corvidlabs/riskmcts/internal/evaluator"
)

// Independent Engines share no mutable state beyond their own tree and
// evaluator, so several turns/matches must be safe to search concurrently.
func TestIndependentEnginesAreConcurrencySafe(t *testing.T) {
	const numSearches = 8
	var g errgroup.Group
	for i := 0; i < numSearches; i++ {
		seed := int64(i)
		g.Go(func() error {
			board := midGameBoard()
			eng := New(DefaultConfig(), evaluator.New(), 0, board, rand.New(rand.NewSource(seed)))
			eng.Run(time.Now().Add(150 * time.Millisecond))
			if eng.Tree().Node(eng.Tree().Root()).Plays == 0 {
				t.Errorf("search %d completed zero iterations", seed)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
