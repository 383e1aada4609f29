package results

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reversibot/reversibot/selfplay"
)

func TestRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	repo, err := Open(path)
	require.NoError(t, err)

	var st selfplay.Stats
	st.One, st.Two, st.Ties = 6, 3, 1
	st.Players[0].Wins = 7
	st.Players[0].OneWins = 4
	st.Players[0].TwoWins = 3
	st.Players[0].Moves = 100
	st.Players[0].Time = 200 * time.Millisecond
	st.Players[0].Margin = 50
	st.Players[1].Wins = 2
	st.Players[1].Margin = -50

	m := FromStats("minimax@3", "mcts@50", 12, &st)
	assert.Equal(t, 10, m.Games)
	assert.InDelta(t, 2.0, m.P1AvgMillis, 1e-9)
	assert.InDelta(t, 5.0, m.P1AvgMargin, 1e-9)
	assert.InDelta(t, selfplay.BinomTest(7, 2, 0.5), m.PValue, 1e-12)

	require.NoError(t, repo.InsertMatchup(m))
	assert.NotZero(t, m.ID)
	require.NoError(t, repo.InsertMatchup(FromStats("random", "random", 1, &selfplay.Stats{})))
	require.NoError(t, repo.Close())

	repo, err = Open(path)
	require.NoError(t, err)
	defer repo.Close()
	got, err := repo.Matchups()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "minimax@3", got[0].Player1)
	assert.Equal(t, "mcts@50", got[0].Player2)
	assert.Equal(t, 7, got[0].P1Wins)
	assert.Equal(t, int64(12), got[0].Seed)
	assert.Equal(t, m.Time.Unix(), got[0].Time.Unix())
	assert.Equal(t, "random", got[1].Player1)
	assert.Equal(t, 0, got[1].Games)
}
