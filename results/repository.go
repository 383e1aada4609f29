package results

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
	"github.com/pkg/errors"

	"github.com/reversibot/reversibot/selfplay"
)

type Repository struct {
	db *sqlx.DB
}

// Matchup is the summary of one policy comparison run.
type Matchup struct {
	ID      int64     `db:"id"`
	Time    time.Time `db:"time"`
	Seed    int64     `db:"seed"`
	Player1 string    `db:"player1"`
	Player2 string    `db:"player2"`
	Games   int       `db:"games"`
	P1Wins  int       `db:"p1_wins"`
	P2Wins  int       `db:"p2_wins"`
	Ties    int       `db:"ties"`
	Cutoff  int       `db:"cutoff"`

	P1AvgMillis float64 `db:"p1_avg_ms"`
	P2AvgMillis float64 `db:"p2_avg_ms"`
	P1AvgMargin float64 `db:"p1_avg_margin"`
	P2AvgMargin float64 `db:"p2_avg_margin"`
	PValue      float64 `db:"p_value"`
}

// FromStats summarizes a selfplay run.
func FromStats(p1, p2 string, seed uint64, st *selfplay.Stats) *Matchup {
	m := &Matchup{
		Time:    time.Now().UTC(),
		Seed:    int64(seed),
		Player1: p1,
		Player2: p2,
		Games:   st.Count(),
		P1Wins:  st.Players[0].Wins,
		P2Wins:  st.Players[1].Wins,
		Ties:    st.Ties,
		Cutoff:  st.Cutoff,

		P1AvgMillis: float64(st.Players[0].AvgTime()) / float64(time.Millisecond),
		P2AvgMillis: float64(st.Players[1].AvgTime()) / float64(time.Millisecond),
		P1AvgMargin: st.AvgMargin(0),
		P2AvgMargin: st.AvgMargin(1),
	}
	a, b := int64(m.P1Wins), int64(m.P2Wins)
	if a < b {
		a, b = b, a
	}
	m.PValue = selfplay.BinomTest(a, b, 0.5)
	return m
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	if _, err = db.Exec(createMatchupTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create matchups table")
	}
	return &Repository{db: db}, nil
}

func (r *Repository) InsertMatchup(m *Matchup) error {
	res, err := r.db.NamedExec(insertMatchup, m)
	if err != nil {
		return errors.Wrap(err, "insert matchup")
	}
	m.ID, err = res.LastInsertId()
	return errors.Wrap(err, "insert matchup")
}

func (r *Repository) Matchups() ([]Matchup, error) {
	var out []Matchup
	if err := r.db.Select(&out, selectMatchups); err != nil {
		return nil, errors.Wrap(err, "select matchups")
	}
	return out, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
