package results

const createMatchupTable = `
CREATE TABLE IF NOT EXISTS matchups (
  id integer primary key autoincrement,
  time datetime not null,
  seed integer,
  player1 varchar not null,
  player2 varchar not null,
  games int not null,
  p1_wins int not null,
  p2_wins int not null,
  ties int not null,
  cutoff int not null,
  p1_avg_ms real,
  p2_avg_ms real,
  p1_avg_margin real,
  p2_avg_margin real,
  p_value real
)`

const insertMatchup = `
INSERT INTO matchups (
  time, seed, player1, player2, games, p1_wins, p2_wins, ties, cutoff,
  p1_avg_ms, p2_avg_ms, p1_avg_margin, p2_avg_margin, p_value
) VALUES (
  :time, :seed, :player1, :player2, :games, :p1_wins, :p2_wins, :ties, :cutoff,
  :p1_avg_ms, :p2_avg_ms, :p1_avg_margin, :p2_avg_margin, :p_value
)`

const selectMatchups = `
SELECT * FROM matchups ORDER BY id
`
