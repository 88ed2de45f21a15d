package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_03_02_000000_create_players_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						nickname VARCHAR(255) NULL,
						profile_picture TEXT NULL,
						user_id INTEGER NULL REFERENCES users(id) ON DELETE SET NULL,
						role VARCHAR(20) NOT NULL DEFAULT 'player',
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_players_user_id ON players(user_id);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
					CREATE INDEX IF NOT EXISTS idx_players_name ON players(name);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS players CASCADE").Error
			},
		},
		{
			Name: "2025_03_02_000001_create_games_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS games (
						id SERIAL PRIMARY KEY,
						game_date DATE NOT NULL,
						black_score INTEGER NOT NULL DEFAULT 0,
						white_score INTEGER NOT NULL DEFAULT 0,
						motm_finalized BOOLEAN NOT NULL DEFAULT false,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_games_game_date ON games(game_date);
					CREATE INDEX IF NOT EXISTS idx_games_deleted_at ON games(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS games CASCADE").Error
			},
		},
		{
			Name: "2025_03_02_000002_create_game_stats_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS game_stats (
						id SERIAL PRIMARY KEY,
						game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
						player_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
						team VARCHAR(10) NOT NULL,
						goals INTEGER NOT NULL DEFAULT 0,
						assists INTEGER NOT NULL DEFAULT 0,
						own_goals INTEGER NOT NULL DEFAULT 0,
						is_goalkeeper BOOLEAN NOT NULL DEFAULT false,
						is_captain BOOLEAN NOT NULL DEFAULT false,
						clean_sheet BOOLEAN NOT NULL DEFAULT false,
						man_of_match BOOLEAN NOT NULL DEFAULT false,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						CONSTRAINT uq_game_stats_game_player UNIQUE (game_id, player_id)
					);
					CREATE INDEX IF NOT EXISTS idx_game_stats_game_id ON game_stats(game_id);
					CREATE INDEX IF NOT EXISTS idx_game_stats_player_id ON game_stats(player_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS game_stats CASCADE").Error
			},
		},
		{
			Name: "2025_03_02_000003_create_votes_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS votes (
						id SERIAL PRIMARY KEY,
						game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
						voter_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
						first_choice INTEGER NOT NULL REFERENCES players(id),
						second_choice INTEGER NULL REFERENCES players(id),
						third_choice INTEGER NULL REFERENCES players(id),
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						deleted_at TIMESTAMP NULL,
						CONSTRAINT uq_votes_game_voter UNIQUE (game_id, voter_id)
					);
					CREATE INDEX IF NOT EXISTS idx_votes_game_id ON votes(game_id);
					CREATE INDEX IF NOT EXISTS idx_votes_voter_id ON votes(voter_id);
					CREATE INDEX IF NOT EXISTS idx_votes_deleted_at ON votes(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS votes CASCADE").Error
			},
		},
	}
}
