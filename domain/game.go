package domain

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.games (
//     app_id                  BIGINT PRIMARY KEY,
//     name                    TEXT NOT NULL,
//     genres                  JSONB,
//     categories              JSONB,
//     positive_review_ratio   NUMERIC,
//     active_players          BIGINT,
//     vector                  JSONB NOT NULL,
//     updated_at              TIMESTAMPTZ DEFAULT NOW()
// );

type Game struct {
	AppID               uint64                       `gorm:"primaryKey;column:app_id" json:"app_id"`
	Name                string                       `gorm:"column:name;type:text;not null" json:"name"`
	Genres              datatypes.JSONSlice[string]  `gorm:"column:genres" json:"genres,omitempty"`
	Categories          datatypes.JSONSlice[string]  `gorm:"column:categories" json:"categories,omitempty"`
	PositiveReviewRatio float64                      `gorm:"column:positive_review_ratio;type:numeric" json:"positive_review_ratio"`
	ActivePlayers       int64                        `gorm:"column:active_players" json:"active_players"`
	Vector              datatypes.JSONSlice[float64] `gorm:"column:vector" json:"-"`
	UpdatedAt           time.Time                    `gorm:"column:updated_at" json:"-"`
}

func (Game) TableName() string {
	return "games"
}

// StoreLink builds the public store page URL for an app id.
func StoreLink(appID uint64) string {
	return fmt.Sprintf("https://store.steampowered.com/app/%d", appID)
}
