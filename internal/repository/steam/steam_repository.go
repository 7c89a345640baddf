package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"playNext/domain"
)

type SteamConfig struct {
	APIKey  string
	BaseURL string
}

type SteamRepository struct {
	steamConfig SteamConfig
	client      *http.Client
}

func NewSteamRepository(cfg SteamConfig) *SteamRepository {
	return &SteamRepository{
		steamConfig: cfg,
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		Games []struct {
			AppID           uint64 `json:"appid"`
			PlaytimeForever int64  `json:"playtime_forever"`
		} `json:"games"`
	} `json:"response"`
}

type globalAchievementsResponse struct {
	AchievementPercentages struct {
		Achievements []struct {
			Name    string  `json:"name"`
			Percent float64 `json:"percent"`
		} `json:"achievements"`
	} `json:"achievementpercentages"`
}

type playerAchievementsResponse struct {
	PlayerStats struct {
		Achievements []struct {
			APIName  string `json:"apiname"`
			Achieved int    `json:"achieved"`
		} `json:"achievements"`
	} `json:"playerstats"`
}

func (r *SteamRepository) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("key", r.steamConfig.APIKey)

	reqURL := fmt.Sprintf("%s%s?%s", r.steamConfig.BaseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build steam request: %w", err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("steam request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read steam response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("steam api returned status %d", res.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode steam response: %w", err)
	}

	return nil
}

// ResolveUser turns a vanity name or raw steam id into a steam id plus the
// player's library. An account without resolvable vanity name is treated as a
// raw steam id. A private or empty library comes back as an empty map.
func (r *SteamRepository) ResolveUser(ctx context.Context, username string) (string, domain.Library, error) {
	steamID := username

	var vanity vanityResponse
	q := url.Values{}
	q.Set("vanityurl", username)
	if err := r.getJSON(ctx, "/ISteamUser/ResolveVanityURL/v1/", q, &vanity); err != nil {
		return "", nil, fmt.Errorf("failed to resolve vanity url: %w", err)
	}
	if vanity.Response.Success == 1 && vanity.Response.SteamID != "" {
		steamID = vanity.Response.SteamID
	}

	var owned ownedGamesResponse
	q = url.Values{}
	q.Set("steamid", steamID)
	q.Set("format", "json")
	q.Set("include_appinfo", "true")
	if err := r.getJSON(ctx, "/IPlayerService/GetOwnedGames/v1/", q, &owned); err != nil {
		return "", nil, fmt.Errorf("failed to fetch owned games: %w", err)
	}

	library := make(domain.Library, len(owned.Response.Games))
	for _, g := range owned.Response.Games {
		library[g.AppID] = g.PlaytimeForever
	}

	return steamID, library, nil
}

// FetchStats loads the achievement summary for one (game, player) pair.
// A game without achievement definitions yields a zero stat and no error.
func (r *SteamRepository) FetchStats(ctx context.Context, appID uint64, steamID string) (domain.AchievementStat, error) {
	var global globalAchievementsResponse
	q := url.Values{}
	q.Set("gameid", fmt.Sprintf("%d", appID))
	if err := r.getJSON(ctx, "/ISteamUserStats/GetGlobalAchievementPercentagesForApp/v2/", q, &global); err != nil {
		return domain.AchievementStat{}, fmt.Errorf("failed to fetch achievement definitions: %w", err)
	}

	total := len(global.AchievementPercentages.Achievements)
	if total == 0 {
		return domain.AchievementStat{}, nil
	}

	var player playerAchievementsResponse
	q = url.Values{}
	q.Set("steamid", steamID)
	q.Set("appid", fmt.Sprintf("%d", appID))
	q.Set("l", "en")
	if err := r.getJSON(ctx, "/ISteamUserStats/GetPlayerAchievements/v1/", q, &player); err != nil {
		return domain.AchievementStat{}, fmt.Errorf("failed to fetch player achievements: %w", err)
	}

	completed := 0
	for _, a := range player.PlayerStats.Achievements {
		if a.Achieved == 1 {
			completed++
		}
	}

	return domain.AchievementStat{Total: total, Completed: completed}, nil
}
