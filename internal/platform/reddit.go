package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/Sabique-Islam/pixiefie/internal/profile"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

const defaultRedditAPI = "https://www.reddit.com"

// RedditAdapter fetches public profiles from reddit's unauthenticated
// about.json endpoint.
type RedditAdapter struct {
	client  *http.Client
	baseURL string
}

// NewRedditAdapter constructs a RedditAdapter over the shared client.
func NewRedditAdapter(client *http.Client) *RedditAdapter {
	return &RedditAdapter{client: client, baseURL: defaultRedditAPI}
}

// Platform implements Adapter.
func (a *RedditAdapter) Platform() profile.Platform {
	return profile.PlatformReddit
}

type redditAbout struct {
	Data struct {
		Name      string `json:"name"`
		IconImg   string `json:"icon_img"`
		Subreddit struct {
			Title             string `json:"title"`
			PublicDescription string `json:"public_description"`
		} `json:"subreddit"`
	} `json:"data"`
}

// Fetch implements Adapter.
func (a *RedditAdapter) Fetch(ctx context.Context, username string) (*profile.Profile, error) {
	url := fmt.Sprintf("%s/user/%s/about.json", a.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pixieerrors.NewFetchError("reddit", username, "building request failed", err)
	}
	// Reddit rejects requests without a descriptive user agent.
	req.Header.Set("User-Agent", "pixiefie-profile-card/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, pixieerrors.NewFetchError("reddit", username, "request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, pixieerrors.NewFetchError("reddit", username, "user not found", nil)
	case http.StatusTooManyRequests:
		return nil, pixieerrors.NewFetchError("reddit", username, "rate limit exceeded, try again later", nil)
	default:
		return nil, pixieerrors.NewFetchError("reddit", username, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var about redditAbout
	if err := json.NewDecoder(resp.Body).Decode(&about); err != nil {
		return nil, pixieerrors.NewFetchError("reddit", username, "decoding response failed", err)
	}

	name := about.Data.Name
	if name == "" {
		name = username
	}

	// icon_img arrives HTML-escaped and carries resize query params.
	avatar := html.UnescapeString(about.Data.IconImg)
	if cut := strings.Index(avatar, "?"); cut >= 0 {
		avatar = avatar[:cut]
	}

	return &profile.Profile{
		Platform: profile.PlatformReddit,
		Username: name,
		Name:     about.Data.Subreddit.Title,
		Avatar:   avatar,
		Bio:      about.Data.Subreddit.PublicDescription,
		Link:     "https://reddit.com/u/" + name,
	}, nil
}
