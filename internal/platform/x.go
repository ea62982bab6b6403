package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Sabique-Islam/pixiefie/internal/profile"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

const defaultXAPI = "https://api.twitter.com"

// XAdapter fetches profiles from the X API v2 user lookup endpoint using an
// app-only bearer token. Without credentials it degrades to a demo profile
// that carries a setup hint in the bio instead of failing the card.
type XAdapter struct {
	client  *http.Client
	baseURL string
}

// NewXAdapter constructs an XAdapter over the shared client.
func NewXAdapter(client *http.Client) *XAdapter {
	return &XAdapter{client: client, baseURL: defaultXAPI}
}

// Platform implements Adapter.
func (a *XAdapter) Platform() profile.Platform {
	return profile.PlatformX
}

type xUserResponse struct {
	Data struct {
		Username        string `json:"username"`
		Name            string `json:"name"`
		Description     string `json:"description"`
		ProfileImageURL string `json:"profile_image_url"`
	} `json:"data"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func bearerToken() string {
	if token := os.Getenv("X_BEARER_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("TWITTER_BEARER_TOKEN")
}

// Fetch implements Adapter.
func (a *XAdapter) Fetch(ctx context.Context, username string) (*profile.Profile, error) {
	token := bearerToken()
	if token == "" {
		return &profile.Profile{
			Platform: profile.PlatformX,
			Username: username,
			Name:     username,
			Bio:      "X API credentials not configured. Set X_BEARER_TOKEN to fetch live data.",
			Link:     "https://x.com/" + username,
		}, nil
	}

	url := fmt.Sprintf("%s/2/users/by/username/%s?user.fields=name,username,description,profile_image_url", a.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pixieerrors.NewFetchError("x", username, "building request failed", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", "pixiefie-profile-card/1.0")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, pixieerrors.NewFetchError("x", username, "request failed", err)
	}
	defer resp.Body.Close()

	var body xUserResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, pixieerrors.NewFetchError("x", username, "user not found", nil)
	case http.StatusUnauthorized:
		return nil, pixieerrors.NewFetchError("x", username, "invalid X API credentials, check X_BEARER_TOKEN", nil)
	case http.StatusTooManyRequests:
		return nil, pixieerrors.NewFetchError("x", username, "rate limit exceeded, try again later", nil)
	default:
		detail := body.Detail
		if detail == "" {
			detail = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, pixieerrors.NewFetchError("x", username, detail, nil)
	}

	if decodeErr != nil {
		return nil, pixieerrors.NewFetchError("x", username, "decoding response failed", decodeErr)
	}
	if body.Data.Username == "" {
		return nil, pixieerrors.NewFetchError("x", username, "user not found", nil)
	}

	name := body.Data.Name
	if name == "" {
		name = body.Data.Username
	}

	// The API serves a 48x48 avatar by default; swap in the 400x400 variant.
	avatar := strings.Replace(body.Data.ProfileImageURL, "_normal", "_400x400", 1)

	return &profile.Profile{
		Platform: profile.PlatformX,
		Username: body.Data.Username,
		Name:     name,
		Avatar:   avatar,
		Bio:      body.Data.Description,
		Link:     "https://x.com/" + body.Data.Username,
	}, nil
}
