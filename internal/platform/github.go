package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/Sabique-Islam/pixiefie/internal/profile"
	pixieerrors "github.com/Sabique-Islam/pixiefie/pkg/errors"
)

const defaultGitHubAPI = "https://api.github.com"

// GitHubAdapter fetches public profiles from the GitHub REST API. An
// optional GITHUB_TOKEN raises the unauthenticated rate limit.
type GitHubAdapter struct {
	client  *http.Client
	baseURL string
}

// NewGitHubAdapter constructs a GitHubAdapter over the shared client.
func NewGitHubAdapter(client *http.Client) *GitHubAdapter {
	return &GitHubAdapter{client: client, baseURL: defaultGitHubAPI}
}

// Platform implements Adapter.
func (a *GitHubAdapter) Platform() profile.Platform {
	return profile.PlatformGitHub
}

type githubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

// Fetch implements Adapter.
func (a *GitHubAdapter) Fetch(ctx context.Context, username string) (*profile.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s", a.baseURL, username), nil)
	if err != nil {
		return nil, pixieerrors.NewFetchError("github", username, "building request failed", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, pixieerrors.NewFetchError("github", username, "request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, pixieerrors.NewFetchError("github", username, "user not found", nil)
	case http.StatusForbidden, http.StatusTooManyRequests:
		return nil, pixieerrors.NewFetchError("github", username, "rate limit exceeded, try again later", nil)
	default:
		return nil, pixieerrors.NewFetchError("github", username, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var user githubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, pixieerrors.NewFetchError("github", username, "decoding response failed", err)
	}

	return &profile.Profile{
		Platform: profile.PlatformGitHub,
		Username: user.Login,
		Name:     user.Name,
		Avatar:   user.AvatarURL,
		Bio:      user.Bio,
		Link:     "https://github.com/" + user.Login,
	}, nil
}
