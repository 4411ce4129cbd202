package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-github/v39/github"
	"github.com/hashicorp/go-cleanhttp"

	"runfile/internal/ports"
	"runfile/internal/shared"
	"runfile/internal/types"
)

// Release feed coordinates. Published builds of this tool live in one
// fixed repository; only tests point the adapter elsewhere.
const (
	ReleaseFeedOwner = "runfilehq"
	ReleaseFeedRepo  = "runfile"

	releasePageSize = 100
)

// ReleaseFeedGitHubAdapter lists releases through the GitHub REST API.
// The endpoint is treated as publicly readable: no token, no retries,
// and deliberately no request timeout.
type ReleaseFeedGitHubAdapter struct {
	Owner string
	Repo  string

	client *github.Client
	http   *http.Client
}

// NewReleaseFeedGitHubAdapter builds the adapter. An empty baseURL
// means the public GitHub API; otherwise the API root is overridden
// (used by tests against local mocks).
func NewReleaseFeedGitHubAdapter(baseURL string, owner string, repo string) ReleaseFeedGitHubAdapter {
	httpClient := cleanhttp.DefaultClient()
	client := github.NewClient(httpClient)
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		if !strings.HasSuffix(trimmed, "/") {
			trimmed += "/"
		}
		if parsed, err := url.Parse(trimmed); err == nil {
			client.BaseURL = parsed
		}
	}
	return ReleaseFeedGitHubAdapter{
		Owner:  owner,
		Repo:   repo,
		client: client,
		http:   httpClient,
	}
}

// ListReleases requests the most recent page of releases, one call, up
// to 100 entries.
func (a ReleaseFeedGitHubAdapter) ListReleases(ctx context.Context) ([]types.Release, error) {
	opts := &github.ListOptions{PerPage: releasePageSize}
	releases, _, err := a.client.Repositories.ListReleases(ctx, a.Owner, a.Repo, opts)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to list releases for %s/%s", a.Owner, a.Repo)).
			WithCause(err)
	}
	mapped := make([]types.Release, 0, len(releases))
	for _, rel := range releases {
		mapped = append(mapped, mapRelease(rel))
	}
	return mapped, nil
}

func (a ReleaseFeedGitHubAdapter) AssetText(ctx context.Context, assetURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid asset url").
			WithCause(err)
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to fetch asset").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("asset fetch failed").
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, assetURL, strings.TrimSpace(string(body))))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read asset body").
			WithCause(err)
	}
	return string(body), nil
}

func mapRelease(rel *github.RepositoryRelease) types.Release {
	assets := make([]types.ReleaseAsset, 0, len(rel.Assets))
	for _, asset := range rel.Assets {
		assets = append(assets, types.ReleaseAsset{
			Name: asset.GetName(),
			URL:  asset.GetBrowserDownloadURL(),
		})
	}
	return types.Release{
		Tag:         rel.GetTagName(),
		PublishedAt: rel.GetPublishedAt().Time,
		Draft:       rel.GetDraft(),
		Prerelease:  rel.GetPrerelease(),
		HTMLURL:     rel.GetHTMLURL(),
		Body:        rel.GetBody(),
		Assets:      assets,
	}
}

var _ ports.ReleaseFeedPort = ReleaseFeedGitHubAdapter{}
