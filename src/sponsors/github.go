package sponsors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const githubGraphQLURL = "https://api.github.com/graphql"

// GitHub lists the authenticated user's sponsors through the GraphQL API.
type GitHub struct {
	Endpoint string // GraphQL endpoint, defaults to api.github.com
	Token    string
	Client   *http.Client
	MaxBytes int64 // per response, defaults to 4 MiB
}

// NewGitHub creates a GitHub Sponsors provider. Enterprise servers are
// addressed by their base URL; empty selects github.com.
func NewGitHub(token, baseURL string) *GitHub {
	endpoint := githubGraphQLURL
	if baseURL != "" && !strings.Contains(baseURL, "github.com") {
		endpoint = strings.TrimRight(baseURL, "/") + "/api/graphql"
	}
	return &GitHub{
		Endpoint: endpoint,
		Token:    token,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GitHub) Name() string { return "github" }

const sponsorshipsQuery = `query($cursor: String) {
  viewer {
    sponsorshipsAsMaintainer(first: 100, after: $cursor, includePrivate: true, activeOnly: true) {
      pageInfo { hasNextPage endCursor }
      nodes {
        createdAt
        privacyLevel
        tier { monthlyPriceInDollars }
        sponsorEntity {
          ... on User { login url avatarUrl }
          ... on Organization { login url avatarUrl }
        }
      }
    }
  }
}`

type sponsorshipsPage struct {
	Viewer struct {
		SponsorshipsAsMaintainer struct {
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
			Nodes []struct {
				CreatedAt    time.Time `json:"createdAt"`
				PrivacyLevel string    `json:"privacyLevel"`
				Tier         *struct {
					MonthlyPriceInDollars int `json:"monthlyPriceInDollars"`
				} `json:"tier"`
				SponsorEntity struct {
					Login     string `json:"login"`
					URL       string `json:"url"`
					AvatarURL string `json:"avatarUrl"`
				} `json:"sponsorEntity"`
			} `json:"nodes"`
		} `json:"sponsorshipsAsMaintainer"`
	} `json:"viewer"`
}

// Sponsorships walks every page of active sponsorships, private ones included.
func (g *GitHub) Sponsorships(ctx context.Context) ([]Sponsorship, error) {
	if g.Token == "" {
		return nil, fmt.Errorf("sponsors: github: no token")
	}

	var out []Sponsorship
	var cursor *string
	for {
		var page sponsorshipsPage
		if err := g.query(ctx, sponsorshipsQuery, map[string]any{"cursor": cursor}, &page); err != nil {
			return nil, err
		}

		conn := page.Viewer.SponsorshipsAsMaintainer
		for _, n := range conn.Nodes {
			sp := Sponsorship{
				Account: Account{
					Name:  n.SponsorEntity.Login,
					URL:   n.SponsorEntity.URL,
					Image: n.SponsorEntity.AvatarURL,
				},
				Created: n.CreatedAt,
				Private: n.PrivacyLevel == "PRIVATE",
			}
			if n.Tier != nil {
				sp.Amount = n.Tier.MonthlyPriceInDollars
			}
			out = append(out, sp)
		}

		if !conn.PageInfo.HasNextPage || conn.PageInfo.EndCursor == "" {
			return out, nil
		}
		next := conn.PageInfo.EndCursor
		cursor = &next
	}
}

func (g *GitHub) query(ctx context.Context, query string, vars map[string]any, result any) error {
	data, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	if err != nil {
		return fmt.Errorf("sponsors: github: marshaling query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("sponsors: github: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.Token)
	req.Header.Set("Content-Type", "application/json")

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sponsors: github: POST %s: %w", g.Endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := readResponse(resp, g.MaxBytes)
	if err != nil {
		return fmt.Errorf("sponsors: github: POST %s: %w", g.Endpoint, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sponsors: github: POST %s: %d %s", g.Endpoint, resp.StatusCode, truncate(respBody, 512))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("sponsors: github: decoding response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("sponsors: github: %s", strings.Join(msgs, "; "))
	}
	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("sponsors: github: decoding data: %w", err)
	}
	return nil
}
