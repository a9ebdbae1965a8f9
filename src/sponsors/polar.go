package sponsors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const polarAPIURL = "https://api.polar.sh"

// Polar lists active subscriptions of the organization owning the access
// token through Polar's REST API.
type Polar struct {
	BaseURL  string // defaults to api.polar.sh
	Token    string
	Client   *http.Client
	MaxBytes int64 // per response, defaults to 4 MiB
}

// NewPolar creates a Polar provider. An empty baseURL selects production;
// the sandbox lives at https://sandbox-api.polar.sh.
func NewPolar(token, baseURL string) *Polar {
	if baseURL == "" {
		baseURL = polarAPIURL
	}
	return &Polar{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *Polar) Name() string { return "polar" }

const polarPageSize = 100

type polarPage struct {
	Items []struct {
		CreatedAt         time.Time `json:"created_at"`
		Amount            int       `json:"amount"` // cents
		RecurringInterval string    `json:"recurring_interval"`
		Customer          struct {
			Name      string         `json:"name"`
			AvatarURL string         `json:"avatar_url"`
			Metadata  map[string]any `json:"metadata"`
		} `json:"customer"`
	} `json:"items"`
	Pagination struct {
		TotalCount int `json:"total_count"`
		MaxPage    int `json:"max_page"`
	} `json:"pagination"`
}

// Sponsorships walks every page of active subscriptions. Amounts are
// normalized to whole dollars per month. Customers without a public
// profile link are reported as private.
func (p *Polar) Sponsorships(ctx context.Context) ([]Sponsorship, error) {
	if p.Token == "" {
		return nil, fmt.Errorf("sponsors: polar: no token")
	}

	var out []Sponsorship
	for page := 1; ; page++ {
		var resp polarPage
		if err := p.get(ctx, page, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			acct := Account{
				Name:  item.Customer.Name,
				URL:   polarProfileURL(item.Customer.Metadata),
				Image: item.Customer.AvatarURL,
			}
			amount := item.Amount / 100
			if item.RecurringInterval == "year" {
				amount /= 12
			}
			out = append(out, Sponsorship{
				Account: acct,
				Amount:  amount,
				Created: item.CreatedAt,
				Private: acct.Name == "" || acct.URL == "",
			})
		}

		if page >= resp.Pagination.MaxPage || len(resp.Items) == 0 {
			return out, nil
		}
	}
}

// polarProfileURL derives a public link from customer metadata: a GitHub
// login wins over a plain url entry.
func polarProfileURL(meta map[string]any) string {
	if login, ok := meta["github_username"].(string); ok && login != "" {
		return "https://github.com/" + login
	}
	if u, ok := meta["url"].(string); ok && strings.HasPrefix(u, "https://") {
		return u
	}
	return ""
}

func (p *Polar) get(ctx context.Context, page int, result any) error {
	q := url.Values{}
	q.Set("active", "true")
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(polarPageSize))
	endpoint := p.BaseURL + "/v1/subscriptions/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("sponsors: polar: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.Token)
	req.Header.Set("Accept", "application/json")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sponsors: polar: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp, p.MaxBytes)
	if err != nil {
		return fmt.Errorf("sponsors: polar: GET %s: %w", endpoint, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sponsors: polar: GET %s: %d %s", endpoint, resp.StatusCode, truncate(body, 512))
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("sponsors: polar: decoding response: %w", err)
	}
	return nil
}
