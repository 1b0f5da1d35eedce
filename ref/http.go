package ref

import(
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	fpc "github.com/netbeen/flight-path-chronicle"
)

// HTTPProvider GETs the JSON lists from another instance of this server (or anything
// else with the same two endpoints).
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client // nil means a client with a 30s timeout
}

func (hp HTTPProvider)String() string { return hp.BaseURL }

func (hp HTTPProvider)client() *http.Client {
	if hp.Client != nil { return hp.Client }
	return &http.Client{Timeout: 30 * time.Second}
}

func (hp HTTPProvider)get(ctx context.Context, path string, v interface{}) error {
	url := strings.TrimSuffix(hp.BaseURL, "/") + path
	req,err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil { return err }
	req.Header.Set("Accept", "application/json")

	resp,err := hp.client().Do(req)
	if err != nil { return fmt.Errorf("GET %s: %w", url, err) }
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: bad status: %v", url, resp.Status)
	}
	if err := decode(resp.Body, JSON, v); err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	return nil
}

func (hp HTTPProvider)ListAirports(ctx context.Context) ([]fpc.Airport, error) {
	airports := []fpc.Airport{}
	err := hp.get(ctx, "/api/airports", &airports)
	return airports, err
}

func (hp HTTPProvider)ListFlights(ctx context.Context) ([]fpc.Flight, error) {
	flights := []fpc.Flight{}
	err := hp.get(ctx, "/api/flights", &flights)
	return flights, err
}
