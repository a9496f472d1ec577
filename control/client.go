package control

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to a running ddrx "serve" process's control API,
// mirroring the request/response shapes sdrproxy/client.Client uses
// against its own server.
type Client struct {
	baseURL string
}

// NewClient builds a Client against the control API at baseURL, e.g.
// "http://127.0.0.1:8090".
func NewClient(baseURL string) *Client { return &Client{baseURL: baseURL} }

// List returns every DDR currently registered with the server.
func (c *Client) List() ([]DDRInfo, error) {
	resp, err := http.Get(c.baseURL + "/ddrs")
	if err != nil {
		return nil, fmt.Errorf("control: listing DDRs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("control: listing DDRs: %s: %s", resp.Status, b)
	}
	var infos []DDRInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, fmt.Errorf("control: decoding DDR list: %w", err)
	}
	return infos, nil
}

// Tune requests a retune of the named DDR to fq Hz.
func (c *Client) Tune(name string, fq int64) error {
	body, err := json.Marshal(tuneRequest{FQ: fq})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/ddrs/%s/tune", c.baseURL, name)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("control: tuning %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("control: tuning %s: %s: %s", name, resp.Status, b)
	}
	return nil
}
