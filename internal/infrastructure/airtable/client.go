package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/logger"
)

// Airtable caps record deletion at 10 records per request.
const destroyBatchSize = 10

type Client struct {
	cfg    Config
	client *http.Client
}

var _ repository.OTPLogRepository = (*Client)(nil)

func NewClient(cfg Config, client *http.Client) *Client {
	cfg = cfg.withDefaults()
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, client: client}
}

func (c *Client) tableURL() string {
	return fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.BaseID, url.PathEscape(c.cfg.Table))
}

type recordFields struct {
	Email string `json:"Email"`
	OTP   string `json:"OTP"`
}

type createRequest struct {
	Fields recordFields `json:"fields"`
}

type record struct {
	ID          string       `json:"id"`
	Fields      recordFields `json:"fields"`
	CreatedTime time.Time    `json:"createdTime"`
}

type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// Append creates one row in the OTP table.
func (c *Client) Append(ctx context.Context, rec *entity.OTPRecord) error {
	body, err := json.Marshal(createRequest{Fields: recordFields{
		Email: rec.Email,
		OTP:   rec.Code,
	}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("airtable create: http %d", res.StatusCode)
	}
	return nil
}

// DeleteOlderThan removes log rows older than age, in destroy batches. The
// list endpoint pages at 100 records, so the offset is followed until the
// match set is exhausted.
func (c *Client) DeleteOlderThan(ctx context.Context, age time.Duration) (int, error) {
	hours := int(age.Hours())
	formula := fmt.Sprintf("DATETIME_DIFF(NOW(), {Created Time}, 'hours') > %d", hours)

	var ids []string
	offset := ""
	for {
		body, err := c.listPage(ctx, formula, offset)
		if err != nil {
			return 0, err
		}
		for _, rec := range body.Records {
			ids = append(ids, rec.ID)
		}
		if body.Offset == "" {
			break
		}
		offset = body.Offset
	}
	if len(ids) == 0 {
		return 0, nil
	}

	deleted := 0
	for start := 0; start < len(ids); start += destroyBatchSize {
		end := start + destroyBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		n, err := c.destroy(ctx, ids[start:end])
		deleted += n
		if err != nil {
			return deleted, err
		}
	}

	logger.Info("Cleaned up %d old OTP records", deleted)
	return deleted, nil
}

func (c *Client) listPage(ctx context.Context, formula, offset string) (*listResponse, error) {
	q := url.Values{}
	q.Set("filterByFormula", formula)
	if offset != "" {
		q.Set("offset", offset)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("airtable list: http %d", res.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *Client) destroy(ctx context.Context, ids []string) (int, error) {
	q := url.Values{}
	for _, id := range ids {
		q.Add("records[]", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.tableURL()+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("airtable destroy: http %d", res.StatusCode)
	}
	return len(ids), nil
}
