package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/wifinity-io/rms-client/internal/http"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// CompaniesClient implements rms.CompaniesClient.
type CompaniesClient struct {
	httpClient *http.Client
	pageSize   int
	maxPages   int
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client, pageSize, maxPages int) *CompaniesClient {
	return &CompaniesClient{
		httpClient: httpClient,
		pageSize:   pageSize,
		maxPages:   maxPages,
	}
}

// List implements rms.CompaniesClient.List. The companies endpoint only
// supports q= search server-side; field filters in params are applied
// client-side to the returned page.
func (c *CompaniesClient) List(ctx context.Context, params *rms.QueryParams) (*rms.ListResponse[rms.Company], error) {
	path := "/companies"

	var queryParams url.Values
	if params != nil {
		serverParams := params.Clone()
		serverParams.Filters = nil
		queryParams = serverParams.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	var list rms.ListResponse[rms.Company]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing companies list: %w", err)
	}

	if params != nil && len(params.Filters) > 0 {
		list.Data = matchFilters(list.Data, params.Filters)
	}

	return &list, nil
}

// ListAll implements rms.CompaniesClient.ListAll.
func (c *CompaniesClient) ListAll(ctx context.Context) ([]rms.Company, error) {
	params := rms.NewQueryParams().WithLimit(c.pageSize)

	return rms.CollectAll[rms.Company](ctx, c, params, rms.WithMaxPages(c.maxPages))
}

// Get implements rms.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, id int) (*rms.Company, error) {
	path := "/companies/" + strconv.Itoa(id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	company, err := rms.UnwrapSingle[rms.Company](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing company: %w", err)
	}

	return company, nil
}

// GetByName implements rms.CompaniesClient.GetByName. The search is narrowed
// server-side with q= and then matched exactly (case-insensitive) client-side
// because q= is a substring search.
func (c *CompaniesClient) GetByName(ctx context.Context, name string) (*rms.Company, error) {
	params := rms.NewQueryParams().WithSearch(name).WithLimit(c.pageSize)

	companies, err := rms.CollectAll[rms.Company](ctx, c, params, rms.WithMaxPages(c.maxPages))
	if err != nil {
		return nil, fmt.Errorf("searching companies: %w", err)
	}

	var matches []rms.Company

	for _, company := range companies {
		if strings.EqualFold(company.Name, name) {
			matches = append(matches, company)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("company %q: %w", name, rms.ErrNoMatch)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("company %q: %w", name, rms.ErrMultipleMatches)
	}
}

// Filter implements rms.CompaniesClient.Filter. Filtering happens client-side
// over the full collection because the companies endpoint supports no field
// filters.
func (c *CompaniesClient) Filter(ctx context.Context, filters map[string]string) ([]rms.Company, error) {
	companies, err := c.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("filtering companies: %w", err)
	}

	return matchFilters(companies, filters), nil
}

// Create implements rms.CompaniesClient.Create.
func (c *CompaniesClient) Create(ctx context.Context, name string, parentID int, extra map[string]any) (*rms.Company, error) {
	if name == "" {
		return nil, fmt.Errorf("company name: %w", rms.ErrMissingField)
	}

	if parentID <= 0 {
		return nil, fmt.Errorf("company parent_id: %w", rms.ErrMissingField)
	}

	body := map[string]any{
		"name":      name,
		"parent_id": parentID,
	}
	for field, value := range extra {
		body[field] = value
	}

	resp, err := c.httpClient.Post(ctx, "/companies", body)
	if err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	company, err := rms.UnwrapSingle[rms.Company](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return company, nil
}

// Update implements rms.CompaniesClient.Update.
func (c *CompaniesClient) Update(ctx context.Context, id int, data map[string]any) (*rms.Company, error) {
	path := "/companies/" + strconv.Itoa(id)

	resp, err := c.httpClient.Put(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("updating company: %w", err)
	}

	company, err := rms.UnwrapSingle[rms.Company](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return company, nil
}

// Delete implements rms.CompaniesClient.Delete.
func (c *CompaniesClient) Delete(ctx context.Context, id int) error {
	path := "/companies/" + strconv.Itoa(id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}
