package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wifinity-io/rms-client/internal/http"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// TagsClient implements rms.TagsClient.
type TagsClient struct {
	httpClient *http.Client
	pageSize   int
	maxPages   int
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client, pageSize, maxPages int) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
		pageSize:   pageSize,
		maxPages:   maxPages,
	}
}

// List implements rms.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, params *rms.QueryParams) (*rms.ListResponse[rms.Tag], error) {
	path := "/tags"

	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var list rms.ListResponse[rms.Tag]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing tags list: %w", err)
	}

	return &list, nil
}

// ListAll implements rms.TagsClient.ListAll.
func (c *TagsClient) ListAll(ctx context.Context) ([]rms.Tag, error) {
	params := rms.NewQueryParams().WithLimit(c.pageSize)

	return rms.CollectAll[rms.Tag](ctx, c, params, rms.WithMaxPages(c.maxPages))
}

// Get implements rms.TagsClient.Get.
func (c *TagsClient) Get(ctx context.Context, id int) (*rms.Tag, error) {
	path := "/tags/" + strconv.Itoa(id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	tag, err := rms.UnwrapSingle[rms.Tag](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing tag: %w", err)
	}

	return tag, nil
}

// Create implements rms.TagsClient.Create.
func (c *TagsClient) Create(ctx context.Context, name string, extra map[string]any) (*rms.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("tag name: %w", rms.ErrMissingField)
	}

	body := map[string]any{"name": name}
	for field, value := range extra {
		body[field] = value
	}

	resp, err := c.httpClient.Post(ctx, "/tags", body)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	tag, err := rms.UnwrapSingle[rms.Tag](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return tag, nil
}

// Update implements rms.TagsClient.Update.
func (c *TagsClient) Update(ctx context.Context, id int, data map[string]any) (*rms.Tag, error) {
	path := "/tags/" + strconv.Itoa(id)

	resp, err := c.httpClient.Put(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("updating tag: %w", err)
	}

	tag, err := rms.UnwrapSingle[rms.Tag](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return tag, nil
}

// Delete implements rms.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, id int) error {
	path := "/tags/" + strconv.Itoa(id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}
