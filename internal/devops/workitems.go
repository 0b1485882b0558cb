package devops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"devops-board/internal/domain"
)

// maxBatchIDs is the tracking service's hard cap on ids per detail request.
const maxBatchIDs = 200

type wiqlRequest struct {
	Query string `json:"query"`
}

type wiqlResponse struct {
	WorkItems []struct {
		ID int `json:"id"`
	} `json:"workItems"`
}

// QueryWorkItemIDs executes a WIQL statement and returns the matching ids
// in the service's result order.
func (c *Client) QueryWorkItemIDs(ctx context.Context, wiql string) ([]int, error) {
	u := c.endpoint(c.project+"/_apis/wit/wiql", nil)

	data, err := c.postJSON(ctx, u, wiqlRequest{Query: wiql})
	if err != nil {
		return nil, fmt.Errorf("failed to run work item query: %w", err)
	}

	var resp wiqlResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode query result: %w", err)
	}

	ids := make([]int, 0, len(resp.WorkItems))
	for _, ref := range resp.WorkItems {
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

type workItemList struct {
	Value []workItemDTO `json:"value"`
}

type workItemDTO struct {
	ID     int `json:"id"`
	Fields struct {
		Title      string       `json:"System.Title"`
		State      string       `json:"System.State"`
		Type       string       `json:"System.WorkItemType"`
		AssignedTo *identityDTO `json:"System.AssignedTo"`
		Effort     *float64     `json:"Microsoft.VSTS.Scheduling.Effort"`
		Priority   *float64     `json:"Microsoft.VSTS.Common.BacklogPriority"`
		ChangedAt  *time.Time   `json:"System.ChangedDate"`
	} `json:"fields"`
}

func (d workItemDTO) toDomain() domain.WorkItem {
	item := domain.WorkItem{
		ID:        d.ID,
		Type:      d.Fields.Type,
		Title:     d.Fields.Title,
		State:     d.Fields.State,
		Effort:    d.Fields.Effort,
		Priority:  d.Fields.Priority,
		ChangedAt: d.Fields.ChangedAt,
	}
	if d.Fields.AssignedTo != nil {
		identity := d.Fields.AssignedTo.toDomain()
		item.AssignedTo = &identity
	}
	return item
}

// WorkItems fetches details for the given ids, requesting at most
// maxBatchIDs per call and appending results in chunk order. A failed chunk
// fails the whole fetch with no partial results. Ids unknown to the service
// are simply absent from the result. No ids means no request.
func (c *Client) WorkItems(ctx context.Context, ids []int, fields []string) ([]domain.WorkItem, error) {
	if len(ids) == 0 {
		return []domain.WorkItem{}, nil
	}

	items := make([]domain.WorkItem, 0, len(ids))
	for start := 0; start < len(ids); start += maxBatchIDs {
		end := min(start+maxBatchIDs, len(ids))

		chunk, err := c.workItemChunk(ctx, ids[start:end], fields)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch work items %d-%d of %d: %w", start+1, end, len(ids), err)
		}
		items = append(items, chunk...)
	}
	return items, nil
}

func (c *Client) workItemChunk(ctx context.Context, ids []int, fields []string) ([]domain.WorkItem, error) {
	idParams := make([]string, len(ids))
	for i, id := range ids {
		idParams[i] = strconv.Itoa(id)
	}

	params := url.Values{}
	params.Set("ids", strings.Join(idParams, ","))
	params.Set("fields", strings.Join(fields, ","))
	u := c.endpoint(c.project+"/_apis/wit/workitems", params)

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var list workItemList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode work items: %w", err)
	}

	items := make([]domain.WorkItem, 0, len(list.Value))
	for _, dto := range list.Value {
		items = append(items, dto.toDomain())
	}
	return items, nil
}
