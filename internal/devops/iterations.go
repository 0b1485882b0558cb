package devops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"devops-board/internal/domain"
)

type iterationList struct {
	Value []iterationDTO `json:"value"`
}

type iterationDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	Attributes struct {
		StartDate  *time.Time `json:"startDate"`
		FinishDate *time.Time `json:"finishDate"`
		TimeFrame  string     `json:"timeFrame"`
	} `json:"attributes"`
}

// CurrentIteration returns the team's current iteration. The team segment
// is path-escaped; team names routinely contain spaces. The result is never
// cached: which iteration is current changes over time.
func (c *Client) CurrentIteration(ctx context.Context, team string) (domain.Iteration, error) {
	params := url.Values{}
	params.Set("$timeframe", "current")
	u := c.endpoint(c.project+"/"+url.PathEscape(team)+"/_apis/work/teamsettings/iterations", params)

	data, err := c.get(ctx, u)
	if err != nil {
		return domain.Iteration{}, fmt.Errorf("failed to get current iteration: %w", err)
	}

	var list iterationList
	if err := json.Unmarshal(data, &list); err != nil {
		return domain.Iteration{}, fmt.Errorf("failed to decode iterations: %w", err)
	}
	if len(list.Value) == 0 {
		return domain.Iteration{}, fmt.Errorf("%w %q", domain.ErrNoCurrentIteration, team)
	}

	dto := list.Value[0]
	return domain.Iteration{
		ID:         dto.ID,
		Name:       dto.Name,
		Path:       dto.Path,
		StartDate:  dto.Attributes.StartDate,
		FinishDate: dto.Attributes.FinishDate,
		TimeFrame:  dto.Attributes.TimeFrame,
	}, nil
}
