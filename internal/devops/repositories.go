package devops

import (
	"context"
	"encoding/json"
	"fmt"

	"devops-board/internal/domain"
)

type repositoryList struct {
	Value []repositoryDTO `json:"value"`
}

type repositoryDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Project struct {
		Name string `json:"name"`
	} `json:"project"`
}

func (d repositoryDTO) toDomain() domain.Repository {
	return domain.Repository{
		ID:      d.ID,
		Name:    d.Name,
		Project: d.Project.Name,
	}
}

// Repositories lists every git repository of the project.
func (c *Client) Repositories(ctx context.Context) ([]domain.Repository, error) {
	u := c.endpoint(c.project+"/_apis/git/repositories", nil)

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	var list repositoryList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode repositories: %w", err)
	}

	repos := make([]domain.Repository, 0, len(list.Value))
	for _, dto := range list.Value {
		repos = append(repos, dto.toDomain())
	}
	return repos, nil
}
