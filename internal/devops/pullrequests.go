package devops

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"devops-board/internal/domain"
	"devops-board/internal/query"
)

type pullRequestList struct {
	Value []pullRequestDTO `json:"value"`
}

type pullRequestDTO struct {
	ID            int           `json:"pullRequestId"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        string        `json:"status"`
	IsDraft       bool          `json:"isDraft"`
	CreatedBy     identityDTO   `json:"createdBy"`
	CreationDate  *time.Time    `json:"creationDate"`
	SourceRefName string        `json:"sourceRefName"`
	TargetRefName string        `json:"targetRefName"`
	Repository    repositoryDTO `json:"repository"`
	Reviewers     []reviewerDTO `json:"reviewers"`

	LastMergeSourceCommit commitRefDTO `json:"lastMergeSourceCommit"`
	LastMergeTargetCommit commitRefDTO `json:"lastMergeTargetCommit"`
}

type reviewerDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
	Vote        int    `json:"vote"`
	IsRequired  bool   `json:"isRequired"`
}

type commitRefDTO struct {
	CommitID string `json:"commitId"`
}

func (d pullRequestDTO) toDomain() domain.PullRequest {
	pr := domain.PullRequest{
		ID:           d.ID,
		Repository:   d.Repository.toDomain(),
		Title:        d.Title,
		Description:  d.Description,
		Author:       d.CreatedBy.toDomain(),
		Status:       domain.PullRequestStatus(d.Status),
		IsDraft:      d.IsDraft,
		SourceBranch: strings.TrimPrefix(d.SourceRefName, "refs/heads/"),
		TargetBranch: strings.TrimPrefix(d.TargetRefName, "refs/heads/"),
		CreatedAt:    d.CreationDate,

		MergeSourceCommit: d.LastMergeSourceCommit.CommitID,
		MergeTargetCommit: d.LastMergeTargetCommit.CommitID,
	}

	pr.Reviewers = make([]domain.Reviewer, 0, len(d.Reviewers))
	for _, r := range d.Reviewers {
		pr.Reviewers = append(pr.Reviewers, domain.Reviewer{
			ID:          r.ID,
			DisplayName: r.DisplayName,
			UniqueName:  r.UniqueName,
			Vote:        r.Vote,
			IsRequired:  r.IsRequired,
		})
	}
	return pr
}

// PullRequests searches pull requests across the whole project. Reviewer
// filtering, when requested, happens on the service side.
func (c *Client) PullRequests(ctx context.Context, search query.PullRequestSearch) ([]domain.PullRequest, error) {
	u := c.endpoint(c.project+"/_apis/git/pullrequests", search.Values())

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to search pull requests: %w", err)
	}
	return decodePullRequests(data)
}

// RepositoryPullRequests lists pull requests of one repository filtered by
// status. Reviewer filtering is up to the caller.
func (c *Client) RepositoryPullRequests(ctx context.Context, repo string, status domain.PullRequestStatus) ([]domain.PullRequest, error) {
	search := query.PullRequestSearch{Status: status}
	u := c.endpoint(c.project+"/_apis/git/repositories/"+repo+"/pullrequests", search.Values())

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests of %s: %w", repo, err)
	}
	return decodePullRequests(data)
}

// PullRequest fetches one pull request with its merge commit ids.
func (c *Client) PullRequest(ctx context.Context, repo string, id int) (domain.PullRequest, error) {
	u := c.endpoint(c.project+"/_apis/git/repositories/"+repo+"/pullrequests/"+strconv.Itoa(id), nil)

	data, err := c.get(ctx, u)
	if err != nil {
		if IsNotFound(err) {
			return domain.PullRequest{}, fmt.Errorf("%w: pull request %d in %s", domain.ErrNotFound, id, repo)
		}
		return domain.PullRequest{}, fmt.Errorf("failed to get pull request %d: %w", id, err)
	}

	var dto pullRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domain.PullRequest{}, fmt.Errorf("failed to decode pull request: %w", err)
	}
	return dto.toDomain(), nil
}

func decodePullRequests(data []byte) ([]domain.PullRequest, error) {
	var list pullRequestList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode pull requests: %w", err)
	}

	prs := make([]domain.PullRequest, 0, len(list.Value))
	for _, dto := range list.Value {
		prs = append(prs, dto.toDomain())
	}
	return prs, nil
}
