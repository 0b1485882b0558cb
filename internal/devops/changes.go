package devops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"devops-board/internal/domain"
)

type iterationRefList struct {
	Value []struct {
		ID int `json:"id"`
	} `json:"value"`
}

// PullRequestIterations returns the iteration ids of a pull request,
// oldest first. Every push to the source branch creates a new iteration.
func (c *Client) PullRequestIterations(ctx context.Context, repo string, prID int) ([]int, error) {
	u := c.endpoint(c.project+"/_apis/git/repositories/"+repo+"/pullrequests/"+strconv.Itoa(prID)+"/iterations", nil)

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull request iterations: %w", err)
	}

	var list iterationRefList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode iterations: %w", err)
	}

	ids := make([]int, 0, len(list.Value))
	for _, ref := range list.Value {
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

type changeEntryList struct {
	ChangeEntries []changeEntryDTO `json:"changeEntries"`
}

type changeEntryDTO struct {
	ChangeType string `json:"changeType"`
	Item       struct {
		Path             string `json:"path"`
		OriginalObjectID string `json:"originalObjectId"`
	} `json:"item"`
}

func (d changeEntryDTO) toDomain() domain.FileChange {
	return domain.FileChange{
		Path:         d.Item.Path,
		ChangeType:   domain.ChangeType(d.ChangeType),
		OriginalPath: d.Item.OriginalObjectID,
	}
}

// IterationChanges lists the file changes of one pull request iteration.
func (c *Client) IterationChanges(ctx context.Context, repo string, prID, iterationID int) ([]domain.FileChange, error) {
	u := c.endpoint(
		c.project+"/_apis/git/repositories/"+repo+"/pullrequests/"+strconv.Itoa(prID)+
			"/iterations/"+strconv.Itoa(iterationID)+"/changes", nil)

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to list iteration changes: %w", err)
	}

	var list changeEntryList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode changes: %w", err)
	}

	changes := make([]domain.FileChange, 0, len(list.ChangeEntries))
	for _, dto := range list.ChangeEntries {
		changes = append(changes, dto.toDomain())
	}
	return changes, nil
}

type commitDiffDTO struct {
	AheadCount  int `json:"aheadCount"`
	BehindCount int `json:"behindCount"`
}

// CommitDiffStat summarizes how far target..base diverge.
func (c *Client) CommitDiffStat(ctx context.Context, repo, baseCommit, targetCommit string) (domain.DiffStat, error) {
	params := url.Values{}
	params.Set("baseVersion", baseCommit)
	params.Set("targetVersion", targetCommit)
	u := c.endpoint(c.project+"/_apis/git/repositories/"+repo+"/diffs/commits", params)

	data, err := c.get(ctx, u)
	if err != nil {
		return domain.DiffStat{}, fmt.Errorf("failed to diff commits: %w", err)
	}

	var dto commitDiffDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domain.DiffStat{}, fmt.Errorf("failed to decode commit diff: %w", err)
	}
	return domain.DiffStat{Ahead: dto.AheadCount, Behind: dto.BehindCount}, nil
}

// FileContent fetches file contents at a commit. A file that does not exist
// at that commit, which is normal for added or deleted files, reports
// found=false instead of an error.
func (c *Client) FileContent(ctx context.Context, repo, commit, path string) (content string, found bool, err error) {
	params := url.Values{}
	params.Set("path", strings.TrimPrefix(path, "/"))
	params.Set("versionType", "commit")
	params.Set("version", commit)
	params.Set("includeContent", "true")
	u := c.endpoint(c.project+"/_apis/git/repositories/"+repo+"/items", params)

	data, err := c.getRaw(ctx, u)
	if err != nil {
		if IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get content of %s at %s: %w", path, commit, err)
	}
	return string(data), true, nil
}
