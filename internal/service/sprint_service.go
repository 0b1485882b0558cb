// Package service orchestrates the three views: sprint work items, pull
// requests awaiting review, and the changed files of one pull request.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"devops-board/internal/config"
	"devops-board/internal/domain"
	"devops-board/internal/format"
	"devops-board/internal/query"
	"devops-board/internal/report"
)

// SprintService builds the sprint view: the team's current iteration
// resolved first, then work items queried and fetched in detail.
type SprintService struct {
	gateway   WorkItemGateway
	formatter *format.Formatter
	log       *zap.SugaredLogger

	project     string
	defaultTeam string
}

// NewSprintService creates a new sprint view service.
func NewSprintService(gateway WorkItemGateway, formatter *format.Formatter, cfg *config.Config, log *zap.SugaredLogger) *SprintService {
	return &SprintService{
		gateway:     gateway,
		formatter:   formatter,
		log:         log.Named("service.sprint"),
		project:     cfg.DevOps.Project,
		defaultTeam: cfg.DevOps.Team,
	}
}

// SprintFilter describes one sprint view request. An empty team falls back
// to the configured default team.
type SprintFilter struct {
	Team       string
	States     []string
	Types      []string
	Unassigned bool
	AssignedTo string
}

// Sprint builds the sprint view. Contradictory assignment filters are
// rejected before any request goes out.
func (s *SprintService) Sprint(ctx context.Context, filter SprintFilter) (report.Sprint, error) {
	if filter.Unassigned && filter.AssignedTo != "" {
		return report.Sprint{}, fmt.Errorf("%w: unassigned and assignedTo are mutually exclusive", domain.ErrInvalidFilter)
	}

	team := filter.Team
	if team == "" {
		team = s.defaultTeam
	}
	if team == "" {
		return report.Sprint{}, fmt.Errorf("%w: team is required", domain.ErrInvalidFilter)
	}

	iteration, err := s.gateway.CurrentIteration(ctx, team)
	if err != nil {
		return report.Sprint{}, err
	}

	wiqlFilter := query.WorkItemFilter{
		Project:       s.project,
		Team:          team,
		IterationPath: iteration.Path,
		Types:         filter.Types,
		States:        filter.States,
		Unassigned:    filter.Unassigned,
		AssignedTo:    filter.AssignedTo,
	}
	wiql, err := wiqlFilter.BuildWIQL()
	if err != nil {
		return report.Sprint{}, err
	}

	ids, err := s.gateway.QueryWorkItemIDs(ctx, wiql)
	if err != nil {
		return report.Sprint{}, err
	}

	items, err := s.gateway.WorkItems(ctx, ids, query.WorkItemFields())
	if err != nil {
		return report.Sprint{}, err
	}

	rows := make([]format.WorkItemRow, 0, len(items))
	for _, item := range items {
		// An item assigned between the id query and the detail fetch must
		// not leak into an unassigned view.
		if filter.Unassigned && item.Assigned() {
			continue
		}
		rows = append(rows, s.formatter.WorkItem(item))
	}

	s.log.Infow("sprint view built",
		"team", team,
		"iteration", iteration.Name,
		"workItems", len(rows),
	)

	return report.Sprint{
		Iteration: report.IterationInfo{Name: iteration.Name, Path: iteration.Path},
		Team:      team,
		AreaPath:  s.project + `\` + team,
		Count:     len(rows),
		WorkItems: rows,
	}, nil
}
