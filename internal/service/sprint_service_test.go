package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"devops-board/internal/config"
	"devops-board/internal/domain"
	"devops-board/internal/format"
	"devops-board/internal/mocks"
	"devops-board/internal/query"
	"devops-board/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		DevOps: config.DevOpsConfig{
			BaseURL:      "https://dev.azure.com",
			Organization: "contoso",
			Project:      "payments",
			Team:         "Platform Team",
		},
	}
}

func testFormatter() *format.Formatter {
	return &format.Formatter{
		BaseURL:      "https://dev.azure.com",
		Organization: "contoso",
		Project:      "payments",
		Now: func() time.Time {
			return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		},
	}
}

func newSprintService(t *testing.T) (*service.SprintService, *mocks.MockWorkItemGateway) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockWorkItemGateway(ctrl)
	svc := service.NewSprintService(gateway, testFormatter(), testConfig(), zap.NewNop().Sugar())
	return svc, gateway
}

func TestSprintService_Sprint(t *testing.T) {
	iteration := domain.Iteration{
		ID:        "a1b2",
		Name:      "Sprint 12",
		Path:      `payments\Sprint 12`,
		TimeFrame: "current",
	}

	t.Run("success - full view", func(t *testing.T) {
		svc, gateway := newSprintService(t)

		changed := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
		effort := 5.0
		gateway.EXPECT().CurrentIteration(gomock.Any(), "Platform Team").Return(iteration, nil)
		gateway.EXPECT().QueryWorkItemIDs(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wiql string) ([]int, error) {
				assert.Contains(t, wiql, `[System.IterationPath] = 'payments\Sprint 12'`)
				assert.Contains(t, wiql, `[System.AreaPath] UNDER 'payments\Platform Team'`)
				return []int{7, 3}, nil
			})
		gateway.EXPECT().WorkItems(gomock.Any(), []int{7, 3}, query.WorkItemFields()).Return([]domain.WorkItem{
			{
				ID:         7,
				Type:       "Product Backlog Item",
				Title:      "Retry failed payouts",
				State:      "Committed",
				AssignedTo: &domain.Identity{ID: "u-1", DisplayName: "Jane Doe"},
				Effort:     &effort,
				ChangedAt:  &changed,
			},
			{ID: 3, Type: "Spike", Title: "Evaluate queue backpressure", State: "New"},
		}, nil)

		got, err := svc.Sprint(context.Background(), service.SprintFilter{})

		require.NoError(t, err)
		assert.Equal(t, "Sprint 12", got.Iteration.Name)
		assert.Equal(t, `payments\Sprint 12`, got.Iteration.Path)
		assert.Equal(t, "Platform Team", got.Team)
		assert.Equal(t, `payments\Platform Team`, got.AreaPath)
		assert.Equal(t, 2, got.Count)
		require.Len(t, got.WorkItems, 2)
		assert.Equal(t, "Jane Doe", got.WorkItems[0].AssignedTo)
		assert.Equal(t, 5, got.WorkItems[0].DaysSinceChange)
		assert.Equal(t, "https://dev.azure.com/contoso/payments/_workitems/edit/7", got.WorkItems[0].WebURL)
		assert.Equal(t, format.Unassigned, got.WorkItems[1].AssignedTo)
	})

	t.Run("success - explicit team overrides default", func(t *testing.T) {
		svc, gateway := newSprintService(t)

		gateway.EXPECT().CurrentIteration(gomock.Any(), "Billing Team").Return(iteration, nil)
		gateway.EXPECT().QueryWorkItemIDs(gomock.Any(), gomock.Any()).Return([]int{}, nil)
		gateway.EXPECT().WorkItems(gomock.Any(), []int{}, query.WorkItemFields()).Return([]domain.WorkItem{}, nil)

		got, err := svc.Sprint(context.Background(), service.SprintFilter{Team: "Billing Team"})

		require.NoError(t, err)
		assert.Equal(t, "Billing Team", got.Team)
		assert.Equal(t, `payments\Billing Team`, got.AreaPath)
		assert.Equal(t, 0, got.Count)
		assert.NotNil(t, got.WorkItems)
	})

	t.Run("success - unassigned filter drops items assigned in between", func(t *testing.T) {
		svc, gateway := newSprintService(t)

		gateway.EXPECT().CurrentIteration(gomock.Any(), "Platform Team").Return(iteration, nil)
		gateway.EXPECT().QueryWorkItemIDs(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wiql string) ([]int, error) {
				assert.Contains(t, wiql, "[System.AssignedTo] = '' OR [System.AssignedTo] IS NULL")
				return []int{1, 2}, nil
			})
		gateway.EXPECT().WorkItems(gomock.Any(), []int{1, 2}, query.WorkItemFields()).Return([]domain.WorkItem{
			{ID: 1, Title: "Still unassigned"},
			{ID: 2, Title: "Grabbed meanwhile", AssignedTo: &domain.Identity{DisplayName: "John Smith"}},
		}, nil)

		got, err := svc.Sprint(context.Background(), service.SprintFilter{Unassigned: true})

		require.NoError(t, err)
		require.Len(t, got.WorkItems, 1)
		assert.Equal(t, 1, got.WorkItems[0].ID)
		assert.Equal(t, 1, got.Count)
	})

	t.Run("error - contradictory filters rejected before any request", func(t *testing.T) {
		svc, _ := newSprintService(t)

		_, err := svc.Sprint(context.Background(), service.SprintFilter{
			Unassigned: true,
			AssignedTo: "u-1",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})

	t.Run("error - team required without default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockWorkItemGateway(ctrl)
		cfg := testConfig()
		cfg.DevOps.Team = ""
		svc := service.NewSprintService(gateway, testFormatter(), cfg, zap.NewNop().Sugar())

		_, err := svc.Sprint(context.Background(), service.SprintFilter{})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
		assert.Contains(t, err.Error(), "team is required")
	})

	t.Run("error - no current iteration", func(t *testing.T) {
		svc, gateway := newSprintService(t)

		gateway.EXPECT().CurrentIteration(gomock.Any(), "Platform Team").
			Return(domain.Iteration{}, domain.ErrNoCurrentIteration)

		_, err := svc.Sprint(context.Background(), service.SprintFilter{})

		assert.ErrorIs(t, err, domain.ErrNoCurrentIteration)
	})

	t.Run("error - detail fetch failure surfaces", func(t *testing.T) {
		svc, gateway := newSprintService(t)

		gateway.EXPECT().CurrentIteration(gomock.Any(), "Platform Team").Return(iteration, nil)
		gateway.EXPECT().QueryWorkItemIDs(gomock.Any(), gomock.Any()).Return([]int{5}, nil)
		gateway.EXPECT().WorkItems(gomock.Any(), []int{5}, query.WorkItemFields()).
			Return(nil, assert.AnError)

		_, err := svc.Sprint(context.Background(), service.SprintFilter{})

		assert.ErrorIs(t, err, assert.AnError)
	})
}
