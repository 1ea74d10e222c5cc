// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/cache"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/mock"
	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testNow struct{ t time.Time }

func (n *testNow) Now() time.Time { return n.t }

func newTestResourceSvc(t *testing.T) (ClientResourceService[models.Project], *mock.MockResourceAPI[models.Project], *cache.Cache, *testNow) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockResourceAPI[models.Project](ctrl)
	now := &testNow{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	c := cache.New(cache.WithClock(now.Now), cache.WithRetryDelay(time.Millisecond), cache.WithRetryable(retryableFetch))
	svc := NewClientResourceService[models.Project]("projects", api, c, ResourceOptions{
		ListTTL:        5 * time.Minute,
		SearchDebounce: time.Hour,
		Dependents:     []string{StatisticsPrefix},
	}, logger.Nop())
	return svc, api, c, now
}

func page(names ...string) models.ListResult[models.Project] {
	res := models.ListResult[models.Project]{Pagination: models.NewPagination(len(names), 1, 10)}
	for _, n := range names {
		res.Items = append(res.Items, models.Project{ID: n, Name: n})
	}
	return res
}

func TestListQuery_ServesFreshResultFromCache(t *testing.T) {
	svc, api, _, now := newTestResourceSvc(t)
	q := svc.Query(query.NewLocation("/projects"))
	defer q.Close()
	ctx := context.Background()

	want := models.ListParams{Page: 1, Limit: 10, Sort: "createdAt", Order: "desc"}
	api.EXPECT().List(gomock.Any(), want).Return(page("a"), nil).Times(1)

	first, err := q.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Value.Items[0].Name)
	assert.Equal(t, query.DefaultState(), first.State)

	now.t = now.t.Add(4 * time.Minute)
	second, err := q.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Value, second.Value)

	now.t = now.t.Add(2 * time.Minute)
	api.EXPECT().List(gomock.Any(), want).Return(page("b"), nil).Times(1)
	third, err := q.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", third.Value.Items[0].Name)
}

func TestListQuery_StateChangeFetchesNewKey(t *testing.T) {
	svc, api, _, _ := newTestResourceSvc(t)
	loc, err := query.ParseLocation("/projects?search=roof")
	require.NoError(t, err)
	q := svc.Query(loc)
	defer q.Close()
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().List(gomock.Any(), models.ListParams{Page: 1, Limit: 10, Search: "roof", Sort: "createdAt", Order: "desc"}).
			Return(page("a"), nil),
		api.EXPECT().List(gomock.Any(), models.ListParams{Page: 2, Limit: 10, Search: "roof", Sort: "createdAt", Order: "desc"}).
			Return(page("b"), nil),
	)

	_, err = q.Result(ctx)
	require.NoError(t, err)

	q.Synchronizer().SetPage(2)
	snap, err := q.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.State.Page)
	assert.Equal(t, "/projects?page=2&search=roof", loc.String())
}

func TestListQuery_RefetchBypassesFreshness(t *testing.T) {
	svc, api, _, _ := newTestResourceSvc(t)
	q := svc.Query(query.NewLocation("/projects"))
	defer q.Close()

	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(page("a"), nil)
	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(page("b"), nil)

	_, err := q.Result(context.Background())
	require.NoError(t, err)
	snap, err := q.Refetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b", snap.Value.Items[0].Name)
}

func TestListQuery_FailureKeepsStaleValue(t *testing.T) {
	svc, api, _, now := newTestResourceSvc(t)
	q := svc.Query(query.NewLocation("/projects"))
	defer q.Close()

	boom := &adapter.APIError{Kind: adapter.KindStatus, Status: 503, Message: "The service is temporarily unavailable."}
	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(page("a"), nil)
	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.ListResult[models.Project]{}, boom).Times(2)

	_, err := q.Result(context.Background())
	require.NoError(t, err)

	now.t = now.t.Add(10 * time.Minute)
	snap, err := q.Result(context.Background())
	require.ErrorIs(t, err, adapter.ErrServer)
	assert.True(t, snap.Stale)
	assert.Equal(t, "a", snap.Value.Items[0].Name)
}

func TestListQuery_SessionExpiredIsNotRetried(t *testing.T) {
	svc, api, _, _ := newTestResourceSvc(t)
	q := svc.Query(query.NewLocation("/projects"))
	defer q.Close()

	expired := &adapter.APIError{Kind: adapter.KindSessionExpired, Status: 401}
	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(models.ListResult[models.Project]{}, expired).Times(1)

	_, err := q.Result(context.Background())
	assert.ErrorIs(t, err, adapter.ErrSessionExpired)
}

func TestClientResourceService_MutationsInvalidate(t *testing.T) {
	svc, api, c, _ := newTestResourceSvc(t)
	q := svc.Query(query.NewLocation("/projects"))
	defer q.Close()
	ctx := context.Background()

	_, err := cache.Get(ctx, c, cache.Key(StatisticsPrefix+"users", ""), time.Hour, func(context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)

	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(page("a"), nil)
	_, err = q.Result(ctx)
	require.NoError(t, err)

	api.EXPECT().Create(ctx, models.Project{Name: "new"}).Return(models.Project{ID: "p9", Name: "new"}, nil)
	created, err := svc.Create(ctx, models.Project{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "p9", created.ID)

	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(page("a", "new"), nil)
	snap, err := q.Result(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Value.Items, 2)

	statsCalls := 0
	_, err = cache.Get(ctx, c, cache.Key(StatisticsPrefix+"users", ""), time.Hour, func(context.Context) (int, error) {
		statsCalls++
		return 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, statsCalls, "dependent statistics are invalidated too")
}

func TestClientResourceService_FailedMutationKeepsCache(t *testing.T) {
	svc, api, _, _ := newTestResourceSvc(t)
	q := svc.Query(query.NewLocation("/projects"))
	defer q.Close()
	ctx := context.Background()

	api.EXPECT().List(gomock.Any(), gomock.Any()).Return(page("a"), nil).Times(1)
	_, err := q.Result(ctx)
	require.NoError(t, err)

	conflict := &adapter.APIError{Kind: adapter.KindStatus, Status: 409}
	api.EXPECT().Update(ctx, "p1", gomock.Any()).Return(models.Project{}, conflict)
	_, err = svc.Update(ctx, "p1", models.Project{Name: "x"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = q.Result(ctx)
	require.NoError(t, err)
}

func TestClientResourceService_DeleteAndGet(t *testing.T) {
	svc, api, _, _ := newTestResourceSvc(t)
	ctx := context.Background()

	notFound := &adapter.APIError{Kind: adapter.KindStatus, Status: 404}
	api.EXPECT().Get(ctx, "missing").Return(models.Project{}, notFound)
	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	api.EXPECT().Delete(ctx, "p1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "p1"))

	api.EXPECT().Delete(ctx, "p2").Return(errors.New("boom"))
	assert.Error(t, svc.Delete(ctx, "p2"))

	assert.Equal(t, "projects", svc.Name())
}
