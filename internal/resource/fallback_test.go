package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/domain/project"
	"github.com/kit-start/kitstart/internal/repository"
	"github.com/kit-start/kitstart/internal/repository/mocks"
)

type fixedMode bool

func (m fixedMode) DemoEnabled(ctx context.Context) bool { return bool(m) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errServerDown = errors.New("connection refused")

func TestProjectsDemoModeSkipsRemote(t *testing.T) {
	remote := new(mocks.ProjectSource)
	local := new(mocks.ProjectSource)
	local.On("List", mock.Anything).Return([]project.Project{{ID: "p1"}}, nil)

	src := NewProjects(fixedMode(true), remote, local, nil, testLogger())
	projects, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	remote.AssertNotCalled(t, "List", mock.Anything)
	local.AssertExpectations(t)
}

func TestProjectsFallBackToLocalOnRemoteFailure(t *testing.T) {
	remote := new(mocks.ProjectSource)
	remote.On("List", mock.Anything).Return(nil, errServerDown)
	local := new(mocks.ProjectSource)
	local.On("List", mock.Anything).Return([]project.Project{{ID: "local"}}, nil)

	src := NewProjects(fixedMode(false), remote, local, nil, testLogger())
	projects, err := src.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", projects[0].ID)
}

func TestProjectsRemoteNotFoundServedFromLocal(t *testing.T) {
	remote := new(mocks.ProjectSource)
	remote.On("Get", mock.Anything, "p9").Return(nil, fmt.Errorf("api status 404: %w", repository.ErrNotFound))
	local := new(mocks.ProjectSource)
	local.On("Get", mock.Anything, "p9").Return(&project.Info{Project: project.Project{ID: "p9"}}, nil)

	src := NewProjects(fixedMode(false), remote, local, nil, testLogger())
	info, err := src.Get(context.Background(), "p9")
	require.NoError(t, err)
	require.Equal(t, "p9", info.ID)
}

func TestProjectsNotFoundOnBothSides(t *testing.T) {
	remote := new(mocks.ProjectSource)
	remote.On("Get", mock.Anything, "missing").Return(nil, fmt.Errorf("api status 404: %w", repository.ErrNotFound))
	local := new(mocks.ProjectSource)
	local.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	src := NewProjects(fixedMode(false), remote, local, nil, testLogger())
	_, err := src.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

// A document created locally while the server was down must stay
// reachable once the server is back and answers 404 for it.
func TestDocumentsRemoteNotFoundServedFromLocal(t *testing.T) {
	doc := document.Document{ID: "d9", Name: "локальный.docx", ProjectID: "p1", Content: document.TextContent("текст")}
	remote := new(mocks.DocumentSource)
	remote.On("Get", mock.Anything, "p1", "d9").Return(nil, fmt.Errorf("api status 404: %w", repository.ErrNotFound))
	local := new(mocks.DocumentSource)
	local.On("Get", mock.Anything, "p1", "d9").Return(&doc, nil)

	src := NewDocuments(fixedMode(false), remote, local, nil, testLogger())
	got, err := src.Get(context.Background(), "p1", "d9")
	require.NoError(t, err)
	require.Equal(t, "локальный.docx", got.Name)
	require.Equal(t, "текст", got.Content.Text)
}

func TestProjectsListCachesRemoteResult(t *testing.T) {
	remote := new(mocks.ProjectSource)
	remote.On("List", mock.Anything).Return([]project.Project{{ID: "p1"}}, nil).Once()
	local := new(mocks.ProjectSource)

	src := NewProjects(fixedMode(false), remote, local, NewCache(), testLogger())
	for i := 0; i < 3; i++ {
		projects, err := src.List(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 1)
	}
	remote.AssertExpectations(t)
}

func TestProjectsCreateInvalidatesListCache(t *testing.T) {
	remote := new(mocks.ProjectSource)
	remote.On("List", mock.Anything).Return([]project.Project{{ID: "p1"}}, nil).Twice()
	remote.On("Create", mock.Anything, mock.Anything).Return(&project.Project{ID: "p2"}, nil)
	local := new(mocks.ProjectSource)

	src := NewProjects(fixedMode(false), remote, local, NewCache(), testLogger())
	_, err := src.List(context.Background())
	require.NoError(t, err)

	_, err = src.Create(context.Background(), project.CreateInput{Name: "новый", FieldID: "f1"})
	require.NoError(t, err)

	// cache dropped, so the list hits remote again
	_, err = src.List(context.Background())
	require.NoError(t, err)
	remote.AssertExpectations(t)
}

func TestFieldsFallBackToLocal(t *testing.T) {
	remote := new(mocks.FieldSource)
	remote.On("ListFields", mock.Anything).Return(nil, errServerDown)
	local := new(mocks.FieldSource)
	local.On("ListFields", mock.Anything).Return([]project.Field{{ID: "f1"}}, nil)

	src := NewFields(fixedMode(false), remote, local, nil, testLogger())
	fields, err := src.ListFields(context.Background())
	require.NoError(t, err)
	require.Len(t, fields, 1)
}

func TestDocumentsAlwaysFailingRemoteStillServesLocal(t *testing.T) {
	remote := new(mocks.DocumentSource)
	remote.On("List", mock.Anything, "p1").Return(nil, errServerDown)
	remote.On("Get", mock.Anything, "p1", "d1").Return(nil, errServerDown)
	remote.On("Create", mock.Anything, mock.Anything).Return(nil, errServerDown)
	remote.On("Delete", mock.Anything, "p1", "d1").Return(errServerDown)

	doc := document.Document{ID: "d1", Name: "ТЗ.docx", ProjectID: "p1"}
	local := new(mocks.DocumentSource)
	local.On("List", mock.Anything, "p1").Return([]document.Document{doc}, nil)
	local.On("Get", mock.Anything, "p1", "d1").Return(&doc, nil)
	local.On("Create", mock.Anything, mock.Anything).Return(&doc, nil)
	local.On("Delete", mock.Anything, "p1", "d1").Return(nil)

	src := NewDocuments(fixedMode(false), remote, local, nil, testLogger())
	ctx := context.Background()

	docs, err := src.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	got, err := src.Get(ctx, "p1", "d1")
	require.NoError(t, err)
	require.Equal(t, "d1", got.ID)

	_, err = src.Create(ctx, document.CreateInput{Name: "ТЗ.docx", ProjectID: "p1"})
	require.NoError(t, err)

	require.NoError(t, src.Delete(ctx, "p1", "d1"))
}

func TestCacheHitsReturnIsolatedCopies(t *testing.T) {
	remote := new(mocks.ProjectSource)
	remote.On("List", mock.Anything).Return([]project.Project{
		{ID: "p1", Name: "Демо-проект 1", Field: project.Field{ID: "f1", Sections: []project.Section{
			{ID: "s1", Name: "Основная информация"},
		}}},
	}, nil).Once()
	remote.On("Get", mock.Anything, "p1").Return(&project.Info{
		Project: project.Project{ID: "p1", Name: "Демо-проект 1"},
	}, nil).Once()

	src := NewProjects(fixedMode(false), remote, new(mocks.ProjectSource), NewCache(), testLogger())
	ctx := context.Background()

	first, err := src.List(ctx)
	require.NoError(t, err)
	first[0].Name = "испорчено"
	first[0].Field.Sections[0].Name = "испорчено"

	second, err := src.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Демо-проект 1", second[0].Name)
	require.Equal(t, "Основная информация", second[0].Field.Sections[0].Name)

	info, err := src.Get(ctx, "p1")
	require.NoError(t, err)
	info.Name = "испорчено"

	again, err := src.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Демо-проект 1", again.Name)
	remote.AssertExpectations(t)
}

func TestDocumentsUpdateInvalidatesEntityAndListCache(t *testing.T) {
	doc := document.Document{ID: "d1", Name: "ТЗ.docx", ProjectID: "p1"}
	remote := new(mocks.DocumentSource)
	remote.On("Get", mock.Anything, "p1", "d1").Return(&doc, nil).Twice()
	remote.On("List", mock.Anything, "p1").Return([]document.Document{doc}, nil).Twice()
	remote.On("Update", mock.Anything, mock.Anything).Return(&doc, nil)

	src := NewDocuments(fixedMode(false), remote, new(mocks.DocumentSource), NewCache(), testLogger())
	ctx := context.Background()

	_, err := src.Get(ctx, "p1", "d1")
	require.NoError(t, err)
	_, err = src.List(ctx, "p1")
	require.NoError(t, err)

	name := "новое имя.docx"
	_, err = src.Update(ctx, document.UpdateInput{ID: "d1", ProjectID: "p1", Name: &name})
	require.NoError(t, err)

	_, err = src.Get(ctx, "p1", "d1")
	require.NoError(t, err)
	_, err = src.List(ctx, "p1")
	require.NoError(t, err)
	remote.AssertExpectations(t)
}
