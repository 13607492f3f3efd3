package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kit-start/kitstart/internal/domain/project"
	"github.com/kit-start/kitstart/internal/repository"
	"github.com/kit-start/kitstart/internal/repository/mocks"
)

func TestServiceGetMapsNotFound(t *testing.T) {
	source := new(mocks.ProjectSource)
	source.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	svc := project.NewService(source, new(mocks.FieldSource), nil)
	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestServiceCreateResolvesField(t *testing.T) {
	fields := new(mocks.FieldSource)
	fields.On("ListFields", mock.Anything).Return([]project.Field{
		{ID: "f1", Name: "Информационные технологии"},
	}, nil)

	source := new(mocks.ProjectSource)
	source.On("Create", mock.Anything, project.CreateInput{Name: "Новый проект", FieldID: "f1"}).
		Return(&project.Project{ID: "p1", Name: "Новый проект"}, nil)

	svc := project.NewService(source, fields, nil)
	proj, err := svc.Create(context.Background(), project.CreateInput{Name: "Новый проект", FieldID: "f1"})
	require.NoError(t, err)
	require.Equal(t, "p1", proj.ID)
	source.AssertExpectations(t)
}

func TestServiceCreateUnknownField(t *testing.T) {
	fields := new(mocks.FieldSource)
	fields.On("ListFields", mock.Anything).Return([]project.Field{{ID: "f1"}}, nil)

	source := new(mocks.ProjectSource)
	svc := project.NewService(source, fields, nil)

	_, err := svc.Create(context.Background(), project.CreateInput{Name: "Проект", FieldID: "нет такого"})
	require.ErrorIs(t, err, project.ErrFieldNotFound)
	source.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceCreateRejectsBlankInput(t *testing.T) {
	svc := project.NewService(new(mocks.ProjectSource), new(mocks.FieldSource), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, project.CreateInput{Name: "", FieldID: "f1"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
	_, err = svc.Create(ctx, project.CreateInput{Name: "Проект", FieldID: " "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
	_, err = svc.Get(ctx, "")
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestValidateProgress(t *testing.T) {
	require.NoError(t, project.ValidateProgress(0))
	require.NoError(t, project.ValidateProgress(100))
	require.ErrorIs(t, project.ValidateProgress(-1), project.ErrInvalidInput)
	require.ErrorIs(t, project.ValidateProgress(101), project.ErrInvalidInput)
}
