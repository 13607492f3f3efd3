package document_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/repository"
	"github.com/kit-start/kitstart/internal/repository/mocks"
)

func TestServiceUploadValidates(t *testing.T) {
	source := new(mocks.DocumentSource)
	svc := document.NewService(source, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		in   document.CreateInput
		want error
	}{
		{
			name: "wrong extension",
			in:   document.CreateInput{Name: "отчёт.pdf", ProjectID: "p1"},
			want: document.ErrUnsupportedFile,
		},
		{
			name: "wrong mime",
			in: document.CreateInput{
				Name:      "отчёт.docx",
				ProjectID: "p1",
				Content:   document.BinaryContent([]byte("x"), "application/pdf"),
			},
			want: document.ErrUnsupportedFile,
		},
		{
			name: "too large",
			in: document.CreateInput{
				Name:      "большой.docx",
				ProjectID: "p1",
				Content:   document.BinaryContent(make([]byte, document.MaxUploadSize+1), ""),
			},
			want: document.ErrFileTooLarge,
		},
		{
			name: "missing project",
			in:   document.CreateInput{Name: "отчёт.docx"},
			want: document.ErrInvalidInput,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// rejected uploads never reach the source
	source.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceUploadPassesValidFile(t *testing.T) {
	source := new(mocks.DocumentSource)
	in := document.CreateInput{
		Name:      "ТЗ.docx",
		ProjectID: "p1",
		Content:   document.BinaryContent([]byte("payload"), ""),
	}
	source.On("Create", mock.Anything, in).Return(&document.Document{ID: "1", Name: in.Name}, nil)

	svc := document.NewService(source, nil)
	doc, err := svc.Upload(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "1", doc.ID)
	source.AssertExpectations(t)
}

func TestServiceGetMapsNotFound(t *testing.T) {
	source := new(mocks.DocumentSource)
	source.On("Get", mock.Anything, "p1", "missing").Return(nil, repository.ErrNotFound)

	svc := document.NewService(source, nil)
	_, err := svc.Get(context.Background(), "p1", "missing")
	require.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestServiceUpdateMapsNotFound(t *testing.T) {
	source := new(mocks.DocumentSource)
	source.On("Update", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	svc := document.NewService(source, nil)
	name := "новое.docx"
	_, err := svc.Update(context.Background(), document.UpdateInput{ID: "7", ProjectID: "p1", Name: &name})
	require.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestServiceRejectsBlankIDs(t *testing.T) {
	source := new(mocks.DocumentSource)
	svc := document.NewService(source, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, "  ")
	require.ErrorIs(t, err, document.ErrInvalidInput)
	_, err = svc.Get(ctx, "p1", "")
	require.ErrorIs(t, err, document.ErrInvalidInput)
	_, err = svc.Update(ctx, document.UpdateInput{ProjectID: "p1"})
	require.ErrorIs(t, err, document.ErrInvalidInput)
	require.ErrorIs(t, svc.Delete(ctx, "p1", ""), document.ErrInvalidInput)
}
