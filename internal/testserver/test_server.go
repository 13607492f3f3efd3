// Package testserver runs a fake kit-start API for integration tests.
// It serves the same wire shapes the remote client expects, backed by
// an in-memory local store.
package testserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/kit-start/kitstart/internal/domain/document"
	"github.com/kit-start/kitstart/internal/domain/project"
	"github.com/kit-start/kitstart/internal/localstore"
	"github.com/kit-start/kitstart/internal/remote"
	"github.com/kit-start/kitstart/internal/repository"
)

type TestServer struct {
	Server *httptest.Server
	DB     *localstore.DB
	Token  string

	projects  *localstore.ProjectStore
	documents *localstore.DocumentStore
}

// New starts a seeded fake API. Requests must carry the given bearer
// token; pass an empty token to disable auth.
func New(t *testing.T, token string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := localstore.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	require.NoError(t, db.Seed(t.Context()))

	ts := &TestServer{
		DB:        db,
		Token:     token,
		projects:  localstore.NewProjectStore(db),
		documents: localstore.NewDocumentStore(db),
	}
	ts.Server = httptest.NewServer(ts.router())

	t.Cleanup(func() {
		ts.Server.Close()
		_ = db.Close()
	})

	return ts
}

// URL returns the base URL clients should dial.
func (ts *TestServer) URL() string { return ts.Server.URL }

func (ts *TestServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(ts.authMiddleware)

	r.Get("/projects", ts.handleListProjects)
	r.Post("/projects", ts.handleCreateProject)
	r.Get("/projects/{id}", ts.handleGetProject)
	r.Get("/fields", ts.handleListFields)

	r.Route("/projects/{pid}/documents", func(r chi.Router) {
		r.Get("/", ts.handleListDocuments)
		r.Post("/", ts.handleCreateDocument)
		r.Get("/{id}", ts.handleGetDocument)
		r.Put("/{id}", ts.handleUpdateDocument)
		r.Delete("/{id}", ts.handleDeleteDocument)
	})

	return r
}

func (ts *TestServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ts.Token != "" && r.Header.Get("Authorization") != "Bearer "+ts.Token {
			writeError(w, http.StatusUnauthorized, "требуется авторизация")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (ts *TestServer) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := ts.projects.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := remote.ProjectsResponse{Projects: make([]remote.ProjectDTO, 0, len(projects))}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, remote.ProjectToDTO(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (ts *TestServer) handleGetProject(w http.ResponseWriter, r *http.Request) {
	info, err := ts.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remote.ProjectInfoDTO{
		ProjectDTO:    remote.ProjectToDTO(info.Project),
		DocumentsDone: info.DocumentsDone,
	})
}

func (ts *TestServer) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req remote.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}
	proj, err := ts.projects.Create(r.Context(), project.CreateInput{Name: req.Name, FieldID: req.FieldID})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, remote.ProjectToDTO(*proj))
}

func (ts *TestServer) handleListFields(w http.ResponseWriter, r *http.Request) {
	fields, err := ts.projects.ListFields(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	dtos := make([]remote.FieldDTO, 0, len(fields))
	for _, f := range fields {
		dtos = append(dtos, remote.FieldToDTO(f))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (ts *TestServer) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := ts.documents.List(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	dtos := make([]remote.DocumentDTO, 0, len(docs))
	for _, d := range docs {
		dtos = append(dtos, remote.DocumentToDTO(d))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (ts *TestServer) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := ts.documents.Get(r.Context(), chi.URLParam(r, "pid"), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remote.DocumentToDTO(*doc))
}

func (ts *TestServer) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req remote.UploadDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}
	content, err := document.DecodeWireContent(req.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректное содержимое документа")
		return
	}
	doc, err := ts.documents.Create(r.Context(), document.CreateInput{
		Name:      req.FileName,
		Content:   content,
		ProjectID: chi.URLParam(r, "pid"),
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, remote.DocumentToDTO(*doc))
}

func (ts *TestServer) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req remote.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}
	content, err := document.DecodeWireContent(req.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, "некорректное содержимое документа")
		return
	}
	doc, err := ts.documents.Update(r.Context(), document.UpdateInput{
		ID:        chi.URLParam(r, "id"),
		ProjectID: chi.URLParam(r, "pid"),
		Name:      &req.FileName,
		Content:   &content,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remote.DocumentToDTO(*doc))
}

func (ts *TestServer) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := ts.documents.Delete(r.Context(), chi.URLParam(r, "pid"), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "данные не найдены")
		return
	}
	if errors.Is(err, repository.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "некорректный запрос")
		return
	}
	writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}
