package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-management/internal/errs"
	"library-management/internal/handler"
	"library-management/internal/model"
	"library-management/pkg/auth"
	"library-management/pkg/validate"

	service_mocks "library-management/internal/handler/mocks"
)

type mocks struct {
	catalog *service_mocks.MockCatalogService
	account *service_mocks.MockAccountService
	issue   *service_mocks.MockIssueService
	search  *service_mocks.MockSearchService
}

func newTestHandler(t *testing.T) (*handler.Handler, mocks) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	m := mocks{
		catalog: service_mocks.NewMockCatalogService(c),
		account: service_mocks.NewMockAccountService(c),
		issue:   service_mocks.NewMockIssueService(c),
		search:  service_mocks.NewMockSearchService(c),
	}
	h := handler.New(m.catalog, m.account, m.issue, m.search,
		auth.Config{SigningKey: "test-key", TokenTTL: time.Hour},
		zap.NewExample().Named("test"))
	return h, m
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

// withClaims injects an authenticated librarian the way the JWT
// middleware does.
func withClaims(librarianID int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetLibrarianContext(c.Request().Context(), &auth.Claims{LibrarianID: librarianID, Name: "marian"})
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func TestHandler_RequestIssue(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	issueTime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. pending",
			body: `{"bookId":1,"userId":2}`,
			mockBehavior: func(m mocks) {
				m.issue.EXPECT().
					RequestIssue(gomock.Any(), model.IssueRequest{BookID: 1, UserID: 2}).
					Return(model.IssueRecord{
						IssueUID:  "0b3f4a1c-8f0e-4a8f-b5a1-3f1c2d4e5f6a",
						BookID:    1,
						UserID:    2,
						IssueTime: issueTime,
						Status:    model.StatusPending,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"issueUid":"0b3f4a1c-8f0e-4a8f-b5a1-3f1c2d4e5f6a","bookId":1,"userId":2,"issuedBy":null,"issueTime":"2024-01-15T10:30:00Z","status":"PENDING"}`,
			},
		},
		{
			name:         "err. missing userId",
			body:         `{"bookId":1}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. no copies",
			body: `{"bookId":1,"userId":2}`,
			mockBehavior: func(m mocks) {
				m.issue.EXPECT().
					RequestIssue(gomock.Any(), model.IssueRequest{BookID: 1, UserID: 2}).
					Return(model.IssueRecord{}, errs.ErrUnavailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is not available to issue"}`,
			},
		},
		{
			name: "err. ineligible user",
			body: `{"bookId":1,"userId":2}`,
			mockBehavior: func(m mocks) {
				m.issue.EXPECT().
					RequestIssue(gomock.Any(), model.IssueRequest{BookID: 1, UserID: 2}).
					Return(model.IssueRecord{}, errors.Wrap(errs.ErrConflict, "user is not eligible to issue a book"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"user is not eligible to issue a book: conflict"}`,
			},
		},
		{
			name: "err. unknown book",
			body: `{"bookId":1,"userId":2}`,
			mockBehavior: func(m mocks) {
				m.issue.EXPECT().
					RequestIssue(gomock.Any(), model.IssueRequest{BookID: 1, UserID: 2}).
					Return(model.IssueRecord{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)
			tt.mockBehavior(m)

			e := newEcho()
			e.POST("/issues", h.RequestIssue)

			r := httptest.NewRequest(http.MethodPost, "/issues", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ApproveIssue(t *testing.T) {
	t.Parallel()
	const issueUID = "0b3f4a1c-8f0e-4a8f-b5a1-3f1c2d4e5f6a"

	t.Run("acting librarian is forwarded to the service", func(t *testing.T) {
		t.Parallel()
		h, m := newTestHandler(t)
		m.issue.EXPECT().
			ApproveIssue(gomock.Any(), issueUID, int64(7)).
			Return(model.IssueRecord{IssueUID: issueUID, Status: model.StatusIssued}, nil)

		e := newEcho()
		e.POST("/issues/:issueUid/approve", h.ApproveIssue, withClaims(7))

		r := httptest.NewRequest(http.MethodPost, "/issues/"+issueUID+"/approve", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no claims means unauthorized", func(t *testing.T) {
		t.Parallel()
		h, _ := newTestHandler(t)

		e := newEcho()
		e.POST("/issues/:issueUid/approve", h.ApproveIssue)

		r := httptest.NewRequest(http.MethodPost, "/issues/"+issueUID+"/approve", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("off-duty approver", func(t *testing.T) {
		t.Parallel()
		h, m := newTestHandler(t)
		m.issue.EXPECT().
			ApproveIssue(gomock.Any(), issueUID, int64(7)).
			Return(model.IssueRecord{}, errs.ErrUnauthenticated)

		e := newEcho()
		e.POST("/issues/:issueUid/approve", h.ApproveIssue, withClaims(7))

		r := httptest.NewRequest(http.MethodPost, "/issues/"+issueUID+"/approve", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_ReturnIssue(t *testing.T) {
	t.Parallel()
	const issueUID = "0b3f4a1c-8f0e-4a8f-b5a1-3f1c2d4e5f6a"

	h, m := newTestHandler(t)
	m.issue.EXPECT().ReturnIssue(gomock.Any(), issueUID).Return(nil)

	e := newEcho()
	e.POST("/issues/:issueUid/return", h.ReturnIssue)

	r := httptest.NewRequest(http.MethodPost, "/issues/"+issueUID+"/return", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"message":"Book has been returned successfully"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_DeleteReturnedIssue(t *testing.T) {
	t.Parallel()
	const issueUID = "0b3f4a1c-8f0e-4a8f-b5a1-3f1c2d4e5f6a"

	t.Run("not yet returned", func(t *testing.T) {
		t.Parallel()
		h, m := newTestHandler(t)
		m.issue.EXPECT().
			DeleteReturnedIssue(gomock.Any(), issueUID, int64(7)).
			Return(errors.Wrap(errs.ErrConflict, "book has not been returned to the library"))

		e := newEcho()
		e.DELETE("/issues/:issueUid", h.DeleteReturnedIssue, withClaims(7))

		r := httptest.NewRequest(http.MethodDelete, "/issues/"+issueUID, http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, `{"message":"book has not been returned to the library: conflict"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_SearchBooks(t *testing.T) {
	t.Parallel()

	t.Run("field terms", func(t *testing.T) {
		t.Parallel()
		h, m := newTestHandler(t)
		m.search.EXPECT().
			SearchBooks(gomock.Any(), "dune", "", "ace").
			Return([]model.BookDetails{{ID: 3, Title: "Dune", Author: "Frank Herbert", Publisher: "Ace Books", Category: "Fiction", Copies: 4}}, nil)

		e := newEcho()
		e.GET("/books/search", h.SearchBooks)

		r := httptest.NewRequest(http.MethodGet, "/books/search?title=dune&publisher=ace", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`[{"id":3,"title":"Dune","author":"Frank Herbert","publisher":"Ace Books","category":"Fiction","copies":4}]`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("free-text term", func(t *testing.T) {
		t.Parallel()
		h, m := newTestHandler(t)
		m.search.EXPECT().SearchAny(gomock.Any(), "herbert").Return([]model.BookDetails{}, nil)

		e := newEcho()
		e.GET("/books/search", h.SearchBooks)

		r := httptest.NewRequest(http.MethodGet, "/books/search?q=herbert", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_CheckUser(t *testing.T) {
	t.Parallel()
	h, m := newTestHandler(t)
	m.account.EXPECT().CheckUser(gomock.Any(), "ghost").Return(int64(0), nil)

	e := newEcho()
	e.GET("/users/check/:username", h.CheckUser)

	r := httptest.NewRequest(http.MethodGet, "/users/check/ghost", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `0`, strings.Trim(w.Body.String(), "\n"))
}
