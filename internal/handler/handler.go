package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "library-management/docs"
	"library-management/internal/errs"
	"library-management/pkg/auth"
	md "library-management/pkg/middleware"
	"library-management/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	accountSvc AccountService
	issueSvc   IssueService
	searchSvc  SearchService
	jwt        auth.Config
	log        *zap.Logger
}

func New(catalog CatalogService, account AccountService, issue IssueService, search SearchService, jwt auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalog,
		accountSvc: account,
		issueSvc:   issue,
		searchSvc:  search,
		jwt:        jwt,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	authed := api.Group("", md.JWTAuthentication([]byte(h.jwt.SigningKey)))

	api.POST("/librarians/sign-up", h.SignUp)
	api.POST("/librarians/sign-in", h.SignIn)
	authed.POST("/librarians/sign-out", h.SignOut)
	authed.GET("/librarians/me", h.Me)
	authed.GET("/librarians", h.GetLibrarians)
	authed.GET("/librarians/:id", h.GetLibrarian)

	authed.POST("/users", h.CreateUser)
	authed.GET("/users", h.GetUsers)
	authed.GET("/users/issued", h.GetIssuedUsers)
	authed.GET("/users/:id", h.GetUser)
	api.GET("/users/check/:username", h.CheckUser)
	authed.PUT("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)
	api.GET("/users/:id/issues", h.GetIssuesByUser)

	authed.POST("/books", h.AddBook)
	api.GET("/books", h.GetBooks)
	api.GET("/books/details", h.GetBookDetails)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:id", h.GetBook)
	authed.PUT("/books/:id", h.UpdateBook)
	authed.DELETE("/books/:id", h.DeleteBook)

	authed.POST("/authors", h.CreateAuthor)
	api.GET("/authors", h.GetAuthors)
	api.GET("/authors/:id", h.GetAuthor)
	authed.PUT("/authors/:id", h.UpdateAuthor)
	authed.DELETE("/authors/:id", h.DeleteAuthor)

	authed.POST("/publishers", h.CreatePublisher)
	api.GET("/publishers", h.GetPublishers)
	api.GET("/publishers/:id", h.GetPublisher)
	authed.PUT("/publishers/:id", h.UpdatePublisher)
	authed.DELETE("/publishers/:id", h.DeletePublisher)

	authed.POST("/categories", h.CreateCategory)
	api.GET("/categories", h.GetCategories)
	api.GET("/categories/:id", h.GetCategory)
	authed.PUT("/categories/:id", h.UpdateCategory)
	authed.DELETE("/categories/:id", h.DeleteCategory)
	api.GET("/categories/:id/books", h.GetBooksByCategory)

	api.POST("/issues", h.RequestIssue)
	api.GET("/issues", h.GetIssues)
	authed.GET("/issues/events", h.GetIssueEvents)
	authed.GET("/issues/:issueUid", h.GetIssue)
	authed.POST("/issues/:issueUid/approve", h.ApproveIssue)
	api.POST("/issues/:issueUid/return", h.ReturnIssue)
	authed.DELETE("/issues/:issueUid", h.DeleteReturnedIssue)
	api.DELETE("/issues/:issueUid/force", h.ForceDeleteIssue)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error) *echo.HTTPError {
	var code int
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnavailable):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthenticated),
		errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	default:
		code = http.StatusInternalServerError
	}
	return echo.NewHTTPError(code, err.Error())
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// actingLibrarian pulls the authenticated librarian out of the request
// context set by the JWT middleware.
func actingLibrarian(c echo.Context) (*auth.Claims, error) {
	claims, ok := auth.LibrarianFromContext(c.Request().Context())
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "You are not authenticated")
	}
	return claims, nil
}
