package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"library-management/internal/model"
)

// AddBook godoc
//
//	@Summary	Add a book; an existing title gains the submitted copies
//	@Tags		books
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.BookRequest	true	"book"
//	@Success	200		{object}	model.Book
//	@Router		/books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.catalogSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBookDetails(c echo.Context) error {
	books, err := h.catalogSvc.ListBookDetails(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBookDetails(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book deleted successfully"})
}

// SearchBooks godoc
//
//	@Summary	Case-insensitive substring search over the catalog
//	@Tags		books
//	@Produce	json
//	@Param		title		query	string	false	"title term"
//	@Param		author		query	string	false	"author term"
//	@Param		publisher	query	string	false	"publisher term"
//	@Param		q			query	string	false	"free-text term matched against title, author and publisher"
//	@Success	200	{array}	model.BookDetails
//	@Router		/books/search [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	ctx := c.Request().Context()
	if q := c.QueryParam("q"); q != "" {
		books, err := h.searchSvc.SearchAny(ctx, q)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, books)
	}
	books, err := h.searchSvc.SearchBooks(ctx,
		c.QueryParam("title"),
		c.QueryParam("author"),
		c.QueryParam("publisher"),
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBooksByCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	books, err := h.searchSvc.BooksByCategory(c.Request().Context(), id, c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	return createRef(c, h.catalogSvc.CreateAuthor)
}

func (h *Handler) GetAuthors(c echo.Context) error {
	authors, err := h.catalogSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	author, err := h.catalogSvc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	return updateRef(c, h.catalogSvc.UpdateAuthor)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	return deleteRef(c, h.catalogSvc.DeleteAuthor, "author")
}

func (h *Handler) CreatePublisher(c echo.Context) error {
	return createRef(c, h.catalogSvc.CreatePublisher)
}

func (h *Handler) GetPublishers(c echo.Context) error {
	publishers, err := h.catalogSvc.ListPublishers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, publishers)
}

func (h *Handler) GetPublisher(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	publisher, err := h.catalogSvc.GetPublisher(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, publisher)
}

func (h *Handler) UpdatePublisher(c echo.Context) error {
	return updateRef(c, h.catalogSvc.UpdatePublisher)
}

func (h *Handler) DeletePublisher(c echo.Context) error {
	return deleteRef(c, h.catalogSvc.DeletePublisher, "publisher")
}

func (h *Handler) CreateCategory(c echo.Context) error {
	return createRef(c, h.catalogSvc.CreateCategory)
}

func (h *Handler) GetCategories(c echo.Context) error {
	categories, err := h.catalogSvc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.catalogSvc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	return updateRef(c, h.catalogSvc.UpdateCategory)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	return deleteRef(c, h.catalogSvc.DeleteCategory, "category")
}

// Author, publisher and category endpoints share one shape.

func createRef[T any](c echo.Context, create func(context.Context, string) (T, error)) error {
	var req model.NameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := create(c.Request().Context(), req.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func updateRef[T any](c echo.Context, update func(context.Context, int64, string) (T, error)) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.NameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := update(c.Request().Context(), id, req.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func deleteRef(c echo.Context, remove func(context.Context, int64) error, entity string) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := remove(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": entity + " deleted successfully"})
}
