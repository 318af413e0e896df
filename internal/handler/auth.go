package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"library-management/internal/model"
	"library-management/pkg/auth"
)

// SignUp godoc
//
//	@Summary	Register a librarian and put them on duty
//	@Tags		librarians
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.CredentialsRequest	true	"credentials"
//	@Success	201		{object}	model.AuthResponse
//	@Router		/librarians/sign-up [post]
func (h *Handler) SignUp(c echo.Context) error {
	var req model.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lib, err := h.accountSvc.SignUpLibrarian(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	resp, err := h.tokenResponse(lib)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, resp)
}

// SignIn godoc
//
//	@Summary	Sign a librarian in, marking them as the on-duty approver
//	@Tags		librarians
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.CredentialsRequest	true	"credentials"
//	@Success	200		{object}	model.AuthResponse
//	@Router		/librarians/sign-in [post]
func (h *Handler) SignIn(c echo.Context) error {
	var req model.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lib, err := h.accountSvc.SignInLibrarian(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	resp, err := h.tokenResponse(lib)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) tokenResponse(lib model.Librarian) (model.AuthResponse, error) {
	token, err := auth.NewToken([]byte(h.jwt.SigningKey), lib.ID, lib.Name, h.jwt.TokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   time.Now().Add(h.jwt.TokenTTL).Unix(),
	}, nil
}

// SignOut godoc
//
//	@Summary	Take the on-duty librarian off duty
//	@Tags		librarians
//	@Security	BearerAuth
//	@Success	200	{string}	string	"ok"
//	@Router		/librarians/sign-out [post]
func (h *Handler) SignOut(c echo.Context) error {
	if err := h.accountSvc.SignOutLibrarian(c.Request().Context()); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Librarian logged out successfully"})
}

func (h *Handler) Me(c echo.Context) error {
	claims, err := actingLibrarian(c)
	if err != nil {
		return err
	}
	lib, err := h.accountSvc.GetLibrarian(c.Request().Context(), claims.LibrarianID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lib)
}

func (h *Handler) GetLibrarians(c echo.Context) error {
	libs, err := h.accountSvc.ListLibrarians(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, libs)
}

func (h *Handler) GetLibrarian(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	lib, err := h.accountSvc.GetLibrarian(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, lib)
}
