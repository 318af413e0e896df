package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-management/internal/model"
)

// RequestIssue godoc
//
//	@Summary	Request a book issue; issued immediately when a librarian is on duty, pending otherwise
//	@Tags		issues
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.IssueRequest	true	"book and user"
//	@Success	200		{object}	model.IssueRecord
//	@Failure	400		{object}	echo.HTTPError	"no copies available"
//	@Failure	404		{object}	echo.HTTPError	"book or user not found"
//	@Failure	409		{object}	echo.HTTPError	"user not eligible or duplicate request"
//	@Router		/issues [post]
func (h *Handler) RequestIssue(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.issueSvc.RequestIssue(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

// ApproveIssue godoc
//
//	@Summary	Approve a pending issue on behalf of the acting librarian
//	@Tags		issues
//	@Security	BearerAuth
//	@Produce	json
//	@Param		issueUid	path		string	true	"issue uid"
//	@Success	200			{object}	model.IssueRecord
//	@Router		/issues/{issueUid}/approve [post]
func (h *Handler) ApproveIssue(c echo.Context) error {
	claims, err := actingLibrarian(c)
	if err != nil {
		return err
	}
	issueUID := c.Param("issueUid")
	if issueUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issueUid is empty")
	}
	rec, err := h.issueSvc.ApproveIssue(c.Request().Context(), issueUID, claims.LibrarianID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

// ReturnIssue godoc
//
//	@Summary	Return an issued book; returning twice credits inventory once
//	@Tags		issues
//	@Produce	json
//	@Param		issueUid	path	string	true	"issue uid"
//	@Success	200			{object}	map[string]string
//	@Router		/issues/{issueUid}/return [post]
func (h *Handler) ReturnIssue(c echo.Context) error {
	issueUID := c.Param("issueUid")
	if issueUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issueUid is empty")
	}
	if err := h.issueSvc.ReturnIssue(c.Request().Context(), issueUID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Book has been returned successfully"})
}

// DeleteReturnedIssue godoc
//
//	@Summary	Delete a returned issue record
//	@Tags		issues
//	@Security	BearerAuth
//	@Param		issueUid	path	string	true	"issue uid"
//	@Success	200			{object}	map[string]string
//	@Failure	409			{object}	echo.HTTPError	"book has not been returned"
//	@Router		/issues/{issueUid} [delete]
func (h *Handler) DeleteReturnedIssue(c echo.Context) error {
	claims, err := actingLibrarian(c)
	if err != nil {
		return err
	}
	issueUID := c.Param("issueUid")
	if issueUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issueUid is empty")
	}
	if err := h.issueSvc.DeleteReturnedIssue(c.Request().Context(), issueUID, claims.LibrarianID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Returned book deleted successfully"})
}

// ForceDeleteIssue godoc
//
//	@Summary	Delete an issue record in any state, reversing inventory only for issued records
//	@Tags		issues
//	@Param		issueUid	path	string	true	"issue uid"
//	@Success	200			{object}	map[string]string
//	@Router		/issues/{issueUid}/force [delete]
func (h *Handler) ForceDeleteIssue(c echo.Context) error {
	issueUID := c.Param("issueUid")
	if issueUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issueUid is empty")
	}
	if err := h.issueSvc.ForceDeleteIssue(c.Request().Context(), issueUID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "issue record deleted successfully"})
}

func (h *Handler) GetIssues(c echo.Context) error {
	items, err := h.issueSvc.ListIssues(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetIssue(c echo.Context) error {
	issueUID := c.Param("issueUid")
	if issueUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issueUid is empty")
	}
	item, err := h.issueSvc.GetIssue(c.Request().Context(), issueUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) GetIssuesByUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.issueSvc.GetIssuesByUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetIssueEvents(c echo.Context) error {
	events, err := h.issueSvc.ListIssueEvents(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}
