package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhive/internal/application/ticket/dto"
	"deskhive/internal/application/ticket/usecases"
	"deskhive/internal/interfaces/http/handlers/testutil"
	"deskhive/internal/shared/authorization"
	"deskhive/internal/shared/errors"
)

type mockCreateTicketUC struct {
	result *dto.TicketDTO
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, p authorization.Principal, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(ctx context.Context, p authorization.Principal, ticketID uint) (*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result   *usecases.ListTicketsResult
	err      error
	gotQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(ctx context.Context, p authorization.Principal, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *dto.TicketDTO
	err    error
	gotCmd usecases.ChangeTicketStatusCommand
}

func (m *mockChangeStatusUC) Execute(ctx context.Context, p authorization.Principal, cmd usecases.ChangeTicketStatusCommand) (*dto.TicketDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err    error
	called bool
}

func (m *mockDeleteTicketUC) Execute(ctx context.Context, p authorization.Principal, ticketID uint) error {
	m.called = true
	return m.err
}

type mockAddMessageUC struct {
	result *dto.MessageDTO
	err    error
	gotCmd usecases.AddMessageCommand
}

func (m *mockAddMessageUC) Execute(ctx context.Context, p authorization.Principal, cmd usecases.AddMessageCommand) (*dto.MessageDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func newTestTicketHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeTicketStatusExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	addMessageUC usecases.AddMessageExecutor,
) *TicketHandler {
	return NewTicketHandler(
		createUC, getUC, listUC, nil, changeStatusUC, nil, deleteUC,
		addMessageUC, nil, testutil.NewMockLogger(),
	)
}

func memberPrincipal() authorization.Principal {
	return authorization.Principal{
		UserID:         5,
		Email:          "member@acme.test",
		Role:           authorization.RoleUser,
		Status:         "ACTIVE",
		OrganizationID: 2,
	}
}

func TestTicketHandler_Create_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: &dto.TicketDTO{ID: 1, Key: "TCK-0001", Title: "Printer on fire"}}
	handler := newTestTicketHandler(mockUC, nil, nil, nil, nil, nil)

	reqBody := CreateTicketRequest{
		Title:       "Printer on fire",
		Description: "Third floor, again",
		Type:        "INCIDENT",
		Priority:    "HIGH",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetPrincipal(c, memberPrincipal())

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "INCIDENT", mockUC.gotCmd.Type)
}

func TestTicketHandler_Create_MissingTitle(t *testing.T) {
	handler := newTestTicketHandler(&mockCreateTicketUC{}, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]string{
		"description": "no title",
		"type":        "INCIDENT",
		"priority":    "LOW",
	})
	testutil.SetPrincipal(c, memberPrincipal())

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_Get_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(nil, &mockGetTicketUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetURLParam(c, "id", "abc")

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_Get_ForbiddenMapsTo403(t *testing.T) {
	mockUC := &mockGetTicketUC{err: errors.NewForbiddenError("you do not have access to this ticket")}
	handler := newTestTicketHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/9", nil)
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetURLParam(c, "id", "9")

	handler.Get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTicketHandler_List_ParsesFilters(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{
		Tickets:  []*dto.TicketDTO{},
		Total:    0,
		Page:     2,
		PageSize: 10,
	}}
	handler := newTestTicketHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetQueryParams(c, map[string]string{
		"status":            "NEW",
		"priority":          "HIGH",
		"search":            "printer",
		"assigned_admin_id": "4",
		"sort_by":           "priority",
		"sort_order":        "desc",
		"page":              "2",
		"page_size":         "10",
	})

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "NEW", mockUC.gotQuery.Status)
	assert.Equal(t, "printer", mockUC.gotQuery.Search)
	require.NotNil(t, mockUC.gotQuery.AssignedAdminID)
	assert.Equal(t, uint(4), *mockUC.gotQuery.AssignedAdminID)
	assert.Equal(t, 2, mockUC.gotQuery.Page)
	assert.Equal(t, 10, mockUC.gotQuery.PageSize)
}

func TestTicketHandler_List_RejectsBadAssigneeFilter(t *testing.T) {
	handler := newTestTicketHandler(nil, nil, &mockListTicketsUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetQueryParams(c, map[string]string{"assigned_admin_id": "not-a-number"})

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_ChangeStatus_Success(t *testing.T) {
	mockUC := &mockChangeStatusUC{result: &dto.TicketDTO{ID: 9, Status: "RESOLVED"}}
	handler := newTestTicketHandler(nil, nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPatch, "/tickets/9/status", ChangeStatusRequest{Status: "RESOLVED"})
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetURLParam(c, "id", "9")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), mockUC.gotCmd.TicketID)
	assert.Equal(t, "RESOLVED", mockUC.gotCmd.Status)
}

func TestTicketHandler_Delete_NoContent(t *testing.T) {
	mockUC := &mockDeleteTicketUC{}
	handler := newTestTicketHandler(nil, nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/3", nil)
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetURLParam(c, "id", "3")

	handler.Delete(c)
	// The real gin engine flushes the buffered status after handlers run;
	// calling the handler directly skips that, so flush it here.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockUC.called)
}

func TestTicketHandler_AddMessage_Success(t *testing.T) {
	mockUC := &mockAddMessageUC{result: &dto.MessageDTO{ID: 1, Body: "on it"}}
	handler := newTestTicketHandler(nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/3/messages", AddMessageRequest{Body: "on it"})
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetURLParam(c, "id", "3")

	handler.AddMessage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), mockUC.gotCmd.TicketID)
	assert.Equal(t, "on it", mockUC.gotCmd.Body)
}

func TestTicketHandler_AddMessage_EmptyBodyRejected(t *testing.T) {
	handler := newTestTicketHandler(nil, nil, nil, nil, nil, &mockAddMessageUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/3/messages", map[string]string{})
	testutil.SetPrincipal(c, memberPrincipal())
	testutil.SetURLParam(c, "id", "3")

	handler.AddMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
