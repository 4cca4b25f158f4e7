package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshbasket/storefront-api/internal/domain/entity"
	"github.com/freshbasket/storefront-api/internal/domain/enum"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/pkg/apperror"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// fakeTicketRepo implements repository.TicketRepository backed by maps
type fakeTicketRepo struct {
	tickets  map[uuid.UUID]*entity.Ticket
	messages []entity.TicketMessage
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[uuid.UUID]*entity.Ticket)}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	f.tickets[ticket.ID] = ticket
	return nil
}
func (f *fakeTicketRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return f.tickets[id], nil
}
func (f *fakeTicketRepo) GetWithMessages(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return f.tickets[id], nil
}
func (f *fakeTicketRepo) Update(_ context.Context, ticket *entity.Ticket) error {
	f.tickets[ticket.ID] = ticket
	return nil
}
func (f *fakeTicketRepo) ListByUser(context.Context, uuid.UUID, *pagination.PaginationParams) ([]entity.Ticket, int64, error) {
	return nil, 0, nil
}
func (f *fakeTicketRepo) List(context.Context, *repository.TicketFilterParams) ([]entity.Ticket, int64, error) {
	return nil, 0, nil
}
func (f *fakeTicketRepo) AppendMessage(_ context.Context, message *entity.TicketMessage) error {
	f.messages = append(f.messages, *message)
	return nil
}

type ticketFixture struct {
	service    *TicketService
	ticketRepo *fakeTicketRepo
	orderRepo  *fakeOrderRepo
	userRepo   *fakeUserRepo
}

func newTicketFixture() *ticketFixture {
	ticketRepo := newFakeTicketRepo()
	orderRepo := newFakeOrderRepo()
	userRepo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}

	return &ticketFixture{
		service:    NewTicketService(ticketRepo, orderRepo, userRepo),
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
	}
}

func TestCreateTicket_CustomerWithOrder(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID}
	fx.orderRepo.orders[order.ID] = order

	ticket, err := fx.service.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:   &userID,
		Subject:  "Missing item in delivery",
		Category: "order",
		Priority: enum.TicketPriorityMedium,
		OrderID:  &order.ID,
		Message:  "The olive oil was not in the box.",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, ticket.TicketNumber)
	assert.Equal(t, enum.TicketStatusOpen, ticket.Status)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, "The olive oil was not in the box.", ticket.Messages[0].Message)
}

func TestCreateTicket_GuestRequiresEmail(t *testing.T) {
	fx := newTicketFixture()

	_, err := fx.service.CreateTicket(context.Background(), &CreateTicketInput{
		Subject:  "Question about delivery areas",
		Category: "shipping",
		Message:  "Do you deliver to Mombasa?",
	})

	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	guestEmail := "guest@example.com"
	ticket, err := fx.service.CreateTicket(context.Background(), &CreateTicketInput{
		GuestEmail: &guestEmail,
		Subject:    "Question about delivery areas",
		Category:   "shipping",
		Message:    "Do you deliver to Mombasa?",
	})
	require.NoError(t, err)
	assert.Nil(t, ticket.UserID)
}

func TestCreateTicket_RejectsForeignOrder(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}
	fx.orderRepo.orders[order.ID] = order

	_, err := fx.service.CreateTicket(context.Background(), &CreateTicketInput{
		UserID:   &userID,
		Subject:  "Order issue",
		Category: "order",
		OrderID:  &order.ID,
		Message:  "Something is wrong with this order.",
	})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestReply_StaffMovesOpenToWaitingCustomer(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	ticket := &entity.Ticket{ID: uuid.New(), UserID: &userID, Status: enum.TicketStatusOpen}
	fx.ticketRepo.tickets[ticket.ID] = ticket

	_, err := fx.service.Reply(context.Background(), &ReplyInput{
		TicketID: ticket.ID,
		SenderID: uuid.New(),
		Message:  "We are checking with the warehouse.",
		IsStaff:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, enum.TicketStatusWaitingCustomer, fx.ticketRepo.tickets[ticket.ID].Status)
}

func TestReply_CustomerMovesWaitingToInProgress(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	ticket := &entity.Ticket{ID: uuid.New(), UserID: &userID, Status: enum.TicketStatusWaitingCustomer}
	fx.ticketRepo.tickets[ticket.ID] = ticket

	_, err := fx.service.Reply(context.Background(), &ReplyInput{
		TicketID: ticket.ID,
		SenderID: userID,
		Message:  "Here is a photo of the damaged box.",
	})

	require.NoError(t, err)
	assert.Equal(t, enum.TicketStatusInProgress, fx.ticketRepo.tickets[ticket.ID].Status)
}

func TestReply_ClosedTicketRejected(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	ticket := &entity.Ticket{ID: uuid.New(), UserID: &userID, Status: enum.TicketStatusClosed}
	fx.ticketRepo.tickets[ticket.ID] = ticket

	_, err := fx.service.Reply(context.Background(), &ReplyInput{
		TicketID: ticket.ID,
		SenderID: userID,
		Message:  "One more thing...",
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestReply_OwnershipEnforced(t *testing.T) {
	fx := newTicketFixture()
	owner := uuid.New()
	ticket := &entity.Ticket{ID: uuid.New(), UserID: &owner, Status: enum.TicketStatusOpen}
	fx.ticketRepo.tickets[ticket.ID] = ticket

	_, err := fx.service.Reply(context.Background(), &ReplyInput{
		TicketID: ticket.ID,
		SenderID: uuid.New(),
		Message:  "Hello?",
	})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateTicket_AssignmentStartsProgress(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	agentID := uuid.New()
	fx.userRepo.users[agentID] = &entity.User{ID: agentID, FirstName: "Amina"}
	ticket := &entity.Ticket{ID: uuid.New(), UserID: &userID, Status: enum.TicketStatusOpen}
	fx.ticketRepo.tickets[ticket.ID] = ticket

	updated, err := fx.service.UpdateTicket(context.Background(), &UpdateTicketInput{
		TicketID:   ticket.ID,
		AssignedTo: &agentID,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, agentID, *updated.AssignedTo)
	assert.Equal(t, enum.TicketStatusInProgress, updated.Status)
}

func TestUpdateTicket_UnknownAssigneeRejected(t *testing.T) {
	fx := newTicketFixture()
	userID := uuid.New()
	ticket := &entity.Ticket{ID: uuid.New(), UserID: &userID, Status: enum.TicketStatusOpen}
	fx.ticketRepo.tickets[ticket.ID] = ticket

	ghost := uuid.New()
	_, err := fx.service.UpdateTicket(context.Background(), &UpdateTicketInput{
		TicketID:   ticket.ID,
		AssignedTo: &ghost,
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
