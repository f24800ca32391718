package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/application/ticket/usecases"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/authorization"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/services/markdown"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// TicketHandler serves resident requests: maintenance, amenity
// reservations, complaints and general inquiries. Descriptions and
// comments are Markdown; responses carry a sanitized HTML rendering
// alongside the raw text.
type TicketHandler struct {
	createTicketUC       *usecases.CreateTicketUseCase
	listTicketsUC        *usecases.ListTicketsUseCase
	updateTicketStatusUC *usecases.UpdateTicketStatusUseCase
	addTicketCommentUC   *usecases.AddTicketCommentUseCase
	markdownSvc          markdown.MarkdownService
	logger               logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	updateTicketStatusUC *usecases.UpdateTicketStatusUseCase,
	addTicketCommentUC *usecases.AddTicketCommentUseCase,
	markdownSvc markdown.MarkdownService,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:       createTicketUC,
		listTicketsUC:        listTicketsUC,
		updateTicketStatusUC: updateTicketStatusUC,
		addTicketCommentUC:   addTicketCommentUC,
		markdownSvc:          markdownSvc,
		logger:               logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	Type        string     `json:"type" binding:"required,oneof=maintenance amenity_reservation complaint inquiry"`
	Subject     string     `json:"subject" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Amenity     string     `json:"amenity"`
	ReservedFor *time.Time `json:"reserved_for"`
}

type UpdateTicketStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

type AddTicketCommentRequest struct {
	Message string `json:"message" binding:"required"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	ID              uint                  `json:"id"`
	CondominiumID   uint                  `json:"condominium_id"`
	CreatedBy       uint                  `json:"created_by"`
	Type            string                `json:"type"`
	Subject         string                `json:"subject"`
	Description     string                `json:"description"`
	DescriptionHTML string                `json:"description_html"`
	Status          string                `json:"status"`
	Amenity         string                `json:"amenity,omitempty"`
	ReservedFor     *time.Time            `json:"reserved_for,omitempty"`
	Interactions    []InteractionResponse `json:"interactions"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type InteractionResponse struct {
	AuthorID    uint      `json:"author_id"`
	Message     string    `json:"message"`
	MessageHTML string    `json:"message_html"`
	CreatedAt   time.Time `json:"created_at"`
}

// renderHTML falls back to the sanitized raw text if conversion fails,
// so one bad comment never breaks a ticket listing.
func (h *TicketHandler) renderHTML(source string) string {
	rendered, err := h.markdownSvc.ToHTMLSanitized(source)
	if err != nil {
		h.logger.Warnw("failed to render ticket markdown", "error", err)
		return h.markdownSvc.Sanitize(source)
	}
	return rendered
}

func (h *TicketHandler) toTicketResponse(t *ticket.Ticket) *TicketResponse {
	if t == nil {
		return nil
	}
	interactions := make([]InteractionResponse, 0, len(t.Interactions()))
	for _, i := range t.Interactions() {
		interactions = append(interactions, InteractionResponse{
			AuthorID:    i.AuthorID,
			Message:     i.Message,
			MessageHTML: h.renderHTML(i.Message),
			CreatedAt:   i.CreatedAt,
		})
	}
	return &TicketResponse{
		ID:              t.ID(),
		CondominiumID:   t.CondominiumID(),
		CreatedBy:       t.CreatedBy(),
		Type:            string(t.Type()),
		Subject:         t.Subject(),
		Description:     t.Description(),
		DescriptionHTML: h.renderHTML(t.Description()),
		Status:          string(t.Status()),
		Amenity:         t.Amenity(),
		ReservedFor:     t.ReservedFor(),
		Interactions:    interactions,
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func (h *TicketHandler) toTicketResponses(tickets []*ticket.Ticket) []*TicketResponse {
	responses := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, h.toTicketResponse(t))
	}
	return responses
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Authentication required"))
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.CreateTicketCommand{
		CondominiumID: condominiumID,
		RequesterID:   userID,
		Type:          req.Type,
		Subject:       req.Subject,
		Description:   req.Description,
		Amenity:       req.Amenity,
		ReservedFor:   req.ReservedFor,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.toTicketResponse(result.Ticket), "Ticket created successfully")
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	pagination := utils.ParsePagination(c)

	cmd := usecases.ListTicketsCommand{
		CondominiumID: condominiumID,
		Page:          pagination.Page,
		Limit:         pagination.Limit,
	}

	if typeStr := c.Query("type"); typeStr != "" {
		ticketType := ticket.Type(typeStr)
		if !ticketType.IsValid() {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket type filter"))
			return
		}
		cmd.Type = &ticketType
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := ticket.Status(statusStr)
		if !status.IsValid() {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket status filter"))
			return
		}
		cmd.Status = &status
	}

	// Residents only see their own tickets.
	if currentUserRole(c) == authorization.RoleResident {
		if userID, ok := currentUserID(c); ok {
			cmd.RequesterID = &userID
		}
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, h.toTicketResponses(result.Tickets), result.Total, pagination.Page, pagination.Limit)
}

func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Authentication required"))
		return
	}

	ticketID, err := parseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.UpdateTicketStatusCommand{
		CondominiumID: condominiumID,
		TicketID:      ticketID,
		Status:        req.Status,
		Comment:       req.Comment,
		AuthorID:      userID,
	}

	result, err := h.updateTicketStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", h.toTicketResponse(result.Ticket))
}

func (h *TicketHandler) AddTicketComment(c *gin.Context) {
	condominiumID, ok := currentCondominiumID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("No condominium in session"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Authentication required"))
		return
	}

	ticketID, err := parseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddTicketCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add ticket comment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.AddTicketCommentCommand{
		CondominiumID: condominiumID,
		TicketID:      ticketID,
		AuthorID:      userID,
		Message:       req.Message,
	}

	result, err := h.addTicketCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment added successfully", h.toTicketResponse(result.Ticket))
}
