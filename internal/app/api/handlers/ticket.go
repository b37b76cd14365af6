package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/ticket"
	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/internal/platform/storage"
	"github.com/upmkt/affiliates-api/pkg/response"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// @Summary      Open Ticket
// @Description  Opens a support ticket with its first message. References may point to withdrawals or commissions.
// @Tags         Support
// @Accept       json
// @Produce      json
// @Param        request body ticket.CreateRequest true "Ticket fields"
// @Success      200  {object}  response.APIResponse[models.SupportTicket]
// @Router       /api/v1/tickets [post]
func ApiCreateTicket(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ticket.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		t, err := svc.Create(c.Request.Context(), currentUserID(c), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(t))
	}
}

type ListTicketsResponse struct {
	Items []*ticket.ListItem `json:"items"`
	Total int64              `json:"total"`
}

// @Summary      List Tickets
// @Description  Affiliates see their own tickets; admins see all, optionally filtered by status.
// @Tags         Support
// @Accept       json
// @Produce      json
// @Param        request body ticket.ListRequest true "Status filter and pagination"
// @Success      200  {object}  response.APIResponse[ListTicketsResponse]
// @Router       /api/v1/tickets/list [post]
func ApiListTickets(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ticket.ListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		items, total, err := svc.List(c.Request.Context(), currentSender(c), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&ListTicketsResponse{Items: items, Total: total}))
	}
}

type TicketMessagesResponse struct {
	Ticket   *models.SupportTicket    `json:"ticket"`
	Messages []*models.SupportMessage `json:"messages"`
}

// @Summary      Ticket Messages
// @Tags         Support
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Success      200  {object}  response.APIResponse[TicketMessagesResponse]
// @Router       /api/v1/tickets/{id}/messages [get]
func ApiTicketMessages(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, msgs, err := svc.Messages(c.Request.Context(), currentSender(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&TicketMessagesResponse{Ticket: t, Messages: msgs}))
	}
}

// @Summary      Reply to Ticket
// @Description  Appends a message. An admin reply moves the ticket to waiting_user; a user reply moves it back to in_progress.
// @Tags         Support
// @Accept       json
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Param        request body ticket.ReplyRequest true "Message fields"
// @Success      200  {object}  response.APIResponse[models.SupportMessage]
// @Router       /api/v1/tickets/{id}/reply [post]
func ApiReplyTicket(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ticket.ReplyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		msg, err := svc.Reply(c.Request.Context(), currentSender(c), c.Param("id"), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(msg))
	}
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// @Summary      Mark Ticket Read
// @Description  Marks every counterpart message in the ticket as read.
// @Tags         Support
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Success      200  {object}  response.APIResponse[MarkReadResponse]
// @Router       /api/v1/tickets/{id}/read [post]
func ApiMarkTicketRead(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.MarkRead(c.Request.Context(), currentSender(c), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&MarkReadResponse{Updated: n}))
	}
}

// @Summary      Rate Ticket
// @Description  Rates a resolved or closed ticket, once, 1 to 5.
// @Tags         Support
// @Accept       json
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Success      200  {object}  response.APIResponse[any]
// @Router       /api/v1/tickets/{id}/rate [post]
func ApiRateTicket(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if err := svc.Rate(c.Request.Context(), currentUserID(c), c.Param("id"), req.Rating, req.Comment); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      Upload Ticket Attachment
// @Description  Stores an attachment and returns its public URL for use in a message's image_urls.
// @Tags         Support
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Param        file formData file true "Attachment"
// @Success      200  {object}  response.APIResponse[string]
// @Router       /api/v1/tickets/{id}/attachments [post]
func ApiUploadTicketAttachment(store storage.Driver) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "file is required"))
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		defer f.Close()

		path := storage.ObjectPath(storage.BucketSupportAttachments, currentUserID(c), c.Param("id"), fh.Filename)
		_, url, err := store.Upload(c.Request.Context(), f, path)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(url))
	}
}

// @Summary      Set Ticket Status (Admin)
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Ticket ID"
// @Success      200  {object}  response.APIResponse[models.SupportTicket]
// @Router       /api/v1/admin/tickets/{id}/status [post]
func ApiSetTicketStatus(svc *ticket.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status types.TicketStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		t, err := svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(t))
	}
}

func RegisterTicketRoutes(r gin.IRouter, svc *ticket.Service, store storage.Driver) {
	r.POST("/tickets", ApiCreateTicket(svc))
	r.POST("/tickets/list", ApiListTickets(svc))
	r.GET("/tickets/:id/messages", ApiTicketMessages(svc))
	r.POST("/tickets/:id/reply", ApiReplyTicket(svc))
	r.POST("/tickets/:id/read", ApiMarkTicketRead(svc))
	r.POST("/tickets/:id/rate", ApiRateTicket(svc))
	r.POST("/tickets/:id/attachments", ApiUploadTicketAttachment(store))
}

func RegisterAdminTicketRoutes(r gin.IRouter, svc *ticket.Service) {
	r.POST("/tickets/:id/status", ApiSetTicketStatus(svc))
}
