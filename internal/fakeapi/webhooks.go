package fakeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ekey-bionyx/pkg/bionyx"
	"ekey-bionyx/pkg/response"
)

// listSystems returns every seeded system with its current quota.
// @Summary List systems
// @Description Systems the bearer token can access, with free and used function webhook slots.
// @Tags Systems
// @Produce json
// @Security BearerAuth
// @Success 200 {array} bionyx.SystemResponse
// @Failure 401 {object} response.Problem
// @Failure 429 {object} response.Problem
// @Router /3rd-party/api/systems [get]
func (srv *Server) listSystems(c *gin.Context) {
	response.OK(c, srv.store.Systems())
}

// listWebhooks returns the function webhooks of one system, pending ones included.
// @Summary List function webhooks
// @Tags Function Webhooks
// @Produce json
// @Security BearerAuth
// @Param systemId path string true "System ID"
// @Success 200 {array} bionyx.WebhookResponse
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /3rd-party/api/systems/{systemId}/function-webhooks [get]
func (srv *Server) listWebhooks(c *gin.Context) {
	webhooks, err := srv.store.Webhooks(c.Param("systemId"))
	if err != nil {
		srv.mapError(c, err)
		return
	}
	response.OK(c, webhooks)
}

// @Summary Get a function webhook
// @Tags Function Webhooks
// @Produce json
// @Security BearerAuth
// @Param systemId path string true "System ID"
// @Param webhookId path string true "Function webhook ID"
// @Success 200 {object} bionyx.WebhookResponse
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /3rd-party/api/systems/{systemId}/function-webhooks/{webhookId} [get]
func (srv *Server) getWebhook(c *gin.Context) {
	wh, err := srv.store.Webhook(c.Param("systemId"), c.Param("webhookId"))
	if err != nil {
		srv.mapError(c, err)
		return
	}
	response.OK(c, wh)
}

// createWebhook registers a webhook in state CreateRequested. It takes a quota slot right away.
// @Summary Create a function webhook
// @Tags Function Webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param systemId path string true "System ID"
// @Param body body bionyx.WebhookData true "Webhook definition"
// @Success 200 {object} bionyx.WebhookResponse
// @Failure 400 {object} response.Problem
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem "No free quota"
// @Router /3rd-party/api/systems/{systemId}/function-webhooks [post]
func (srv *Server) createWebhook(c *gin.Context) {
	var data bionyx.WebhookData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := validateWebhookData(data); err != nil {
		response.BadRequest(c, err)
		return
	}

	wh, err := srv.store.CreateWebhook(c.Param("systemId"), data)
	if err != nil {
		srv.mapError(c, err)
		return
	}

	srv.l.Infof(c.Request.Context(), "fakeapi: webhook %s created on system %s", wh.FunctionWebhookID, c.Param("systemId"))
	response.OK(c, wh)
}

// updateWebhook stores the definition as pending until it is confirmed.
// @Summary Replace a function webhook definition
// @Tags Function Webhooks
// @Accept json
// @Security BearerAuth
// @Param systemId path string true "System ID"
// @Param webhookId path string true "Function webhook ID"
// @Param body body bionyx.WebhookData true "Webhook definition"
// @Success 202
// @Failure 400 {object} response.Problem
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem "Deletion pending"
// @Router /3rd-party/api/systems/{systemId}/function-webhooks/{webhookId} [put]
func (srv *Server) updateWebhook(c *gin.Context) {
	var data bionyx.WebhookData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := validateWebhookData(data); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := srv.store.UpdateWebhook(c.Param("systemId"), c.Param("webhookId"), data); err != nil {
		srv.mapError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// deleteWebhook marks the webhook DeleteRequested; it stays listed until confirmed.
// @Summary Delete a function webhook
// @Tags Function Webhooks
// @Security BearerAuth
// @Param systemId path string true "System ID"
// @Param webhookId path string true "Function webhook ID"
// @Success 202
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /3rd-party/api/systems/{systemId}/function-webhooks/{webhookId} [delete]
func (srv *Server) deleteWebhook(c *gin.Context) {
	if err := srv.store.DeleteWebhook(c.Param("systemId"), c.Param("webhookId")); err != nil {
		srv.mapError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// renameWebhook applies new names without confirmation.
// @Summary Rename a function webhook
// @Tags Function Webhooks
// @Accept json
// @Security BearerAuth
// @Param systemId path string true "System ID"
// @Param webhookId path string true "Function webhook ID"
// @Param body body bionyx.WebhookRename true "New names"
// @Success 204
// @Failure 400 {object} response.Problem
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /3rd-party/api/systems/{systemId}/function-webhooks/{webhookId} [patch]
func (srv *Server) renameWebhook(c *gin.Context) {
	var rename bionyx.WebhookRename
	if err := c.ShouldBindJSON(&rename); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := validateRename(rename); err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := srv.store.RenameWebhook(c.Param("systemId"), c.Param("webhookId"), rename); err != nil {
		srv.mapError(c, err)
		return
	}
	response.NoContent(c)
}

// getDefinition exposes the stored definition, which the real service never returns.
// @Summary Stored webhook definition
// @Tags Fake
// @Produce json
// @Param systemId path string true "System ID"
// @Param webhookId path string true "Function webhook ID"
// @Success 200 {object} bionyx.WebhookData
// @Failure 404 {object} response.Problem
// @Router /_fake/systems/{systemId}/function-webhooks/{webhookId}/definition [get]
func (srv *Server) getDefinition(c *gin.Context) {
	data, err := srv.store.Definition(c.Param("systemId"), c.Param("webhookId"))
	if err != nil {
		srv.mapError(c, err)
		return
	}
	response.OK(c, data)
}

// confirmWebhook plays the account owner approving the pending change in the app.
// @Summary Confirm a pending change
// @Tags Fake
// @Param systemId path string true "System ID"
// @Param webhookId path string true "Function webhook ID"
// @Success 204
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem "Nothing pending"
// @Router /_fake/systems/{systemId}/function-webhooks/{webhookId}/confirm [post]
func (srv *Server) confirmWebhook(c *gin.Context) {
	if err := srv.store.Confirm(c.Param("systemId"), c.Param("webhookId")); err != nil {
		srv.mapError(c, err)
		return
	}
	response.NoContent(c)
}

func (srv *Server) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSystemNotFound), errors.Is(err, ErrWebhookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrQuotaExceeded), errors.Is(err, ErrDeletePending), errors.Is(err, ErrNothingPending):
		response.Conflict(c, err.Error())
	default:
		srv.l.Errorf(c.Request.Context(), "fakeapi: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
	}
}
