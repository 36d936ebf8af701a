package router

import (
	"net/http"

	"github.com/deppfellow/portfolio-api/internal/handler"
	"github.com/deppfellow/portfolio-api/internal/middleware"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes mounts the resource routes. Reads are public except
// hire requests; every write except POST /hire-me goes through the auth
// guard.
func registerAPIRoutes(api *echo.Group, h *handler.Handlers, mw *middleware.Middlewares) {
	admin := mw.Auth.RequireAuth

	contact := api.Group("/contact")
	contact.GET("", handler.Handle(h.Contact.Handler, h.Contact.List, http.StatusOK, &model.ListRequest{}))
	contact.GET("/:id", handler.Handle(h.Contact.Handler, h.Contact.Get, http.StatusOK, &model.GetContactRequest{}))
	contact.POST("", handler.Handle(h.Contact.Handler, h.Contact.Create, http.StatusOK, &model.CreateContactRequest{}), admin)
	contact.PUT("/:id", handler.Handle(h.Contact.Handler, h.Contact.Update, http.StatusOK, &model.UpdateContactRequest{}), admin)
	contact.DELETE("/:id", handler.Handle(h.Contact.Handler, h.Contact.Delete, http.StatusOK, &model.DeleteContactRequest{}), admin)

	skills := api.Group("/skills")
	skills.GET("", handler.Handle(h.Skill.Handler, h.Skill.List, http.StatusOK, &model.ListRequest{}))
	skills.GET("/:id", handler.Handle(h.Skill.Handler, h.Skill.Get, http.StatusOK, &model.GetSkillRequest{}))
	skills.POST("", handler.Handle(h.Skill.Handler, h.Skill.Create, http.StatusOK, &model.CreateSkillRequest{}), admin)
	skills.PUT("/:id", handler.Handle(h.Skill.Handler, h.Skill.Update, http.StatusOK, &model.UpdateSkillRequest{}), admin)
	skills.DELETE("/:id", handler.Handle(h.Skill.Handler, h.Skill.Delete, http.StatusOK, &model.DeleteSkillRequest{}), admin)
	api.GET("/technical-skills", handler.Handle(h.Skill.Handler, h.Skill.TechnicalSkills, http.StatusOK, &model.ListRequest{}))

	technologies := api.Group("/technologies")
	technologies.GET("", handler.Handle(h.Technology.Handler, h.Technology.List, http.StatusOK, &model.ListRequest{}))
	technologies.GET("/:id", handler.Handle(h.Technology.Handler, h.Technology.Get, http.StatusOK, &model.GetTechnologyRequest{}))
	technologies.POST("", handler.Handle(h.Technology.Handler, h.Technology.Create, http.StatusOK, &model.CreateTechnologyRequest{}), admin)
	technologies.PUT("/:id", handler.Handle(h.Technology.Handler, h.Technology.Update, http.StatusOK, &model.UpdateTechnologyRequest{}), admin)
	technologies.DELETE("/:id", handler.Handle(h.Technology.Handler, h.Technology.Delete, http.StatusOK, &model.DeleteTechnologyRequest{}), admin)

	experience := api.Group("/experience")
	experience.GET("", handler.Handle(h.Experience.Handler, h.Experience.List, http.StatusOK, &model.ListRequest{}))
	experience.GET("/:id", handler.Handle(h.Experience.Handler, h.Experience.Get, http.StatusOK, &model.GetExperienceRequest{}))
	experience.POST("", handler.Handle(h.Experience.Handler, h.Experience.Create, http.StatusOK, &model.CreateExperienceRequest{}), admin)
	experience.PUT("/:id", handler.Handle(h.Experience.Handler, h.Experience.Update, http.StatusOK, &model.UpdateExperienceRequest{}), admin)
	experience.DELETE("/:id", handler.Handle(h.Experience.Handler, h.Experience.Delete, http.StatusOK, &model.DeleteExperienceRequest{}), admin)

	portfolio := api.Group("/portfolio")
	portfolio.GET("", handler.Handle(h.Portfolio.Handler, h.Portfolio.List, http.StatusOK, &model.ListRequest{}))
	portfolio.GET("/:id", handler.Handle(h.Portfolio.Handler, h.Portfolio.Get, http.StatusOK, &model.GetPortfolioRequest{}))
	portfolio.POST("", handler.Handle(h.Portfolio.Handler, h.Portfolio.Create, http.StatusOK, &model.CreatePortfolioRequest{}), admin)
	portfolio.PUT("/:id", handler.Handle(h.Portfolio.Handler, h.Portfolio.Update, http.StatusOK, &model.UpdatePortfolioRequest{}), admin)
	portfolio.DELETE("/:id", handler.Handle(h.Portfolio.Handler, h.Portfolio.Delete, http.StatusOK, &model.DeletePortfolioRequest{}), admin)

	api.POST("/hire-me", handler.Handle(h.HireRequest.Handler, h.HireRequest.Submit, http.StatusOK, &model.CreateHireRequest{}), mw.RateLimit.HireRequests())

	hireRequests := api.Group("/hire-requests", admin)
	hireRequests.GET("", handler.Handle(h.HireRequest.Handler, h.HireRequest.List, http.StatusOK, &model.ListRequest{}))
	hireRequests.GET("/:id", handler.Handle(h.HireRequest.Handler, h.HireRequest.Get, http.StatusOK, &model.GetHireRequestRequest{}))
	hireRequests.PUT("/:id/status", handler.Handle(h.HireRequest.Handler, h.HireRequest.UpdateStatus, http.StatusOK, &model.UpdateHireStatusRequest{}))

	upload := api.Group("/upload", admin, mw.Global.UploadBodyLimit())
	upload.POST("/single", handler.Handle(h.Upload.Handler, h.Upload.Single, http.StatusOK, &model.UploadRequest{}))
	upload.POST("/multiple", handler.Handle(h.Upload.Handler, h.Upload.Multiple, http.StatusOK, &model.UploadRequest{}))
	upload.POST("/rounded", handler.Handle(h.Upload.Handler, h.Upload.Rounded, http.StatusOK, &model.UploadRequest{}))
	upload.POST("/rounded-simple", handler.Handle(h.Upload.Handler, h.Upload.RoundedSimple, http.StatusOK, &model.UploadRequest{}))

	api.GET("/images/rounded/:filename", handler.Handle(h.Upload.Handler, h.Upload.ImageURLs, http.StatusOK, &model.ImageURLsRequest{}))
}
