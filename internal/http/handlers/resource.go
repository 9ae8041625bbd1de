package handlers

import (
	"net/http"

	"chauffeur-admin/internal/http/middleware"
	"chauffeur-admin/internal/repositories"
	"chauffeur-admin/internal/services"
	"chauffeur-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// Resource serves the list / draft / CRUD endpoints of one entity type.
type Resource[T repositories.Record[T]] struct {
	Label string
	Svc   services.EntityService[T]
}

// Mount registers the collection routes on g. Extra routes with fixed
// segments (stats, invoice) may be added to g by the caller.
func (r Resource[T]) Mount(g *gin.RouterGroup) {
	g.GET("", r.List)
	g.POST("", r.Create)
	g.GET("/draft", r.BlankDraft)
	g.GET("/:id", r.Get)
	g.PUT("/:id", r.Replace)
	g.PATCH("/:id", r.Patch)
	g.DELETE("/:id", r.Delete)
	g.GET("/:id/draft", r.EditDraft)
}

// GET /api/<collection>?q=&status=&type=&category=&availability=&dateFrom=&dateTo=
func (r Resource[T]) List(c *gin.Context) {
	crit, ok := BindCriteria(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r.Svc.List(crit))
}

func (r Resource[T]) Get(c *gin.Context) {
	rec, err := r.Svc.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (r Resource[T]) BlankDraft(c *gin.Context) {
	draft, err := r.Svc.BlankDraft()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (r Resource[T]) EditDraft(c *gin.Context) {
	draft, err := r.Svc.EditDraft(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (r Resource[T]) Create(c *gin.Context) {
	raw, ok := ReadJSONOrError(c)
	if !ok {
		return
	}
	rec, err := r.Svc.Create(raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), r.Svc.Resource, "create", "id="+rec.GetID())
	c.JSON(http.StatusCreated, rec)
}

// PUT runs the edit form: the payload is applied over the stored record and
// the result is validated before it replaces it.
func (r Resource[T]) Replace(c *gin.Context) {
	raw, ok := ReadJSONOrError(c)
	if !ok {
		return
	}
	rec, err := r.Svc.Replace(c.Param("id"), raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), r.Svc.Resource, "update", "id="+rec.GetID())
	c.JSON(http.StatusOK, MutationResponse{Message: r.Label + " updated", Found: true, Data: rec})
}

// PATCH merges the payload's top-level keys without validation.
func (r Resource[T]) Patch(c *gin.Context) {
	raw, ok := ReadJSONOrError(c)
	if !ok {
		return
	}
	rec, err := r.Svc.Patch(c.Param("id"), raw)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), r.Svc.Resource, "patch", "id="+rec.GetID())
	c.JSON(http.StatusOK, MutationResponse{Message: r.Label + " updated", Found: true, Data: rec})
}

func (r Resource[T]) Delete(c *gin.Context) {
	rec, err := r.Svc.Delete(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), r.Svc.Resource, "delete", "id="+rec.GetID())
	c.JSON(http.StatusOK, MutationResponse{Message: r.Label + " deleted", Found: true, Data: rec})
}
