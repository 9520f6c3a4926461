package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// VoterHandler defines the interface for voter lookup and roll management endpoints
type VoterHandler interface {
	Search(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Import(ctx *gin.Context)
}

type voterHandler struct {
	voterService voters.VoterService
}

// NewVoterHandler creates a new VoterHandler
func NewVoterHandler(voterService voters.VoterService) VoterHandler {
	return &voterHandler{voterService: voterService}
}

// Search looks a voter up by number, or by name within an optional ward
func (handler *voterHandler) Search(ctx *gin.Context) {
	query := &voters.SearchQuery{
		VoterNumber: ctx.Query("voter_number"),
		Name:        ctx.Query("name"),
		Ward:        ctx.Query("ward"),
	}
	list, err := handler.voterService.Search(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, list)
}

// List lists the voter roll
func (handler *voterHandler) List(ctx *gin.Context) {
	query := voters.NewVoterQuery()
	query.Params = pageParams(ctx)
	query.Ward = ctx.Query("ward")
	query.Union = ctx.Query("union")

	list, total, err := handler.voterService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns a voter by id
func (handler *voterHandler) GetByID(ctx *gin.Context) {
	voter, err := handler.voterService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, voter)
}

// Create adds a voter
func (handler *voterHandler) Create(ctx *gin.Context) {
	var voter voters.Voter
	if !bindJSON(ctx, &voter) {
		return
	}
	created, err := handler.voterService.Create(ctx, &voter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces a voter
func (handler *voterHandler) Update(ctx *gin.Context) {
	var voter voters.Voter
	if !bindJSON(ctx, &voter) {
		return
	}
	voter.ID = ctx.Param("id")

	updated, err := handler.voterService.Update(ctx, &voter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes a voter
func (handler *voterHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.voterService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Import upserts voters from the CSV sent in the "file" form field
func (handler *voterHandler) Import(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		respondError(ctx, apperr.Validation("a CSV file is required in the file field"))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer file.Close()

	result, err := handler.voterService.Import(ctx, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, result)
}
