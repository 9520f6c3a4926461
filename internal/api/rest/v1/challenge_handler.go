package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler defines the interface for challenge and submission endpoints
type ChallengeHandler interface {
	ListActive(ctx *gin.Context)
	GetPublicBySlug(ctx *gin.Context)
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListSubmissions(ctx *gin.Context)
	SetSubmissionStatus(ctx *gin.Context)
}

type challengeHandler struct {
	challengeService challenges.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeService challenges.ChallengeService) ChallengeHandler {
	return &challengeHandler{challengeService: challengeService}
}

func challengeQuery(ctx *gin.Context) *challenges.ChallengeQuery {
	query := challenges.NewChallengeQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")
	return query
}

// ListActive lists the challenges open to the public
func (handler *challengeHandler) ListActive(ctx *gin.Context) {
	query := challengeQuery(ctx)
	list, total, err := handler.challengeService.ListActive(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetPublicBySlug returns a non draft challenge
func (handler *challengeHandler) GetPublicBySlug(ctx *gin.Context) {
	challenge, err := handler.challengeService.GetPublicBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, challenge)
}

// Submit enters a submission into a running challenge
func (handler *challengeHandler) Submit(ctx *gin.Context) {
	var submission challenges.Submission
	if !bindJSON(ctx, &submission) {
		return
	}
	created, err := handler.challengeService.Submit(ctx, ctx.Param("slug"), &submission)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// List lists challenges in any status
func (handler *challengeHandler) List(ctx *gin.Context) {
	query := challengeQuery(ctx)
	list, total, err := handler.challengeService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// GetByID returns a challenge by id
func (handler *challengeHandler) GetByID(ctx *gin.Context) {
	challenge, err := handler.challengeService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, challenge)
}

// Create creates a challenge
func (handler *challengeHandler) Create(ctx *gin.Context) {
	var challenge challenges.Challenge
	if !bindJSON(ctx, &challenge) {
		return
	}
	created, err := handler.challengeService.Create(ctx, &challenge)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created)
}

// Update replaces a challenge
func (handler *challengeHandler) Update(ctx *gin.Context) {
	var challenge challenges.Challenge
	if !bindJSON(ctx, &challenge) {
		return
	}
	challenge.ID = ctx.Param("id")

	updated, err := handler.challengeService.Update(ctx, &challenge)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, updated)
}

// DeleteByID deletes a challenge
func (handler *challengeHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.challengeService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListSubmissions lists submissions, optionally for one challenge
func (handler *challengeHandler) ListSubmissions(ctx *gin.Context) {
	query := challenges.NewSubmissionQuery()
	query.Params = pageParams(ctx)
	query.ChallengeID = ctx.Query("challenge_id")
	query.Status = ctx.Query("status")

	list, total, err := handler.challengeService.ListSubmissions(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// SetSubmissionStatus approves or rejects a submission
func (handler *challengeHandler) SetSubmissionStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	submission, err := handler.challengeService.SetSubmissionStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, submission)
}
