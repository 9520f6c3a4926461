package v1

import (
	"net/http"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"

	"github.com/gin-gonic/gin"
)

// AMAHandler defines the interface for "Ask Me Anything" endpoints
type AMAHandler interface {
	ListAnswered(ctx *gin.Context)
	Ask(ctx *gin.Context)
	List(ctx *gin.Context)
	Answer(ctx *gin.Context)
	Reject(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type amaHandler struct {
	questionService ama.QuestionService
}

// NewAMAHandler creates a new AMAHandler
func NewAMAHandler(questionService ama.QuestionService) AMAHandler {
	return &amaHandler{questionService: questionService}
}

// ListAnswered lists answered questions
func (handler *amaHandler) ListAnswered(ctx *gin.Context) {
	query := ama.NewQuestionQuery()
	query.Params = pageParams(ctx)

	list, total, err := handler.questionService.ListAnswered(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	public := make([]*ama.PublicQuestion, 0, len(list))
	for _, question := range list {
		public = append(public, question.ToPublic())
	}
	respondList(ctx, public, query.Params, total)
}

// Ask stores a public question
func (handler *amaHandler) Ask(ctx *gin.Context) {
	var question ama.Question
	if !bindJSON(ctx, &question) {
		return
	}
	created, err := handler.questionService.Ask(ctx, &question)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, created.ToPublic())
}

// List lists questions for moderation
func (handler *amaHandler) List(ctx *gin.Context) {
	query := ama.NewQuestionQuery()
	query.Params = pageParams(ctx)
	query.Status = ctx.Query("status")

	list, total, err := handler.questionService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondList(ctx, list, query.Params, total)
}

// Answer answers a question as the current user
func (handler *amaHandler) Answer(ctx *gin.Context) {
	var answer ama.Answer
	if !bindJSON(ctx, &answer) {
		return
	}

	var answeredBy string
	if id := currentUserID(ctx); id != nil {
		answeredBy = *id
	}

	question, err := handler.questionService.Answer(ctx, ctx.Param("id"), &answer, answeredBy)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, question)
}

// Reject rejects an unanswered question
func (handler *amaHandler) Reject(ctx *gin.Context) {
	question, err := handler.questionService.Reject(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, question)
}

// DeleteByID deletes a question
func (handler *amaHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.questionService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
