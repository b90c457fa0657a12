package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/goals"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name         string      `json:"name" example:"Viagem" binding:"required,notblank,max=200"` // Name of the goal
	Description  string      `json:"description" example:"Férias em julho" binding:"max=1000"`  // Description of the goal
	TargetAmount types.Cents `json:"targetAmount" example:"500000" binding:"gt=0"`              // Amount to save in cents
	Deadline     *time.Time  `json:"deadline" example:"2024-07-01T00:00:00Z"`                   // Date the goal should be reached
	Icon         string      `json:"icon" example:"✈️" binding:"max=10"`                        // Glyph displayed for the goal, defaults to 🎯
}

func (editable GoalEditable) model(owner uuid.UUID) models.Goal {
	return models.Goal{
		OwnedModel:   models.OwnedModel{OwnerID: owner},
		Name:         editable.Name,
		Description:  editable.Description,
		TargetAmount: editable.TargetAmount,
		Deadline:     editable.Deadline,
		Icon:         editable.Icon,
	}
}

type GoalLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/goals/0c1b5a3e-7a5f-4b53-9d3c-1b2a4f6e8d90"`                        // The goal itself
	Contributions string `json:"contributions" example:"https://example.com/api/v1/goals/0c1b5a3e-7a5f-4b53-9d3c-1b2a4f6e8d90/contributions"` // Contributions to the goal
}

type Goal struct {
	models.Goal
	Links GoalLinks `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	return Goal{
		Goal: model,
		Links: GoalLinks{
			Self:          link(c, "/v1/goals/%s", model.ID),
			Contributions: link(c, "/v1/goals/%s/contributions", model.ID),
		},
	}
}

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsGoalList)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoals)
	}

	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}

	{
		r.OPTIONS("/:id/contributions", co.OptionsGoalContributions)
		r.GET("/:id/contributions", co.GetContributions)
		r.POST("/:id/contributions", co.CreateContributions)
	}
}

// OptionsGoalList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Router			/v1/goals [options]
func (co Controller) OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsGoalDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	resourceOptionsDetail[models.Goal](c, co.Store, httputil.OptionsGetPatchDelete)
}

// CreateGoals creates goals
//
//	@Summary		Create goals
//	@Description	Creates new goals. Goals start without contributions.
//	@Tags			Goals
//	@Produce		json
//	@Success		201		{object}	CreateResponse[Goal]
//	@Failure		400		{object}	CreateResponse[Goal]
//	@Failure		503		{object}	CreateResponse[Goal]
//	@Param			goals	body		[]GoalEditable	true	"Goals"
//	@Router			/v1/goals [post]
func (co Controller) CreateGoals(c *gin.Context) {
	insert := func(ctx context.Context, m *models.Goal) error {
		goal, err := co.Goals.CreateGoal(ctx, *m)
		*m = goal
		return err
	}

	createResources[models.Goal, GoalEditable](c, insert, newGoal)
}

// GetGoals returns all goals
//
//	@Summary		Get goals
//	@Description	Returns all goals
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	ListResponse[Goal]
//	@Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	list, err := co.Store.Goals(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), ListResponse[Goal]{Error: errorString(err)})
		return
	}

	data := make([]Goal, 0, len(list))
	for _, g := range list {
		data = append(data, newGoal(c, g))
	}

	c.JSON(http.StatusOK, ListResponse[Goal]{Data: data})
}

// GetGoal returns a specific goal
//
//	@Summary		Get goal
//	@Description	Returns a specific goal
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	Response[Goal]
//	@Failure		400	{object}	Response[Goal]
//	@Failure		404	{object}	Response[Goal]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	getResource(c, co.Store, newGoal)
}

// UpdateGoal updates a goal
//
//	@Summary		Update goal
//	@Description	Updates an existing goal. Only values to be updated need to be specified. The current amount can only be changed with contributions.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Response[Goal]
//	@Success		204
//	@Failure		400		{object}	Response[Goal]
//	@Failure		503		{object}	Response[Goal]
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			goal	body		GoalEditable	true	"Goal"
//	@Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	updateResource[models.Goal, GoalEditable](c, co.Goals.UpdateGoal, newGoal)
}

// DeleteGoal deletes a goal
//
//	@Summary		Delete goal
//	@Description	Deletes a goal and all its contributions
//	@Tags			Goals
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	deleteResource(c, co.Goals.DeleteGoal)
}

// ContributionEditable represents all user configurable parameters
type ContributionEditable struct {
	Amount      types.Cents `json:"amount" example:"50000" binding:"gt=0"`                   // Amount in cents
	Description string      `json:"description" example:"Décimo terceiro" binding:"max=500"` // Description of the contribution
	Date        time.Time   `json:"date" example:"2024-03-05T12:00:00Z"`                     // Date of the contribution, defaults to now
}

type Contribution struct {
	models.Contribution
	Links ContributionLinks `json:"links"`
}

type ContributionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/contributions/7d0f3f0e-2b9c-4d1e-8e0a-3c5b6a7d8e9f"` // The contribution itself
	Goal string `json:"goal" example:"https://example.com/api/v1/goals/0c1b5a3e-7a5f-4b53-9d3c-1b2a4f6e8d90"`         // The goal the contribution belongs to
}

func newContribution(c *gin.Context, model models.Contribution) Contribution {
	return Contribution{
		Contribution: model,
		Links: ContributionLinks{
			Self: link(c, "/v1/contributions/%s", model.ID),
			Goal: link(c, "/v1/goals/%s", model.GoalID),
		},
	}
}

// RegisterContributionRoutes registers the routes for contributions with
// the RouterGroup that is passed. Contributions are listed and created
// below their goal.
func (co Controller) RegisterContributionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", co.OptionsContributionDetail)
	r.DELETE("/:id", co.DeleteContribution)
}

// OptionsGoalContributions returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/goals/{id}/contributions [options]
func (co Controller) OptionsGoalContributions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsContributionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/contributions/{id} [options]
func (co Controller) OptionsContributionDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetContributions returns the contributions to a goal
//
//	@Summary		Get contributions
//	@Description	Returns the contributions to a goal, newest first. For a goal that does not exist, the list is empty.
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	ListResponse[Contribution]
//	@Failure		400	{object}	ListResponse[Contribution]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id}/contributions [get]
func (co Controller) GetContributions(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), ListResponse[Contribution]{Error: errorString(err)})
		return
	}

	contributions, err := co.Goals.Contributions(c.Request.Context(), auth.Owner(c), id)
	if err != nil {
		c.JSON(status(err), ListResponse[Contribution]{Error: errorString(err)})
		return
	}

	data := make([]Contribution, 0, len(contributions))
	for _, contribution := range contributions {
		data = append(data, newContribution(c, contribution))
	}

	c.JSON(http.StatusOK, ListResponse[Contribution]{Data: data})
}

// CreateContributions adds contributions to a goal
//
//	@Summary		Add contributions
//	@Description	Adds contributions to a goal and updates its progress
//	@Tags			Goals
//	@Produce		json
//	@Success		201				{object}	CreateResponse[Contribution]
//	@Failure		400				{object}	CreateResponse[Contribution]
//	@Failure		404				{object}	CreateResponse[Contribution]
//	@Failure		503				{object}	CreateResponse[Contribution]
//	@Param			id				path		string					true	"ID formatted as string"
//	@Param			contributions	body		[]ContributionEditable	true	"Contributions"
//	@Router			/v1/goals/{id}/contributions [post]
func (co Controller) CreateContributions(c *gin.Context) {
	goalID, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), CreateResponse[Contribution]{Error: errorString(err)})
		return
	}

	var editables []ContributionEditable
	err = httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), CreateResponse[Contribution]{Error: errorString(err)})
		return
	}

	owner := auth.Owner(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreateResponse[Contribution]{Data: []Response[Contribution]{}}

	for _, editable := range editables {
		if err := httputil.Validate(editable); err != nil {
			status = r.appendError(err, status)
			continue
		}

		contribution, _, err := co.Goals.AddContribution(c.Request.Context(), owner, goalID, goals.NewContribution{
			Amount:      editable.Amount,
			Description: editable.Description,
			Date:        editable.Date,
		})
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newContribution(c, contribution)
		r.Data = append(r.Data, Response[Contribution]{Data: &data})
	}

	c.JSON(status, r)
}

// DeleteContribution deletes a contribution
//
//	@Summary		Delete contribution
//	@Description	Deletes a contribution and removes its amount from the goal
//	@Tags			Goals
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/contributions/{id} [delete]
func (co Controller) DeleteContribution(c *gin.Context) {
	deleteResource(c, co.Goals.DeleteContribution)
}
