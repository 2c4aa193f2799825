package controllers

import (
	"errors"
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/policy"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	Accounts *services.AccountService
	Policy   *policy.Policy
}

func NewAccountController(accounts *services.AccountService, p *policy.Policy) *AccountController {
	return &AccountController{Accounts: accounts, Policy: p}
}

// POST /users: public registration, or account creation by management.
func (a *AccountController) Create(c *gin.Context) {
	actor := utils.CurrentActor(c)
	req := policy.Request{Actor: actor, Resource: policy.ResourceAccounts, Verb: http.MethodPost}
	if a.Policy.Decide(req) != policy.Allow {
		resp.Forbidden(c, "forbidden")
		return
	}

	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Accounts.Register(&in)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			resp.FieldError(c, "username", "already registered")
			return
		}
		fail(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /users: management only; SysAdmin accounts stay hidden from
// non-admin callers.
func (a *AccountController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	req := policy.Request{Actor: actor, Resource: policy.ResourceAccounts, Verb: http.MethodGet}
	if a.Policy.Decide(req) != policy.Allow {
		resp.Forbidden(c, "forbidden")
		return
	}
	users, err := a.Accounts.List(actor.Has(entity.RoleSysAdmin))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}

// resolveTarget loads the addressed account and decides the request.
// Absent target → 404; present but disallowed → 403. That ordering is
// deliberate for account lookups.
func (a *AccountController) resolveTarget(c *gin.Context) (*entity.User, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}
	target, err := a.Accounts.Get(id)
	if err != nil {
		fail(c, err)
		return nil, false
	}

	names := make([]string, 0, len(target.Roles))
	for _, r := range target.Roles {
		names = append(names, r.Name)
	}
	req := policy.Request{
		Actor:        utils.CurrentActor(c),
		Resource:     policy.ResourceAccount,
		Verb:         c.Request.Method,
		TargetUserID: target.ID,
		TargetRoles:  names,
	}
	if a.Policy.Decide(req) != policy.Allow {
		resp.Forbidden(c, "forbidden")
		return nil, false
	}
	return target, true
}

// GET /users/:id
func (a *AccountController) Get(c *gin.Context) {
	target, ok := a.resolveTarget(c)
	if !ok {
		return
	}
	resp.OK(c, target)
}

// PATCH /users/:id
func (a *AccountController) Update(c *gin.Context) {
	target, ok := a.resolveTarget(c)
	if !ok {
		return
	}
	var in services.UpdateAccountIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Accounts.Update(target.ID, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id
func (a *AccountController) Delete(c *gin.Context) {
	target, ok := a.resolveTarget(c)
	if !ok {
		return
	}
	if err := a.Accounts.Delete(target.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "account deleted"})
}
