package controllers

import (
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/policy"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Groups *services.GroupService
	Policy *policy.Policy
}

func NewGroupController(groups *services.GroupService, p *policy.Policy) *GroupController {
	return &GroupController{Groups: groups, Policy: p}
}

// GET /groups: the SysAdmin group is invisible to non-admin callers.
func (g *GroupController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	roles, err := g.Groups.List(actor.Has(entity.RoleSysAdmin))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, roles)
}

type groupIn struct {
	Name string `json:"name" binding:"required"`
}

// POST /groups
func (g *GroupController) Create(c *gin.Context) {
	var in groupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FieldError(c, "name", "this field is required")
		return
	}
	role, err := g.Groups.Create(in.Name)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, role)
}

// resolveGroup loads the addressed group and decides the request against
// its name: managers never see the SysAdmin group and never write the
// Manager group.
func (g *GroupController) resolveGroup(c *gin.Context) (*entity.Role, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}
	role, err := g.Groups.Get(id)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	req := policy.Request{
		Actor:       utils.CurrentActor(c),
		Resource:    policy.ResourceGroup,
		Verb:        c.Request.Method,
		TargetGroup: role.Name,
	}
	if g.Policy.Decide(req) != policy.Allow {
		resp.Forbidden(c, "forbidden")
		return nil, false
	}
	return role, true
}

// GET /groups/:id
func (g *GroupController) Get(c *gin.Context) {
	role, ok := g.resolveGroup(c)
	if !ok {
		return
	}
	resp.OK(c, role)
}

// PUT/PATCH /groups/:id
func (g *GroupController) Update(c *gin.Context) {
	role, ok := g.resolveGroup(c)
	if !ok {
		return
	}
	var in groupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.FieldError(c, "name", "this field is required")
		return
	}
	updated, err := g.Groups.Rename(role.ID, in.Name)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /groups/:id
func (g *GroupController) Delete(c *gin.Context) {
	role, ok := g.resolveGroup(c)
	if !ok {
		return
	}
	if err := g.Groups.Delete(role.ID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "group deleted"})
}

// ---------------- Role-scoped membership endpoints ----------------

// Members returns a GET handler listing one role group.
func (g *GroupController) Members(roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := g.Groups.Members(roleName)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, users)
	}
}

type memberIn struct {
	ID uint `json:"id" binding:"required"`
}

// AddMember returns a POST handler joining the user named in the body to
// the role group.
func (g *GroupController) AddMember(roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in memberIn
		if err := c.ShouldBindJSON(&in); err != nil {
			resp.FieldError(c, "id", "a valid integer is required")
			return
		}
		user, err := g.Groups.AddMember(roleName, in.ID)
		if err != nil {
			fail(c, err)
			return
		}
		resp.Created(c, user)
	}
}

// RemoveMember returns a DELETE handler for /groups/<role>/:id. The
// decision is made here because a manager may remove their own Manager
// membership but nobody else's.
func (g *GroupController) RemoveMember(resource, roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		req := policy.Request{
			Actor:        utils.CurrentActor(c),
			Resource:     resource,
			Verb:         http.MethodDelete,
			TargetUserID: id,
		}
		if g.Policy.Decide(req) != policy.Allow {
			resp.Forbidden(c, "forbidden")
			return
		}
		if err := g.Groups.RemoveMember(roleName, id); err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{"message": "user removed from the group"})
	}
}
