// Package policy decides, per request, whether an actor may perform a verb
// on a resource. The whole policy is one ordered rule table evaluated by a
// pure function: no shared mutable state, no role caching, testable without
// any HTTP transport.
package policy

type Decision int

const (
	Deny Decision = iota
	Allow
)

// Resource names addressed by the rule table.
const (
	ResourceAccounts      = "accounts" // /users collection
	ResourceAccount       = "account"  // /users/:id
	ResourceGroups        = "groups"
	ResourceGroup         = "group" // /groups/:id
	ResourceAdminGroup    = "group:admins"
	ResourceManagerGroup  = "group:managers"
	ResourceDeliveryGroup = "group:delivery-crew"
	ResourceCustomerGroup = "group:customers"
	ResourceMenu          = "menu"
	ResourceCategory      = "category"
	ResourceCart          = "cart"
	ResourceCartItem      = "cart-item"
	ResourceOrders        = "orders" // /orders collection
	ResourceOrder         = "order"  // /orders/:id
	ResourcePurchase      = "purchase"
	ResourcePurchaseItem  = "purchase-item"
)

// Request is everything a rule may look at. Target fields are filled only
// where the endpoint addresses another user or a group; order fields only
// on order updates.
type Request struct {
	Actor    Actor
	Resource string
	Verb     string // HTTP method

	TargetUserID uint     // addressed account, 0 when none
	TargetRoles  []string // live roles of the addressed account
	TargetGroup  string   // addressed group name, "" when none

	StatusOnly      bool // order PATCH touches the delivery flag only
	AssignedToActor bool // order is assigned to the acting delivery person
}

// SelfTarget reports whether the request addresses the actor's own account.
func (r Request) SelfTarget() bool {
	return r.TargetUserID != 0 && r.TargetUserID == r.Actor.ID
}

// TargetHas tests the addressed account's live role membership. A missing
// target has no roles, so this is false rather than an error.
func (r Request) TargetHas(role string) bool {
	for _, t := range r.TargetRoles {
		if t == role {
			return true
		}
	}
	return false
}

// Rule allows a request when the resource and verb match and the predicate
// holds. Rules never deny; anything no rule allows is denied.
type Rule struct {
	Resource string
	Verbs    []string // nil matches every verb
	When     func(Request) bool
}

func (ru Rule) matches(req Request) bool {
	if ru.Resource != req.Resource {
		return false
	}
	if ru.Verbs == nil {
		return true
	}
	for _, v := range ru.Verbs {
		if v == req.Verb {
			return true
		}
	}
	return false
}

type Policy struct {
	rules []Rule
}

// Decide walks the table in order; the first matching rule whose predicate
// holds allows the request. Default is deny.
func (p *Policy) Decide(req Request) Decision {
	for _, ru := range p.rules {
		if !ru.matches(req) {
			continue
		}
		if ru.When == nil || ru.When(req) {
			return Allow
		}
	}
	return Deny
}
