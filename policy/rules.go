package policy

import (
	"net/http"

	"backend/entity"
)

func isAdmin(r Request) bool    { return r.Actor.Has(entity.RoleSysAdmin) }
func isManager(r Request) bool  { return r.Actor.Has(entity.RoleManager) }
func isDelivery(r Request) bool { return r.Actor.Has(entity.RoleDeliveryCrew) }
func isCustomer(r Request) bool { return r.Actor.Has(entity.RoleCustomer) }

// manages: Manager everywhere it is allowed, SysAdmin as a superset.
func manages(r Request) bool { return isAdmin(r) || isManager(r) }

func customerOrDelivery(r Request) bool { return isCustomer(r) || isDelivery(r) }

func anyRole(r Request) bool { return manages(r) || customerOrDelivery(r) }

func verbs(v ...string) []string { return v }

var reads = verbs(http.MethodGet)
var writes = verbs(http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete)

// Default is the production rule table. Precedence is top to bottom:
// SysAdmin escalations first, then self-target escalations, then Manager,
// then Delivery Crew, then Customer. A user holding several roles gets the
// union seen through that order, which makes multi-role outcomes
// deterministic.
func Default() *Policy {
	return &Policy{rules: []Rule{
		// Accounts collection: registration is open to the anonymous;
		// authenticated creation and listing is management-only.
		{ResourceAccounts, verbs(http.MethodPost), func(r Request) bool { return !r.Actor.Authenticated() }},
		{ResourceAccounts, nil, manages},

		// Account detail. Admin bypasses everything. Customers and delivery
		// staff may work on their own account. Managers manage everyone who
		// is not an admin, but other managers only read-only.
		{ResourceAccount, nil, isAdmin},
		{ResourceAccount, nil, func(r Request) bool { return r.SelfTarget() && customerOrDelivery(r) }},
		{ResourceAccount, nil, func(r Request) bool {
			if !isManager(r) || r.TargetHas(entity.RoleSysAdmin) {
				return false
			}
			return r.Verb == http.MethodGet || !r.TargetHas(entity.RoleManager)
		}},

		// Groups collection and detail. The SysAdmin group is invisible to
		// managers; the Manager group is read-only for them.
		{ResourceGroups, nil, manages},
		{ResourceGroup, nil, isAdmin},
		{ResourceGroup, reads, func(r Request) bool {
			return isManager(r) && r.TargetGroup != entity.RoleSysAdmin
		}},
		{ResourceGroup, writes, func(r Request) bool {
			return isManager(r) && r.TargetGroup != entity.RoleSysAdmin && r.TargetGroup != entity.RoleManager
		}},

		// Role membership endpoints. Promoting into or demoting from the
		// Manager group is admin-only; a manager may still list the group,
		// add members, and touch their own entry.
		{ResourceAdminGroup, nil, isAdmin},
		{ResourceManagerGroup, nil, isAdmin},
		{ResourceManagerGroup, verbs(http.MethodGet, http.MethodPost), isManager},
		{ResourceManagerGroup, nil, func(r Request) bool { return r.SelfTarget() && isManager(r) }},
		{ResourceDeliveryGroup, nil, manages},
		{ResourceCustomerGroup, nil, manages},

		// Menu and categories: managers write, customers and delivery
		// staff read.
		{ResourceMenu, nil, manages},
		{ResourceMenu, reads, customerOrDelivery},
		{ResourceCategory, nil, manages},
		{ResourceCategory, reads, customerOrDelivery},

		// Cart belongs to customers only; managers may read cart lines
		// across customers.
		{ResourceCart, nil, isCustomer},
		{ResourceCartItem, nil, isCustomer},
		{ResourceCartItem, reads, manages},

		// Orders: everyone reads (row scoping narrows what they see),
		// customers check out, managers do the rest. Delivery staff may
		// flip the delivery flag on orders assigned to them; changing the
		// assignee needs a manager.
		{ResourceOrders, reads, anyRole},
		{ResourceOrders, verbs(http.MethodPost), isCustomer},
		{ResourceOrder, reads, anyRole},
		{ResourceOrder, verbs(http.MethodPatch), manages},
		{ResourceOrder, verbs(http.MethodPatch), func(r Request) bool {
			return isDelivery(r) && r.StatusOnly && r.AssignedToActor
		}},
		{ResourceOrder, verbs(http.MethodDelete), manages},

		// Purchases are the customer's own history; destruction is
		// management-only.
		{ResourcePurchase, reads, isCustomer},
		{ResourcePurchase, verbs(http.MethodDelete), manages},
		{ResourcePurchaseItem, reads, isCustomer},
		{ResourcePurchaseItem, writes, manages},
	}}
}
