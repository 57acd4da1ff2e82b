package domain

// Rule decides one (resource, action) pair. AdminOnly operations reject
// any other role outright; OwnerScoped operations are allowed for every
// authenticated role but non-admin results must be narrowed to rows the
// actor owns.
type Rule struct {
	AdminOnly   bool
	OwnerScoped bool
}

var rules = map[string]Rule{
	"employee:list":   {OwnerScoped: true},
	"employee:read":   {OwnerScoped: true},
	"employee:create": {AdminOnly: true},
	"employee:update": {OwnerScoped: true},
	"employee:delete": {AdminOnly: true},
	"salary:list":     {OwnerScoped: true},
	"salary:summary":  {OwnerScoped: true},
	"salary:create":   {AdminOnly: true},
	"notice:create":   {AdminOnly: true},
	"admin:stats":     {AdminOnly: true},
	"wechat:bind":     {OwnerScoped: true},
}

// Allowed evaluates the role gate for one operation. Unknown operations
// are denied.
func Allowed(role Role, resource, action string) bool {
	rule, ok := rules[resource+":"+action]
	if !ok {
		return false
	}
	if rule.AdminOnly {
		return role == RoleAdmin
	}
	return role.Valid()
}

// OwnerScoped reports whether results of the operation must be narrowed
// to rows owned by the actor. Admins always see everything.
func OwnerScoped(role Role, resource, action string) bool {
	if role == RoleAdmin {
		return false
	}
	rule, ok := rules[resource+":"+action]
	return ok && rule.OwnerScoped
}
