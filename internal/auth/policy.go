package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/daniilsolovey/clinic-cms/internal/db"
)

// rbacModel matches a role against an RPC namespace and method with regular expressions.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && regexMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

const (
	contentNamespaces = "^(page|blog|catalog|menu|media|seo)$"
	readMethods       = "^(get|list|count|tree)"
)

var defaultPolicies = [][]string{
	{string(db.RoleUser), "^(page|blog|catalog|menu|media|seo|stats)$", readMethods},
	{string(db.RoleEditor), contentNamespaces, ".*"},
	{string(db.RoleEditor), "^stats$", ".*"},
	{string(db.RoleAdmin), ".*", ".*"},
}

// Policy decides which roles may call which RPC methods.
// ADMIN inherits EDITOR, EDITOR inherits USER.
type Policy struct {
	enforcer *casbin.Enforcer
}

func NewPolicy() (*Policy, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	if err := seedPolicies(e); err != nil {
		return nil, err
	}

	return &Policy{enforcer: e}, nil
}

func seedPolicies(e *casbin.Enforcer) error {
	for _, p := range defaultPolicies {
		if has, _ := e.HasPolicy(p); has {
			continue
		}
		if _, err := e.AddPolicy(p); err != nil {
			return fmt.Errorf("add policy %v: %w", p, err)
		}
	}

	inherits := [][2]db.Role{{db.RoleEditor, db.RoleUser}, {db.RoleAdmin, db.RoleEditor}}
	for _, r := range inherits {
		if _, err := e.AddRoleForUser(string(r[0]), string(r[1])); err != nil {
			return fmt.Errorf("add role %s -> %s: %w", r[0], r[1], err)
		}
	}

	return nil
}

// Allowed reports whether the role may call namespace.method.
func (p *Policy) Allowed(role db.Role, namespace, method string) (bool, error) {
	ok, err := p.enforcer.Enforce(string(role), namespace, method)
	if err != nil {
		return false, fmt.Errorf("enforce %s.%s: %w", namespace, method, err)
	}

	return ok, nil
}
