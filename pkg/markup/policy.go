package markup

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

// DefaultPolicy returns the shared sanitizer policy: bluemonday's user
// generated content profile, with links to other origins opened in a new tab.
// The policy must not be modified.
func DefaultPolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		defaultPolicy = NewPolicy()
	})
	return defaultPolicy
}

// NewPolicy builds a fresh copy of the default sanitizer policy that callers
// may extend before handing it to WithPolicy.
func NewPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code")
	return policy
}
