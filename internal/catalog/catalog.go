// Package catalog assembles the default contract registry from every domain
// package. The registry is built exactly once at first use and never mutated
// afterwards, so it is safe to share across concurrent request handlers.
package catalog

import (
	"sync"

	"github.com/talentledger/contracts/internal/billing"
	"github.com/talentledger/contracts/internal/contract"
	"github.com/talentledger/contracts/internal/hiring"
	"github.com/talentledger/contracts/internal/messaging"
	"github.com/talentledger/contracts/internal/practice"
)

var (
	once     sync.Once
	registry *contract.Registry
)

// Default returns the process-wide contract registry with every entity kind
// from both products registered.
func Default() *contract.Registry {
	once.Do(func() {
		registry = contract.NewRegistry()
		hiring.Register(registry)
		messaging.Register(registry)
		billing.Register(registry)
		practice.Register(registry)
	})
	return registry
}
